package shop

var Items = []Item{
	// Avatar frames
	{
		ID:            "frame_bronze",
		Name:          "Bronze Frame",
		NameSv:        "Bronsram",
		Description:   "A simple bronze frame",
		DescriptionSv: "En enkel bronsram",
		Price:         100,
		Category:      CategoryFrame,
		Rarity:        RarityCommon,
		Color:         "#CD7F32",
	},
	{
		ID:            "frame_silver",
		Name:          "Silver Frame",
		NameSv:        "Silverram",
		Description:   "A shiny silver frame",
		DescriptionSv: "En glänsande silverram",
		Price:         250,
		Category:      CategoryFrame,
		Rarity:        RarityRare,
		Color:         "#C0C0C0",
	},
	{
		ID:            "frame_gold",
		Name:          "Gold Frame",
		NameSv:        "Guldram",
		Description:   "A prestigious gold frame",
		DescriptionSv: "En prestigefylld guldram",
		Price:         500,
		Category:      CategoryFrame,
		Rarity:        RarityEpic,
		Color:         "#FFD700",
	},
	{
		ID:            "frame_diamond",
		Name:          "Diamond Frame",
		NameSv:        "Diamantram",
		Description:   "The ultimate diamond frame",
		DescriptionSv: "Den ultimata diamantramen",
		Price:         1000,
		Category:      CategoryFrame,
		Rarity:        RarityLegendary,
		Color:         "#B9F2FF",
	},
	{
		ID:            "frame_rainbow",
		Name:          "Rainbow Frame",
		NameSv:        "Regnbågsram",
		Description:   "A colorful rainbow frame",
		DescriptionSv: "En färgglad regnbågsram",
		Price:         750,
		Category:      CategoryFrame,
		Rarity:        RarityEpic,
		Color:         "linear-gradient(45deg, red, orange, yellow, green, blue, indigo, violet)",
	},

	// Themes
	{
		ID:            "theme_dark",
		Name:          "Dark Mode",
		NameSv:        "Mörkt läge",
		Description:   "Sleek dark theme",
		DescriptionSv: "Elegant mörkt tema",
		Price:         200,
		Category:      CategoryTheme,
		Rarity:        RarityCommon,
		Color:         "#1a1a1a",
	},
	{
		ID:            "theme_ocean",
		Name:          "Ocean Theme",
		NameSv:        "Havstema",
		Description:   "Cool ocean blues",
		DescriptionSv: "Svala havsblå toner",
		Price:         300,
		Category:      CategoryTheme,
		Rarity:        RarityRare,
		Color:         "#006994",
	},
	{
		ID:            "theme_forest",
		Name:          "Forest Theme",
		NameSv:        "Skogstema",
		Description:   "Natural forest greens",
		DescriptionSv: "Naturliga skogsgröna toner",
		Price:         300,
		Category:      CategoryTheme,
		Rarity:        RarityRare,
		Color:         "#228B22",
	},
	{
		ID:            "theme_sunset",
		Name:          "Sunset Theme",
		NameSv:        "Solnedgångstema",
		Description:   "Warm sunset colors",
		DescriptionSv: "Varma solnedgångsfärger",
		Price:         400,
		Category:      CategoryTheme,
		Rarity:        RarityEpic,
		Color:         "#FF6B35",
	},

	// Titles
	{
		ID:            "title_beginner",
		Name:          "Beginner",
		NameSv:        "Nybörjare",
		Description:   "Just starting out",
		DescriptionSv: "Precis börjat",
		Price:         50,
		Category:      CategoryTitle,
		Rarity:        RarityCommon,
	},
	{
		ID:            "title_mathematician",
		Name:          "Mathematician",
		NameSv:        "Matematiker",
		Description:   "Math expert",
		DescriptionSv: "Matematikexpert",
		Price:         300,
		Category:      CategoryTitle,
		Rarity:        RarityRare,
	},
	{
		ID:            "title_professor",
		Name:          "Professor",
		NameSv:        "Professor",
		Description:   "Teaching mastery",
		DescriptionSv: "Undervisningsmästare",
		Price:         600,
		Category:      CategoryTitle,
		Rarity:        RarityEpic,
	},
	{
		ID:            "title_genius",
		Name:          "Math Genius",
		NameSv:        "Matematikgeni",
		Description:   "Ultimate math master",
		DescriptionSv: "Ultimat matematikmästare",
		Price:         1200,
		Category:      CategoryTitle,
		Rarity:        RarityLegendary,
	},
}

var itemsByID = func() map[string]Item {
	m := make(map[string]Item, len(Items))
	for _, it := range Items {
		m[it.ID] = it
	}
	return m
}()

// ItemByID returns the catalog entry for an id. The catalog is the only
// source of truth for prices and categories, client-supplied values are
// validated against it.
func ItemByID(id string) (Item, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

// ItemsByCategory filters the catalog by equip slot.
func ItemsByCategory(c Category) []Item {
	var out []Item
	for _, it := range Items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}
