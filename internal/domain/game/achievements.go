package game

// Achievement is a static catalog entry. XPReward is display metadata
// shown next to the badge; round rewards are settled from the mode
// rates alone and an unlock does not credit this amount to the profile.
type Achievement struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleSv       string `json:"titleSv"`
	Description   string `json:"description"`
	DescriptionSv string `json:"descriptionSv"`
	XPReward      int    `json:"xpReward"`
}

var Achievements = []Achievement{
	{
		ID:            "speed_demon",
		Title:         "Speed Demon",
		TitleSv:       "Hastighetsdemon",
		Description:   "Answer 10 questions correctly in Quick Math",
		DescriptionSv: "Svara rätt på 10 frågor i Snabb Matte",
		XPReward:      50,
	},
	{
		ID:            "algebra_master",
		Title:         "Algebra Master",
		TitleSv:       "Algebramästare",
		Description:   "Get 8 or more correct in Algebra game",
		DescriptionSv: "Få 8 eller fler rätt i Algebraspelet",
		XPReward:      75,
	},
	{
		ID:            "algebra_perfect",
		Title:         "Perfect Algebra",
		TitleSv:       "Perfekt Algebra",
		Description:   "Get all 10 correct in Algebra game",
		DescriptionSv: "Få alla 10 rätt i Algebraspelet",
		XPReward:      150,
	},
	{
		ID:            "geometry_expert",
		Title:         "Geometry Expert",
		TitleSv:       "Geometriexpert",
		Description:   "Get 8 or more correct in Geometry game",
		DescriptionSv: "Få 8 eller fler rätt i Geometrispelet",
		XPReward:      75,
	},
	{
		ID:            "geometry_perfect",
		Title:         "Perfect Geometry",
		TitleSv:       "Perfekt Geometri",
		Description:   "Get all 10 correct in Geometry game",
		DescriptionSv: "Få alla 10 rätt i Geometrispelet",
		XPReward:      150,
	},
	{
		ID:            "calculus_genius",
		Title:         "Calculus Genius",
		TitleSv:       "Analysgeni",
		Description:   "Get 6 or more correct in Calculus game",
		DescriptionSv: "Få 6 eller fler rätt i Analysspelet",
		XPReward:      100,
	},
	{
		ID:            "calculus_perfect",
		Title:         "Perfect Calculus",
		TitleSv:       "Perfekt Analys",
		Description:   "Get all 8 correct in Calculus game",
		DescriptionSv: "Få alla 8 rätt i Analysspelet",
		XPReward:      200,
	},
}

var achievementsByID = func() map[string]Achievement {
	m := make(map[string]Achievement, len(Achievements))
	for _, a := range Achievements {
		m[a.ID] = a
	}
	return m
}()

func AchievementByID(id string) (Achievement, bool) {
	a, ok := achievementsByID[id]
	return a, ok
}
