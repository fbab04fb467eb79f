package shop

import (
	"fmt"

	errs "mattespel/internal/errors"
)

// Category is the equip slot an item occupies. A profile holds at most
// one equipped item per category.
type Category string

const (
	CategoryFrame Category = "frame"
	CategoryTheme Category = "theme"
	CategoryTitle Category = "title"
)

var Categories = []Category{CategoryFrame, CategoryTheme, CategoryTitle}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is an immutable shop catalog entry. The id prefix matches the
// category (frame_*, theme_*, title_*).
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameSv        string   `json:"nameSv"`
	Description   string   `json:"description"`
	DescriptionSv string   `json:"descriptionSv"`
	Price         int      `json:"price"`
	Category      Category `json:"category"`
	Rarity        Rarity   `json:"rarity"`
	Color         string   `json:"color,omitempty"`
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", errs.ErrInvalidInput, s)
}
