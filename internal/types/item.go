package types

import "encoding/json"

// Category is one of the fixed food categories an item can be classified into.
type Category string

const (
	CategoryMeat      Category = "육류"
	CategorySeafood   Category = "해산물"
	CategoryBeverage  Category = "음료"
	CategoryFruit     Category = "과일"
	CategoryVegetable Category = "채소"
	CategoryDairy     Category = "유제품"
	CategoryGrain     Category = "곡류/가공식품"
	CategoryCondiment Category = "조미료/소스"
	CategoryFrozen    Category = "냉동식품"
	CategorySnack     Category = "간식"
	CategoryBakery    Category = "베이커리"
	CategoryBabyFood  Category = "유아식품"
)

// Categories lists the closed vocabulary in the order the prompt presents it.
var Categories = []Category{
	CategoryMeat,
	CategorySeafood,
	CategoryBeverage,
	CategoryFruit,
	CategoryVegetable,
	CategoryDairy,
	CategoryGrain,
	CategoryCondiment,
	CategoryFrozen,
	CategorySnack,
	CategoryBakery,
	CategoryBabyFood,
}

// Valid reports whether c is a member of the closed vocabulary.
// Matching is case-sensitive and exact.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TimeLayout is the timestamp format stamped on every extracted item.
const TimeLayout = "2006-01-02 15:04:05"

// ExtractedItem is one recognized purchase from a shopping-list photo.
// Items are created once per request and never mutated afterwards.
type ExtractedItem struct {
	Name       string
	Quantity   int
	Category   Category
	ObservedAt string
}

// MarshalJSON writes the item in its wire form, a
// [name, quantity, category, timestamp] row.
func (i ExtractedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{i.Name, i.Quantity, i.Category, i.ObservedAt})
}
