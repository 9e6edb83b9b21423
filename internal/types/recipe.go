package types

import (
	"encoding/json"
	"fmt"
)

// Recipe is a single suggestion produced by the recommendation pipeline.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// IngredientRef is a caller-supplied pantry entry. Quantity is opaque: it may
// be numeric or free text such as "무제한", and is only ever rendered into the
// prompt, never interpreted.
type IngredientRef struct {
	Name     string
	Quantity any
}

// UnmarshalJSON accepts the wire form, a [name, quantity] pair.
func (r *IngredientRef) UnmarshalJSON(data []byte) error {
	var pair []any
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("ingredient must be a [name, quantity] pair, got %d elements", len(pair))
	}
	name, ok := pair[0].(string)
	if !ok {
		return fmt.Errorf("ingredient name must be a string")
	}
	r.Name = name
	r.Quantity = pair[1]
	return nil
}

// MarshalJSON restores the [name, quantity] pair form.
func (r IngredientRef) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Name, r.Quantity})
}
