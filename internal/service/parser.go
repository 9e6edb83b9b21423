package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// The parsers treat the model's reply as untrusted input: wrapping artifacts
// are stripped before the structural parse, and failures map onto the typed
// taxonomy instead of leaking parser diagnostics. Both parsers are pure;
// parsing the same raw text twice yields identical output.

const itemRowArity = 4

// stripFences removes a code-fence wrapper ("```", "```json", "```python")
// the model may have added around structured output despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// requoteLiteral converts a Python-style single-quoted literal to JSON
// quoting. Applied only when the payload contains no double quotes at all,
// so apostrophes inside an already-JSON reply are never touched.
func requoteLiteral(s string) string {
	if strings.ContainsRune(s, '"') {
		return s
	}
	return strings.ReplaceAll(s, "'", `"`)
}

// ParseExtraction parses the model's reply to the extraction prompt, a nested
// literal list of [name, quantity, category, timestamp] rows. A malformed
// top-level list is fatal; malformed rows are dropped individually, matching
// the prompt's own instruction to omit unclear items.
func ParseExtraction(raw string) ([]types.ExtractedItem, error) {
	payload := stripFences(raw)

	var rows []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		if err2 := json.Unmarshal([]byte(requoteLiteral(payload)), &rows); err2 != nil {
			return nil, formatErrorf("malformed item list: %w", err)
		}
	}

	items := make([]types.ExtractedItem, 0, len(rows))
	for i, row := range rows {
		item, err := parseItemRow(row)
		if err != nil {
			log.Warn().Err(err).Int("row", i).Msg("dropping malformed item row")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItemRow(row json.RawMessage) (types.ExtractedItem, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return types.ExtractedItem{}, fmt.Errorf("row is not a list: %w", err)
	}
	if len(fields) != itemRowArity {
		return types.ExtractedItem{}, fmt.Errorf("expected %d columns, got %d", itemRowArity, len(fields))
	}

	var name string
	if err := json.Unmarshal(fields[0], &name); err != nil {
		return types.ExtractedItem{}, fmt.Errorf("name is not a string: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ExtractedItem{}, fmt.Errorf("name is empty")
	}

	quantity, err := coerceQuantity(fields[1])
	if err != nil {
		return types.ExtractedItem{}, err
	}

	var category types.Category
	if err := json.Unmarshal(fields[2], &category); err != nil {
		return types.ExtractedItem{}, fmt.Errorf("category is not a string: %w", err)
	}
	if !category.Valid() {
		return types.ExtractedItem{}, fmt.Errorf("category %q is not in the vocabulary", category)
	}

	var observedAt string
	if err := json.Unmarshal(fields[3], &observedAt); err != nil {
		return types.ExtractedItem{}, fmt.Errorf("timestamp is not a string: %w", err)
	}
	if _, err := time.Parse(types.TimeLayout, observedAt); err != nil {
		return types.ExtractedItem{}, fmt.Errorf("malformed timestamp %q", observedAt)
	}

	return types.ExtractedItem{
		Name:       name,
		Quantity:   quantity,
		Category:   category,
		ObservedAt: observedAt,
	}, nil
}

// coerceQuantity maps the quantity column to an integer >= 1. Per the prompt
// contract a missing or non-numeric quantity means 1; values that are numeric
// but not a positive integer, and values that are not scalars at all, fail
// the row.
func coerceQuantity(field json.RawMessage) (int, error) {
	var value any
	if err := json.Unmarshal(field, &value); err != nil {
		return 0, fmt.Errorf("unreadable quantity: %w", err)
	}

	switch v := value.(type) {
	case nil:
		return 1, nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, fmt.Errorf("quantity %v is not an integer", v)
		}
		if n < 1 {
			return 0, fmt.Errorf("quantity %d is below 1", n)
		}
		return n, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 1, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			// Non-numeric text in the quantity slot defaults to 1.
			return 1, nil
		}
		if n < 1 {
			return 0, fmt.Errorf("quantity %d is below 1", n)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("quantity has unsupported type %T", value)
	}
}

// ParseRecommendation parses the model's reply to the recommendation prompt,
// a JSON array of recipe objects. Unlike extraction there is no row-level
// recovery: a half-specified recipe is unusable, so any defect fails the
// whole response.
func ParseRecommendation(raw string) ([]types.Recipe, error) {
	payload := stripFences(raw)

	var recipes []types.Recipe
	if err := json.Unmarshal([]byte(payload), &recipes); err != nil {
		return nil, formatErrorf("malformed recipe list: %w", err)
	}
	if len(recipes) == 0 {
		return nil, formatErrorf("response contains no recipes")
	}

	for i, r := range recipes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, formatErrorf("recipe %d is missing a name", i)
		}
		if len(r.Ingredients) == 0 {
			return nil, formatErrorf("recipe %q has no ingredients", r.Name)
		}
		for _, ing := range r.Ingredients {
			if strings.TrimSpace(ing) == "" {
				return nil, formatErrorf("recipe %q has an empty ingredient", r.Name)
			}
		}
		if strings.TrimSpace(r.Instructions) == "" {
			return nil, formatErrorf("recipe %q is missing instructions", r.Name)
		}
	}
	return recipes, nil
}
