// Package catalog loads raw food records and normalizes them into the
// canonical item schema.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/AliAbdallah21/foodrec/internal/domain"
	"github.com/AliAbdallah21/foodrec/internal/domain/food"
)

// Source field names of the raw catalog records.
const (
	fieldID             = "food_id"
	fieldName           = "food_name"
	fieldDescription    = "food_description"
	fieldCuisine        = "cuisine_type"
	fieldCalories       = "food_calories_per_serving"
	fieldIngredients    = "food_ingredients"
	fieldHealthBenefits = "food_health_benefits"
	fieldCookingMethod  = "cooking_method"
	fieldFeatures       = "food_features"
	fieldNutrition      = "food_nutritional_factors"
)

// Loader normalizes raw catalog records into food items.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a catalog loader.
func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// Parse decodes a JSON array of records and normalizes it into a catalog.
// A malformed container fails with domain.ErrDataFormat; missing fields on
// individual records never fail and are defaulted instead.
func (l *Loader) Parse(data []byte) (food.Catalog, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataFormat, err)
	}
	return l.Load(records), nil
}

// Load normalizes raw records into a catalog. Records missing an id get a
// 1-based sequence index; other missing fields get their defaults. An empty
// input yields an empty catalog.
func (l *Loader) Load(records []map[string]any) food.Catalog {
	items := make(food.Catalog, 0, len(records))

	for i, rec := range records {
		item := food.Item{
			ID:             asString(rec[fieldID]),
			Name:           asString(rec[fieldName]),
			Description:    asString(rec[fieldDescription]),
			Cuisine:        asString(rec[fieldCuisine]),
			Calories:       asInt(rec[fieldCalories]),
			Ingredients:    asStringSlice(rec[fieldIngredients]),
			HealthBenefits: asString(rec[fieldHealthBenefits]),
			CookingMethod:  asString(rec[fieldCookingMethod]),
			TasteProfile:   deriveTasteProfile(rec[fieldFeatures]),
			Nutrition:      asStringMap(rec[fieldNutrition]),
		}

		if item.ID == "" {
			item.ID = strconv.Itoa(i + 1)
		}
		if item.Cuisine == "" {
			item.Cuisine = "Unknown"
		}
		if item.Name == "" {
			l.log.Warn("catalog record has no name", zap.String("id", item.ID))
		}

		items = append(items, item)
	}

	return items
}

// deriveTasteProfile flattens a structured feature mapping into a single
// string: every truthy value rendered and joined with ", ". Keys are walked
// in sorted order so the result is stable across loads.
func deriveTasteProfile(v any) string {
	features, ok := v.(map[string]any)
	if !ok {
		return ""
	}

	keys := make([]string, 0, len(features))
	for k := range features {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var profile string
	for _, k := range keys {
		s, ok := renderTruthy(features[k])
		if !ok {
			continue
		}
		if profile != "" {
			profile += ", "
		}
		profile += s
	}
	return profile
}

// renderTruthy renders a feature value as a string, reporting false for
// falsy values (empty string, zero, false, nil).
func renderTruthy(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case bool:
		return strconv.FormatBool(t), t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), t != 0
	case nil:
		return "", false
	default:
		return fmt.Sprintf("%v", t), true
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return 0
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		out = append(out, asString(e))
	}
	return out
}

func asStringMap(v any) map[string]string {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		out[k] = asString(val)
	}
	return out
}
