package indexer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/AliAbdallah21/foodrec/internal/domain/food"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

// Hash field names of an indexed food document.
const (
	fieldName           = "name"
	fieldDescription    = "description"
	fieldCuisine        = "cuisine"
	fieldCalories       = "calories"
	fieldIngredients    = "ingredients"
	fieldHealthBenefits = "health_benefits"
	fieldCookingMethod  = "cooking_method"
	fieldTasteProfile   = "taste_profile"
	fieldDocument       = "document"
)

// metadataFields are the hash fields fetched back on search.
var metadataFields = []string{
	fieldName,
	fieldDescription,
	fieldCuisine,
	fieldCalories,
	fieldIngredients,
	fieldHealthBenefits,
	fieldCookingMethod,
	fieldTasteProfile,
}

// documentText synthesizes the narrative string that gets embedded for
// similarity search.
func documentText(item *food.Item) string {
	var sb strings.Builder

	sb.WriteString("Name: " + item.Name + ". ")
	sb.WriteString("Description: " + item.Description + ". ")
	sb.WriteString("Ingredients: " + strings.Join(item.Ingredients, ", ") + ". ")
	sb.WriteString("Cuisine: " + item.Cuisine + ". ")
	sb.WriteString("Cooking method: " + item.CookingMethod + ". ")

	if item.TasteProfile != "" {
		sb.WriteString("Taste and features: " + item.TasteProfile + ". ")
	}
	if item.HealthBenefits != "" {
		sb.WriteString("Health benefits: " + item.HealthBenefits + ". ")
	}
	if len(item.Nutrition) > 0 {
		keys := make([]string, 0, len(item.Nutrition))
		for k := range item.Nutrition {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+item.Nutrition[k])
		}
		sb.WriteString("Nutrition: " + strings.Join(parts, ", ") + ".")
	}

	return sb.String()
}

// itemFields builds the stored hash fields for a catalog item. Filterable
// fields keep the exact type the filter predicates use: calories numeric,
// cuisine an exact-match tag.
func itemFields(item *food.Item, doc string) map[string]string {
	return map[string]string{
		fieldName:           item.Name,
		fieldDescription:    item.Description,
		fieldCuisine:        item.Cuisine,
		fieldCalories:       strconv.Itoa(item.Calories),
		fieldIngredients:    strings.Join(item.Ingredients, ", "),
		fieldHealthBenefits: item.HealthBenefits,
		fieldCookingMethod:  item.CookingMethod,
		fieldTasteProfile:   item.TasteProfile,
		fieldDocument:       doc,
	}
}

// metadataFromFields reconstructs display metadata from stored hash fields.
func metadataFromFields(fields map[string]string) result.Metadata {
	calories, _ := strconv.Atoi(fields[fieldCalories])

	var ingredients []string
	if raw := fields[fieldIngredients]; raw != "" {
		ingredients = strings.Split(raw, ", ")
	}

	return result.Metadata{
		Name:           fields[fieldName],
		Description:    fields[fieldDescription],
		Cuisine:        fields[fieldCuisine],
		Calories:       calories,
		Ingredients:    ingredients,
		HealthBenefits: fields[fieldHealthBenefits],
		CookingMethod:  fields[fieldCookingMethod],
		TasteProfile:   fields[fieldTasteProfile],
	}
}
