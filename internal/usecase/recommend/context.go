package recommend

import (
	"fmt"
	"strings"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

// contextResultLimit bounds how many ranked results feed the prompt.
const contextResultLimit = 3

// contextIngredientLimit bounds listed ingredients per result, for
// prompt-length control.
const contextIngredientLimit = 5

// noResultsContext is the sentinel fed to generation when retrieval came
// back empty. Never an empty string, so the prompt can state the absence.
const noResultsContext = "No relevant food items found in the database."

// BuildContext renders the top ranked results as labeled text blocks for
// the generation prompt. Earlier-ranked results are strictly preferred and
// never reordered.
func BuildContext(results []result.Result) string {
	if len(results) == 0 {
		return noResultsContext
	}

	parts := []string{
		"Based on the user's query, here are the most relevant food options from our database:",
		"",
	}

	limit := min(len(results), contextResultLimit)
	for i := 0; i < limit; i++ {
		r := &results[i]

		parts = append(parts,
			fmt.Sprintf("Option %d: %s", i+1, r.Name()),
			fmt.Sprintf("  - Description: %s", r.Description()),
			fmt.Sprintf("  - Cuisine: %s", r.Cuisine()),
			fmt.Sprintf("  - Calories: %d per serving", r.Calories()),
		)

		if ingredients := r.Ingredients(); len(ingredients) > 0 {
			shown := ingredients[:min(len(ingredients), contextIngredientLimit)]
			parts = append(parts, fmt.Sprintf("  - Key ingredients: %s", strings.Join(shown, ", ")))
		}
		if r.HealthBenefits() != "" {
			parts = append(parts, fmt.Sprintf("  - Health benefits: %s", r.HealthBenefits()))
		}
		if r.CookingMethod() != "" {
			parts = append(parts, fmt.Sprintf("  - Cooking method: %s", r.CookingMethod()))
		}
		if r.TasteProfile() != "" {
			parts = append(parts, fmt.Sprintf("  - Taste profile: %s", r.TasteProfile()))
		}

		parts = append(parts,
			fmt.Sprintf("  - Similarity score: %.1f%%", r.Score()*100),
			"",
		)
	}

	return strings.Join(parts, "\n")
}

// FallbackSummary is the availability floor: a deterministic recommendation
// built from retrieval alone, naming the top result and, when present, the
// runner-up. It never touches the generation backend.
func FallbackSummary(query string, results []result.Result) string {
	if len(results) == 0 {
		return "I couldn't find any food items matching your request. " +
			"Try describing what you're in the mood for with different words!"
	}

	top := &results[0]
	parts := []string{
		fmt.Sprintf("Based on your request for '%s', I'd recommend %s.", query, top.Name()),
		fmt.Sprintf("It's a %s dish with %d calories per serving.", top.Cuisine(), top.Calories()),
	}

	if len(results) > 1 {
		parts = append(parts, fmt.Sprintf("Another great option would be %s.", results[1].Name()))
	}

	return strings.Join(parts, " ")
}

// FallbackComparison is the deterministic comparison used when generation
// is unavailable: it names each side's top result, or states which side
// came back empty.
func FallbackComparison(query1, query2 string, results1, results2 []result.Result) string {
	if len(results1) == 0 && len(results2) == 0 {
		return "No results found for either query."
	}
	if len(results1) == 0 {
		return fmt.Sprintf("Found results for '%s' but none for '%s'.", query2, query1)
	}
	if len(results2) == 0 {
		return fmt.Sprintf("Found results for '%s' but none for '%s'.", query1, query2)
	}

	return fmt.Sprintf("For '%s', I recommend %s. For '%s', %s would be perfect.",
		query1, results1[0].Name(), query2, results2[0].Name())
}
