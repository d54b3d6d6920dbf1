package recommend

import "fmt"

// Generation parameters per prompt kind.
const (
	recommendMaxTokens  = 400
	comparisonMaxTokens = 500
	generationTemp      = 0.7
)

// minResponseLength is the quality floor for generated recommendations;
// anything shorter is discarded in favor of the deterministic fallback.
const minResponseLength = 50

const systemRecommend = "You are a helpful food recommendation assistant."

const systemCompare = "You are a helpful food recommendation assistant for comparing queries."

// recommendPrompt embeds the raw query and the retrieval context with
// explicit grounding instructions: the model recommends only from the
// supplied options.
func recommendPrompt(query, context string) string {
	return fmt.Sprintf(`You are a helpful food recommendation assistant. A user is asking for food recommendations, and I've retrieved relevant options from a food database.

User Query: %q

Retrieved Food Information:
%s

Please provide a helpful, short response that:
1. Acknowledges the user's request
2. Recommends 2-3 specific food items from the retrieved options
3. Explains why these recommendations match their request
4. Includes relevant details like cuisine type, calories, or health benefits
5. Uses a friendly, conversational tone
6. Keeps the response concise but informative

Response:`, query, context)
}

// comparisonPrompt embeds both queries with their retrieval contexts.
func comparisonPrompt(query1, query2, context1, context2 string) string {
	return fmt.Sprintf(`You are analyzing and comparing two different food preference queries. Please provide a thoughtful comparison.

Query 1: %q
Top Results for Query 1:
%s

Query 2: %q
Top Results for Query 2:
%s

Please provide a short comparison that:
1. Highlights the key differences between these two food preferences
2. Notes any similarities or overlaps
3. Explains which query might be better for different situations
4. Recommends the best option from each query
5. Keeps the analysis concise but insightful

Comparison:`, query1, context1, query2, context2)
}
