// Package food holds the canonical catalog entry produced by the catalog loader.
package food

// Item is one canonical catalog entry. Constructed once at load time,
// read-only thereafter.
type Item struct {
	ID             string
	Name           string
	Description    string
	Cuisine        string
	Calories       int
	Ingredients    []string
	HealthBenefits string
	CookingMethod  string
	TasteProfile   string
	Nutrition      map[string]string
}

// Catalog is the ordered sequence of loaded items.
type Catalog []Item
