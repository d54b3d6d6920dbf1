// Package result holds the per-query search hit value.
package result

// Metadata carries the display and detail fields stored alongside a document.
type Metadata struct {
	Name           string
	Description    string
	Cuisine        string
	Calories       int
	Ingredients    []string
	HealthBenefits string
	CookingMethod  string
	TasteProfile   string
}

// Hit is one raw index match before score derivation: identifier, stored
// metadata, and the raw distance reported by the KNN stage.
type Hit struct {
	ID       string
	Meta     Metadata
	Distance float64
}

// Result is a single ranked hit. The similarity score is derived from the
// raw cosine distance as 1 - distance, so it never increases as relevance
// decreases. Results are ephemeral: produced fresh per query, never stored.
type Result struct {
	id       string
	distance float64
	score    float64
	meta     Metadata
}

// New creates a result, deriving the similarity score from the index distance.
func New(id string, distance float64, meta Metadata) Result {
	return Result{
		id:       id,
		distance: distance,
		score:    1 - distance,
		meta:     meta,
	}
}

// ID returns the indexed document identifier.
func (r *Result) ID() string { return r.id }

// Distance returns the raw index distance.
func (r *Result) Distance() float64 { return r.distance }

// Score returns the normalized similarity score.
func (r *Result) Score() float64 { return r.score }

// Name returns the item name.
func (r *Result) Name() string { return r.meta.Name }

// Description returns the item description.
func (r *Result) Description() string { return r.meta.Description }

// Cuisine returns the cuisine type.
func (r *Result) Cuisine() string { return r.meta.Cuisine }

// Calories returns calories per serving.
func (r *Result) Calories() int { return r.meta.Calories }

// Ingredients returns the ingredient list.
func (r *Result) Ingredients() []string { return r.meta.Ingredients }

// HealthBenefits returns the health benefits text, if any.
func (r *Result) HealthBenefits() string { return r.meta.HealthBenefits }

// CookingMethod returns the cooking method, if any.
func (r *Result) CookingMethod() string { return r.meta.CookingMethod }

// TasteProfile returns the derived taste profile, if any.
func (r *Result) TasteProfile() string { return r.meta.TasteProfile }
