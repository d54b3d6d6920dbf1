// Package filter models the metadata constraints a search can carry:
// a conjunction of an exact cuisine match and a calorie ceiling.
package filter

import "fmt"

// Metadata field names the food index exposes for filtering.
const (
	FieldCuisine  = "cuisine"
	FieldCalories = "calories"
)

// Condition is a single predicate: either an exact tag match or an
// inclusive numeric upper bound.
type Condition struct {
	key   string
	match string
	lte   *float64
}

// NewMatch creates an exact, case-sensitive tag match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// NewMax creates an inclusive upper-bound condition (field <= max).
func NewMax(key string, maxVal float64) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, lte: &maxVal}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Max returns the inclusive upper bound.
func (c Condition) Max() *float64 { return c.lte }

// IsMatch reports whether this is a match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsMax reports whether this is an upper-bound condition.
func (c Condition) IsMax() bool { return c.lte != nil }

// Filter is a conjunction of zero or more conditions. The zero value
// matches every document.
type Filter struct {
	conds []Condition
}

// New creates a filter from the given conditions (combined with AND).
func New(conds ...Condition) Filter {
	return Filter{conds: conds}
}

// Conditions returns the conjunction members.
func (f Filter) Conditions() []Condition { return f.conds }

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool { return len(f.conds) == 0 }

// Compose builds the filter for the search surface: an empty cuisine and a
// nil calorie cap each mean "unconstrained". Both set yields the AND of the
// two predicates.
func Compose(cuisine string, maxCalories *int) Filter {
	var conds []Condition

	if cuisine != "" {
		c, err := NewMatch(FieldCuisine, cuisine)
		if err == nil {
			conds = append(conds, c)
		}
	}
	if maxCalories != nil {
		c, err := NewMax(FieldCalories, float64(*maxCalories))
		if err == nil {
			conds = append(conds, c)
		}
	}

	return New(conds...)
}
