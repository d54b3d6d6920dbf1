package recommend

import (
	"strings"
	"testing"

	"github.com/AliAbdallah21/foodrec/internal/domain/search/result"
)

func testResult(id, name string, distance float64) result.Result {
	return result.New(id, distance, result.Metadata{
		Name:        name,
		Description: "desc " + name,
		Cuisine:     "Thai",
		Calories:    450,
	})
}

func TestBuildContext_Empty(t *testing.T) {
	got := BuildContext(nil)
	want := "No relevant food items found in the database."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildContext_Header(t *testing.T) {
	ctx := BuildContext([]result.Result{testResult("1", "Pad Thai", 0.2)})
	if !strings.HasPrefix(ctx, "Based on the user's query, here are the most relevant food options from our database:\n") {
		t.Errorf("missing header, got:\n%s", ctx)
	}
}

func TestBuildContext_TopThreeOnly(t *testing.T) {
	results := []result.Result{
		testResult("1", "A", 0.1),
		testResult("2", "B", 0.2),
		testResult("3", "C", 0.3),
		testResult("4", "D", 0.4),
	}

	ctx := BuildContext(results)

	for _, want := range []string{"Option 1: A", "Option 2: B", "Option 3: C"} {
		if !strings.Contains(ctx, want) {
			t.Errorf("missing %q in context", want)
		}
	}
	if strings.Contains(ctx, "Option 4") {
		t.Error("fourth result must not appear in the context")
	}
}

func TestBuildContext_IngredientLimit(t *testing.T) {
	r := result.New("1", 0.2, result.Metadata{
		Name:        "A",
		Ingredients: []string{"i1", "i2", "i3", "i4", "i5", "i6", "i7"},
	})

	ctx := BuildContext([]result.Result{r})

	if !strings.Contains(ctx, "Key ingredients: i1, i2, i3, i4, i5") {
		t.Errorf("expected first five ingredients, got:\n%s", ctx)
	}
	if strings.Contains(ctx, "i6") {
		t.Error("sixth ingredient must not appear")
	}
}

func TestBuildContext_OptionalLinesOmitted(t *testing.T) {
	r := result.New("1", 0.2, result.Metadata{Name: "Plain"})

	ctx := BuildContext([]result.Result{r})

	for _, absent := range []string{"Key ingredients", "Health benefits", "Cooking method", "Taste profile"} {
		if strings.Contains(ctx, absent) {
			t.Errorf("%q must be omitted for empty metadata", absent)
		}
	}
	// unconditional lines stay
	for _, present := range []string{"Description:", "Cuisine:", "Calories:"} {
		if !strings.Contains(ctx, present) {
			t.Errorf("%q must always appear", present)
		}
	}
}

func TestBuildContext_SimilarityPercent(t *testing.T) {
	ctx := BuildContext([]result.Result{testResult("1", "A", 0.25)})
	if !strings.Contains(ctx, "Similarity score: 75.0%") {
		t.Errorf("expected 75.0%% similarity line, got:\n%s", ctx)
	}
}

func TestFallbackSummary_Empty(t *testing.T) {
	got := FallbackSummary("anything", nil)
	want := "I couldn't find any food items matching your request. " +
		"Try describing what you're in the mood for with different words!"
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestFallbackSummary_SingleResult(t *testing.T) {
	got := FallbackSummary("spicy noodles", []result.Result{testResult("1", "Pad Thai", 0.2)})
	want := "Based on your request for 'spicy noodles', I'd recommend Pad Thai. " +
		"It's a Thai dish with 450 calories per serving."
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestFallbackSummary_RunnerUpNamed(t *testing.T) {
	results := []result.Result{
		testResult("1", "Pad Thai", 0.1),
		testResult("2", "Tom Yum", 0.2),
		testResult("3", "Green Curry", 0.3),
	}

	got := FallbackSummary("soup", results)

	if !strings.HasSuffix(got, "Another great option would be Tom Yum.") {
		t.Errorf("expected runner-up sentence, got %q", got)
	}
	if strings.Contains(got, "Green Curry") {
		t.Error("third result must not be named")
	}
}

func TestFallbackComparison(t *testing.T) {
	a := []result.Result{testResult("1", "Pad Thai", 0.1)}
	b := []result.Result{testResult("2", "Sushi", 0.2)}

	tests := []struct {
		name string
		r1   []result.Result
		r2   []result.Result
		want string
	}{
		{"both empty", nil, nil, "No results found for either query."},
		{"first empty", nil, b, "Found results for 'q2' but none for 'q1'."},
		{"second empty", a, nil, "Found results for 'q1' but none for 'q2'."},
		{"both present", a, b, "For 'q1', I recommend Pad Thai. For 'q2', Sushi would be perfect."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackComparison("q1", "q2", tt.r1, tt.r2)
			if got != tt.want {
				t.Errorf("got %q\nwant %q", got, tt.want)
			}
		})
	}
}
