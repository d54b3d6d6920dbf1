package redis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AliAbdallah21/foodrec/internal/db"
	"github.com/AliAbdallah21/foodrec/internal/domain/search/filter"
)

func TestBuildFilter_Empty(t *testing.T) {
	if got := buildFilter(filter.Filter{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestBuildFilter_TagOnly(t *testing.T) {
	f := filter.Compose("Thai", nil)
	if got := buildFilter(f); got != "@cuisine:{Thai}" {
		t.Errorf("got %q", got)
	}
}

func TestBuildFilter_TagEscaping(t *testing.T) {
	f := filter.Compose("Tex-Mex Fusion", nil)
	want := `@cuisine:{Tex\-Mex\ Fusion}`
	if got := buildFilter(f); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildFilter_NumericOnly(t *testing.T) {
	maxCal := 400
	f := filter.Compose("", &maxCal)
	if got := buildFilter(f); got != "@calories:[-inf 400]" {
		t.Errorf("got %q", got)
	}
}

func TestBuildFilter_Conjunction(t *testing.T) {
	maxCal := 400
	f := filter.Compose("Thai", &maxCal)
	if got := buildFilter(f); got != "@cuisine:{Thai} @calories:[-inf 400]" {
		t.Errorf("got %q", got)
	}
}

func TestBuildCreateArgs(t *testing.T) {
	def := &db.IndexDefinition{
		Name:     "foodrec:food_items:idx",
		Prefixes: []string{"foodrec:food_items:doc:"},
		Fields: []db.IndexField{
			{Name: "cuisine", Type: db.IndexFieldTag, TagCaseSensitive: true},
			{Name: "calories", Type: db.IndexFieldNumeric},
			{
				Name:              "vector",
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         1536,
				VectorDistance:    db.DistanceCosine,
				VectorM:           32,
				VectorEFConstruct: 400,
			},
		},
	}

	args, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"foodrec:food_items:idx", "ON", "HASH",
		"PREFIX", "1", "foodrec:food_items:doc:",
		"SCHEMA",
		"cuisine", "TAG", "CASESENSITIVE",
		"calories", "NUMERIC",
		"vector", "VECTOR", "HNSW", "10",
		"TYPE", "FLOAT32",
		"DIM", "1536",
		"DISTANCE_METRIC", "COSINE",
		"M", "32",
		"EF_CONSTRUCTION", "400",
	}

	if !reflect.DeepEqual(args, want) {
		t.Errorf("args:\ngot  %v\nwant %v", args, want)
	}
}

func TestBuildCreateArgs_InvalidDefinition(t *testing.T) {
	if _, err := buildCreateArgs(&db.IndexDefinition{}); err == nil {
		t.Error("expected error for empty definition")
	}
}

func TestBuildVectorFieldArgs_Defaults(t *testing.T) {
	args, err := buildVectorFieldArgs(&db.IndexField{
		Name:      "vector",
		Type:      db.IndexFieldVector,
		VectorDim: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(args, " ")
	if !strings.HasPrefix(joined, "VECTOR HNSW") {
		t.Errorf("default algorithm must be HNSW, got %q", joined)
	}
	if !strings.Contains(joined, "DISTANCE_METRIC COSINE") {
		t.Errorf("default metric must be COSINE, got %q", joined)
	}
}

func TestBuildVectorFieldArgs_MissingDim(t *testing.T) {
	if _, err := buildVectorFieldArgs(&db.IndexField{Name: "vector", Type: db.IndexFieldVector}); err == nil {
		t.Error("expected error for missing DIM")
	}
}
