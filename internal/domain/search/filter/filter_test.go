package filter

import "testing"

func TestNewMatch(t *testing.T) {
	c, err := NewMatch(FieldCuisine, "Thai")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != FieldCuisine {
		t.Errorf("key: got %q, want %q", c.Key(), FieldCuisine)
	}
	if c.Match() != "Thai" {
		t.Errorf("match: got %q, want %q", c.Match(), "Thai")
	}
	if !c.IsMatch() {
		t.Error("expected IsMatch")
	}
	if c.IsMax() {
		t.Error("unexpected IsMax")
	}
}

func TestNewMatch_EmptyKey(t *testing.T) {
	if _, err := NewMatch("", "Thai"); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestNewMatch_EmptyValue(t *testing.T) {
	if _, err := NewMatch(FieldCuisine, ""); err == nil {
		t.Error("expected error for empty match value")
	}
}

func TestNewMax(t *testing.T) {
	c, err := NewMax(FieldCalories, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsMax() {
		t.Error("expected IsMax")
	}
	if c.IsMatch() {
		t.Error("unexpected IsMatch")
	}
	if c.Max() == nil || *c.Max() != 300 {
		t.Errorf("max: got %v, want 300", c.Max())
	}
}

func TestCompose_BothUnset(t *testing.T) {
	f := Compose("", nil)
	if !f.IsEmpty() {
		t.Errorf("expected empty filter, got %d conditions", len(f.Conditions()))
	}
}

func TestCompose_CuisineOnly(t *testing.T) {
	f := Compose("Thai", nil)
	conds := f.Conditions()
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(conds))
	}
	if conds[0].Key() != FieldCuisine || conds[0].Match() != "Thai" {
		t.Errorf("got %q=%q, want cuisine=Thai", conds[0].Key(), conds[0].Match())
	}
}

func TestCompose_CaloriesOnly(t *testing.T) {
	maxCal := 300
	f := Compose("", &maxCal)
	conds := f.Conditions()
	if len(conds) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(conds))
	}
	if conds[0].Key() != FieldCalories {
		t.Errorf("key: got %q, want %q", conds[0].Key(), FieldCalories)
	}
	if conds[0].Max() == nil || *conds[0].Max() != 300 {
		t.Errorf("max: got %v, want 300", conds[0].Max())
	}
}

func TestCompose_Both(t *testing.T) {
	maxCal := 300
	f := Compose("Thai", &maxCal)
	conds := f.Conditions()
	if len(conds) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(conds))
	}
	if conds[0].Key() != FieldCuisine {
		t.Errorf("first condition: got %q, want cuisine", conds[0].Key())
	}
	if conds[1].Key() != FieldCalories {
		t.Errorf("second condition: got %q, want calories", conds[1].Key())
	}
}

func TestFilter_ZeroValueIsEmpty(t *testing.T) {
	var f Filter
	if !f.IsEmpty() {
		t.Error("zero value filter should be empty")
	}
}
