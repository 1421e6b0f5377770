package workflow

import "testing"

func TestLookupTotalOverAllCodes(t *testing.T) {
	for _, op := range []Operation{OpGenerate, OpFix, OpExplain, OpOptimize, OpSuggest, OpJoin} {
		s := Lookup(op)
		if s.Label == "" || s.Description == "" {
			t.Errorf("Lookup(%s) returned empty label/description", op)
		}
		if s.Endpoint == "" {
			t.Errorf("Lookup(%s) returned empty endpoint", op)
		}
		if s.Op != op {
			t.Errorf("Lookup(%s) returned spec for %s", op, s.Op)
		}
	}
}

func TestParseDefaultsToGenerate(t *testing.T) {
	tests := []struct {
		raw  string
		want Operation
	}{
		{"generate", OpGenerate},
		{"fix", OpFix},
		{"explain", OpExplain},
		{"optimize", OpOptimize},
		{"suggest", OpSuggest},
		{"join", OpJoin},
		{"  Suggest ", OpSuggest},
		{"", OpGenerate},
		{"bogus", OpGenerate},
		{"delete", OpGenerate},
	}
	for _, tt := range tests {
		if got := Parse(tt.raw); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestLookupUnknownFallsBackToGenerate(t *testing.T) {
	if got := Lookup(Operation("nope")).Op; got != OpGenerate {
		t.Errorf("Lookup(nope) = %s, want generate", got)
	}
}

func TestClampSuggestionCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 5},
		{"   ", 5},
		{"abc", 5},
		{"3.5", 5},
		{"0", 1},
		{"-4", 1},
		{"1", 1},
		{"7", 7},
		{"10", 10},
		{"15", 10},
		{"12", 10},
		{" 8 ", 8},
	}
	for _, tt := range tests {
		if got := ClampSuggestionCount(tt.raw); got != tt.want {
			t.Errorf("ClampSuggestionCount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestNextPrevWrapAround(t *testing.T) {
	op := OpGenerate
	for i := 0; i < 6; i++ {
		op = Next(op)
	}
	if op != OpGenerate {
		t.Errorf("six Next calls should wrap back to generate, got %s", op)
	}
	if Prev(OpGenerate) != OpJoin {
		t.Errorf("Prev(generate) = %s, want join", Prev(OpGenerate))
	}
}
