package segment

import "testing"

func TestGraphemeBoundariesPartitionText(t *testing.T) {
	text := "hello"
	bounds := GraphemeBoundaries(text)
	if len(bounds) != 5 {
		t.Fatalf("len(bounds) = %d, want 5", len(bounds))
	}
	if bounds[0].Start != 0 {
		t.Errorf("first boundary start = %d, want 0", bounds[0].Start)
	}
	if bounds[len(bounds)-1].End != len(text) {
		t.Errorf("last boundary end = %d, want %d", bounds[len(bounds)-1].End, len(text))
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i].Start != bounds[i-1].End {
			t.Errorf("boundary %d starts at %d, want %d (contiguous)", i, bounds[i].Start, bounds[i-1].End)
		}
	}
}

func TestGraphemeBoundariesEmptyInput(t *testing.T) {
	if got := GraphemeBoundaries(""); got != nil {
		t.Errorf("GraphemeBoundaries(\"\") = %v, want nil", got)
	}
}

func TestGraphemeBoundariesCombiningMark(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT is one extended grapheme cluster.
	text := "é"
	bounds := GraphemeBoundaries(text)
	if len(bounds) != 1 {
		t.Fatalf("len(bounds) = %d, want 1 (combining mark joins base)", len(bounds))
	}
	if bounds[0].Start != 0 || bounds[0].End != len(text) {
		t.Errorf("bound = %+v, want [0,%d)", bounds[0], len(text))
	}
}

func TestWordBoundariesPartitionText(t *testing.T) {
	text := "hello world"
	bounds := WordBoundaries(text)
	if len(bounds) == 0 {
		t.Fatal("expected at least one word boundary")
	}
	if bounds[0].Start != 0 {
		t.Errorf("first boundary start = %d, want 0", bounds[0].Start)
	}
	if bounds[len(bounds)-1].End != len(text) {
		t.Errorf("last boundary end = %d, want %d", bounds[len(bounds)-1].End, len(text))
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i].Start != bounds[i-1].End {
			t.Errorf("boundary %d starts at %d, want %d (contiguous)", i, bounds[i].Start, bounds[i-1].End)
		}
	}
}

func TestWordBoundariesEmptyInput(t *testing.T) {
	if got := WordBoundaries(""); got != nil {
		t.Errorf("WordBoundaries(\"\") = %v, want nil", got)
	}
}
