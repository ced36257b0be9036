package shape

import (
	"testing"

	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/segment"
)

func TestNullShaperRejectsNilFace(t *testing.T) {
	s := NewNullShaper()
	run := segment.Run{Text: "hi"}
	_, err := s.Shape(run, nil, 12, nil)
	if _, ok := err.(ErrFontMissing); !ok {
		t.Fatalf("err = %v, want ErrFontMissing", err)
	}
}

func TestNullShaperRejectsFaceWithoutUnderlyingFontFace(t *testing.T) {
	s := NewNullShaper()
	run := segment.Run{Text: "hi"}
	_, err := s.Shape(run, &fontdb.Face{}, 12, nil)
	if _, ok := err.(ErrFontMissing); !ok {
		t.Fatalf("err = %v, want ErrFontMissing", err)
	}
}

func TestRuneLenMatchesUTF8Width(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'é', 2},
		{'あ', 3},
		{'\U0001F600', 4},
	}
	for _, c := range cases {
		if got := runeLen(c.r); got != c.want {
			t.Errorf("runeLen(%q) = %d, want %d", c.r, got, c.want)
		}
	}
}
