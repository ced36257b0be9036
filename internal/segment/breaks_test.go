package segment

import (
	"reflect"
	"testing"
)

func TestHardBreakOffsetsLF(t *testing.T) {
	got := hardBreakOffsets("ab\ncd")
	want := []int{3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hardBreakOffsets = %v, want %v", got, want)
	}
}

func TestHardBreakOffsetsCRLF(t *testing.T) {
	// CR and LF are each treated as their own hard break point.
	got := hardBreakOffsets("ab\r\ncd")
	want := []int{3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hardBreakOffsets = %v, want %v", got, want)
	}
}

func TestHardBreakOffsetsLineAndParagraphSeparator(t *testing.T) {
	text := "a" + string(rune(0x2028)) + "b" + string(rune(0x2029)) + "c"
	got := hardBreakOffsets(text)
	if len(got) != 2 {
		t.Fatalf("len(offsets) = %d, want 2, got %v", len(got), got)
	}
}

func TestHardBreakOffsetsNone(t *testing.T) {
	if got := hardBreakOffsets("no breaks here"); got != nil {
		t.Errorf("hardBreakOffsets = %v, want nil", got)
	}
}
