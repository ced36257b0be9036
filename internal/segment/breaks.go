package segment

import "unicode/utf8"

const (
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

// hardBreakOffsets returns the byte offsets immediately following each
// hard line-break character in text: LF, CR, LINE SEPARATOR, and
// PARAGRAPH SEPARATOR always terminate a run, regardless of script or
// bidi level, so layout never has to reshape across a forced newline.
func hardBreakOffsets(text string) []int {
	var offsets []int
	for i, r := range text {
		switch r {
		case '\n', '\r', lineSeparator, paragraphSeparator:
			offsets = append(offsets, i+utf8.RuneLen(r))
		}
	}
	return offsets
}
