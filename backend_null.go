package typf

import "github.com/typf-go/typf/internal/shape"

func init() {
	RegisterBackend("null", newNullBackend)
}

// newNullBackend constructs the diagnostic backend: cmap+hmtx glyph
// mapping (internal/shape.NullShaper) with no OpenType GSUB/GPOS, run
// through the same rasterization path as the orge backend. It exists to
// isolate shaping-engine bugs from rasterizer bugs, not as a substitute
// for the orge backend on real text (spec.md §4.4 "NullShaper ...
// exists only as a diagnostic fallback").
func newNullBackend() (Backend, error) {
	return newSoftwareBackend("null", shape.NewNullShaper())
}
