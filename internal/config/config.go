// Package config holds process-wide tunables for the rendering pipeline:
// cache capacities, the default grayscale oversampling factor, curve
// flattening tolerance, and backend preference order. These are the
// implementation-defined knobs spec.md §9 leaves unspecified.
package config

import "fmt"

// Config holds the global configuration for the typf pipeline.
type Config struct {
	// GlyphCacheCapacity is the maximum number of rasterized glyph bitmaps
	// held by the glyph cache before LRU eviction (spec.md §4.5).
	GlyphCacheCapacity int

	// ShapeCacheCapacity is the maximum number of cached shaping results.
	ShapeCacheCapacity int

	// OversampleFactor is the default supersampling factor k the
	// rasterizer renders at before downsampling to the requested
	// grayscale bitmap (spec.md §4.6, one of 1, 2, 4, 8).
	OversampleFactor int

	// FlattenTolerance is the default maximum deviation, in pixels,
	// between a flattened polyline and the Bezier curve it approximates
	// (spec.md §4.7).
	FlattenTolerance float64

	// BackendOrder is the preference order pipeline.Open tries when no
	// explicit backend is requested (spec.md §4.1).
	BackendOrder []string
}

// Default oversample factors, cache sizes, and tolerance; spec.md §9
// leaves these implementation-defined, fixed here per DESIGN.md's
// recorded Open Question resolution.
const (
	DefaultGlyphCacheCapacity = 4096
	DefaultShapeCacheCapacity = 1024
	DefaultOversampleFactor   = 4
	DefaultFlattenTolerance   = 0.25
)

// DefaultBackendOrder is the platform-independent portion of the
// fallback chain; platform-specific backends insert themselves ahead of
// "orge" via their build-tagged init (see backend_coretext_darwin.go,
// backend_directwrite_windows.go).
var DefaultBackendOrder = []string{"tinyskia", "orge"}

var globalConfig = Config{
	GlyphCacheCapacity: DefaultGlyphCacheCapacity,
	ShapeCacheCapacity: DefaultShapeCacheCapacity,
	OversampleFactor:   DefaultOversampleFactor,
	FlattenTolerance:   DefaultFlattenTolerance,
	BackendOrder:       append([]string(nil), DefaultBackendOrder...),
}

// SetConfig replaces the global configuration wholesale.
func SetConfig(cfg Config) {
	globalConfig = cfg
}

// GetConfig returns a copy of the current global configuration.
func GetConfig() Config {
	return globalConfig
}

// SetCacheCapacities overrides the glyph and shape cache capacities.
// A non-positive value leaves the corresponding capacity unchanged.
func SetCacheCapacities(glyphCapacity, shapeCapacity int) {
	if glyphCapacity > 0 {
		globalConfig.GlyphCacheCapacity = glyphCapacity
	}
	if shapeCapacity > 0 {
		globalConfig.ShapeCacheCapacity = shapeCapacity
	}
}

// SetOversampleFactor overrides the default rasterizer oversample factor.
func SetOversampleFactor(k int) {
	globalConfig.OversampleFactor = k
}

// SetFlattenTolerance overrides the default curve flattening tolerance.
func SetFlattenTolerance(tolerance float64) {
	globalConfig.FlattenTolerance = tolerance
}

// SetBackendOrder overrides the backend auto-selection preference order.
func SetBackendOrder(order []string) {
	globalConfig.BackendOrder = append([]string(nil), order...)
}

// Validate reports configuration values that are out of the ranges the
// rest of the pipeline assumes.
func (c Config) Validate() []string {
	var warnings []string
	if c.GlyphCacheCapacity <= 0 {
		warnings = append(warnings, "GlyphCacheCapacity must be positive")
	}
	if c.ShapeCacheCapacity <= 0 {
		warnings = append(warnings, "ShapeCacheCapacity must be positive")
	}
	switch c.OversampleFactor {
	case 1, 2, 4, 8:
	default:
		warnings = append(warnings, fmt.Sprintf("OversampleFactor %d is not one of 1, 2, 4, 8", c.OversampleFactor))
	}
	if c.FlattenTolerance <= 0 {
		warnings = append(warnings, "FlattenTolerance must be positive")
	}
	if len(c.BackendOrder) == 0 {
		warnings = append(warnings, "BackendOrder must not be empty")
	}
	return warnings
}

// String renders a human-readable summary of the configuration, useful
// for diagnostics when a backend fails to open.
func (c Config) String() string {
	return fmt.Sprintf(
		"typf config: glyph_cache=%d shape_cache=%d oversample=%d flatten_tolerance=%.3f backends=%v",
		c.GlyphCacheCapacity, c.ShapeCacheCapacity, c.OversampleFactor, c.FlattenTolerance, c.BackendOrder,
	)
}
