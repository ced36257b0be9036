package typf

import (
	"github.com/typf-go/typf/internal/cache"
	"github.com/typf-go/typf/internal/config"
	"github.com/typf-go/typf/internal/shape"
	"github.com/typf-go/typf/internal/surface"
)

// ShapeCacheKey identifies a cached ShapingResult (spec.md §4.5 "key as
// in §3": font identity, run text, script, language, direction,
// features). Features are folded into Font's CacheKey digest already,
// so they aren't repeated here.
type ShapeCacheKey struct {
	Font      CacheKey
	Text      string
	Script    string
	Language  string
	Direction Direction
}

// GlyphCacheKey identifies a cached rasterized glyph mask (spec.md §4.5
// "key as in §3": font identity, glyph id, size, variation hash, AA
// mode). SizePx is the size actually used for rasterization (which may
// differ per render call from the Font's own SizePt, e.g. when the same
// resolved Font is reused at several RenderOptions.FontSize values).
type GlyphCacheKey struct {
	Font    CacheKey
	GlyphID uint32
	SizePx  float64
	AA      Antialias
}

// ShapeCache caches ShapingResults, bounded and singleflight-coalesced
// (spec.md §4.5 "Shape cache"). Backends construct one per process by
// default via newShapeCache, sized from internal/config.
type ShapeCache = cache.Cache[ShapeCacheKey, *shape.ShapingResult]

// renderedGlyph is a rasterized glyph mask plus the integer pixel
// offset of its bitmap's origin relative to the glyph's pen position
// (a glyph's ink rarely starts exactly at the baseline/pen point).
type renderedGlyph struct {
	bitmap  *surface.Bitmap
	originX int
	originY int
}

// GlyphCache caches rasterized glyph masks (spec.md §4.5 "Glyph
// cache"; this is the cache spec.md §3 calls "FontCache" — typf names
// it GlyphCache instead since it never caches Font values themselves,
// only rasterized glyph bitmaps).
type GlyphCache = cache.Cache[GlyphCacheKey, *renderedGlyph]

func newShapeCache() *ShapeCache {
	return cache.New[ShapeCacheKey, *shape.ShapingResult](config.GetConfig().ShapeCacheCapacity)
}

func newGlyphCache() *GlyphCache {
	return cache.New[GlyphCacheKey, *renderedGlyph](config.GetConfig().GlyphCacheCapacity)
}
