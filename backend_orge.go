package typf

import (
	"fmt"
	"math"
	"sync"

	gofont "github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"

	"github.com/typf-go/typf/internal/basics"
	"github.com/typf-go/typf/internal/config"
	"github.com/typf-go/typf/internal/fontdb"
	"github.com/typf-go/typf/internal/orge"
	"github.com/typf-go/typf/internal/segment"
	"github.com/typf-go/typf/internal/shape"
	"github.com/typf-go/typf/internal/surface"
	"github.com/typf-go/typf/internal/transform"
)

func init() {
	RegisterBackend("orge", newOrgeBackend)
}

// softwareBackend is the shared implementation behind every pure-Go
// Backend: glyph outline extraction, rasterization, and compositing are
// identical regardless of which Shaper produced the glyphs. newOrgeBackend
// (HarfbuzzShaper) and newNullBackend (NullShaper, backend_null.go) are
// both thin constructors over this type, parameterized only by name and
// shaper — the spec.md §4.1 requirement that backends be distinct,
// independently selectable implementations doesn't require duplicating
// the rasterization path twice.
type softwareBackend struct {
	name string

	dbMu       sync.Mutex // fontdb.Database documents itself as not concurrency-safe
	fonts      *fontdb.Database
	registered map[string]bool

	shaper shape.Shaper

	cacheMu    sync.RWMutex // guards swapping the cache pointers on ClearCache
	shapeCache *ShapeCache
	glyphCache *GlyphCache
}

func newSoftwareBackend(name string, shaper shape.Shaper) (Backend, error) {
	db := fontdb.NewDatabase()
	_ = db.UseSystemFonts("") // best effort; an in-memory-only index is a valid fallback

	return &softwareBackend{
		name:       name,
		fonts:      db,
		registered: make(map[string]bool),
		shaper:     shaper,
		shapeCache: newShapeCache(),
		glyphCache: newGlyphCache(),
	}, nil
}

// newOrgeBackend constructs the conformant, cross-platform default
// backend: HarfBuzz shaping (internal/shape.HarfbuzzShaper) over the
// pure-Go orge scan converter (internal/orge). It is the last entry in
// the default backend order (spec.md §4.1 selection policy step 2
// "fall back to the orge-based backend").
func newOrgeBackend() (Backend, error) {
	return newSoftwareBackend("orge", shape.NewHarfbuzzShaper())
}

func (o *softwareBackend) Name() string { return o.name }

// ClearCache drains both caches by swapping in fresh ones; in-flight
// GetOrCompute calls on the old caches still complete normally, but
// their results land in a cache object this backend no longer consults
// (spec.md §4.5 "clear_cache()").
func (o *softwareBackend) ClearCache() {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	o.shapeCache = newShapeCache()
	o.glyphCache = newGlyphCache()
}

func (o *softwareBackend) caches() (*ShapeCache, *GlyphCache) {
	o.cacheMu.RLock()
	defer o.cacheMu.RUnlock()
	return o.shapeCache, o.glyphCache
}

// Segment partitions text per internal/segment's UAX#24/#9/#29 contract
// (spec.md §4.3). segment.Segment checks UTF-8 validity before any
// segmentation work; Segment reports that failure, and any other
// segmenter error, as InvalidInput.
func (o *softwareBackend) Segment(text string, lang string, base Direction) ([]TextRun, error) {
	runs, err := segment.Segment(text, base, lang)
	if err != nil {
		return nil, newError(InvalidInput, "invalid UTF-8 input", err)
	}
	out := make([]TextRun, len(runs))
	for i, r := range runs {
		out[i] = textRunFromSegment(r)
	}
	return out, nil
}

// Shape maps run+font to a ShapingResult via the shape cache, coalescing
// concurrent misses for the same key onto a single HarfbuzzShaper call
// (spec.md §4.4, §4.5 "at most one compute occurs").
func (o *softwareBackend) Shape(run TextRun, font *Font) (*ShapingResult, error) {
	if font == nil {
		return nil, newError(InvalidInput, "Shape requires a non-nil Font", nil)
	}
	face, err := o.resolveFace(font, run.Script)
	if err != nil {
		return nil, err
	}

	shapeCache, _ := o.caches()
	key := ShapeCacheKey{
		Font:      font.CacheKey(),
		Text:      run.Text,
		Script:    run.Script,
		Language:  run.Language,
		Direction: run.Direction,
	}
	sr, err := shapeCache.GetOrCompute(key, func() (*shape.ShapingResult, error) {
		segRun := segment.Run{
			Text:      run.Text,
			ByteStart: run.ByteStart,
			ByteEnd:   run.ByteEnd,
			Script:    run.rawScript,
			Direction: run.Direction,
			Language:  run.Language,
		}
		return o.shaper.Shape(segRun, face, font.SizePt, font.Features)
	})
	if err != nil {
		return nil, wrapShapeError(err)
	}
	return shapingResultFromInternal(sr, font, face), nil
}

func wrapShapeError(err error) error {
	switch err.(type) {
	case shape.ErrFontMissing:
		return newError(FontNotFound, "font has no usable face", err)
	case *shape.ShapingFailedError:
		return newError(ShapingFailed, "shaping engine failed", err)
	default:
		return newError(ShapingFailed, "shaping failed", err)
	}
}

// resolveFace resolves font to a fontdb.Face, registering it with the
// font database on first use and falling back to script's builtin
// fallback chain when direct resolution fails (spec.md §4.2
// "fallback_chain(script)").
func (o *softwareBackend) resolveFace(font *Font, scriptTag string) (*fontdb.Face, error) {
	o.dbMu.Lock()
	defer o.dbMu.Unlock()

	family, err := o.ensureRegistered(font)
	if err != nil {
		return nil, err
	}

	face, resolveErr := o.fonts.Resolve(family, font.Weight, font.Style)
	if resolveErr == nil {
		return face, nil
	}

	for _, fallback := range fontdb.FallbackChain(scriptTag) {
		if face, err := o.fonts.Resolve(fallback, font.Weight, font.Style); err == nil {
			return face, nil
		}
	}
	return nil, newErrorWithInput(FontNotFound, "no font resolved for family or fallback chain", family, resolveErr)
}

// ensureRegistered lazily registers a path/bytes-backed Font's data with
// the font database under a synthetic family name, and returns the
// family name to resolve against. Must be called with dbMu held.
func (o *softwareBackend) ensureRegistered(font *Font) (string, error) {
	switch font.source.tag {
	case sourceSystem:
		return font.source.name, nil

	case sourcePath:
		key := "typf-path:" + font.source.name
		if o.registered[key] {
			return key, nil
		}
		data, err := fontdb.LoadPath(font.source.name)
		if err != nil {
			return "", newErrorWithInput(FontInvalid, "could not read font file", font.source.name, err)
		}
		if err := o.fonts.AddFontBytes(data, key); err != nil {
			return "", newErrorWithInput(FontInvalid, "could not parse font file", font.source.name, err)
		}
		o.registered[key] = true
		return key, nil

	case sourceBytes:
		key := fmt.Sprintf("typf-bytes:%p", font.source.data)
		if o.registered[key] {
			return key, nil
		}
		if font.source.data == nil {
			return "", newError(InvalidInput, "Font has a bytes source with nil data", nil)
		}
		if err := o.fonts.AddFontBytes(font.source.data.Bytes(), key); err != nil {
			return "", newErrorWithInput(FontInvalid, "could not parse in-memory font bytes", key, err)
		}
		o.registered[key] = true
		return key, nil

	default:
		return "", newError(InvalidInput, "Font has no recognized source", nil)
	}
}

// Render rasterizes or vectorizes shaped per opts (spec.md §4.1, §4.6,
// §6).
func (o *softwareBackend) Render(shaped *ShapingResult, opts RenderOptions) (RenderOutput, error) {
	if verr := opts.validate(); verr != nil {
		return RenderOutput{}, verr
	}
	if shaped.Font == nil || shaped.resolvedFace == nil {
		return RenderOutput{}, newError(InvalidInput, "ShapingResult has no resolved font", nil)
	}

	if opts.Format == FormatVector {
		cmds := o.renderVector(shaped, opts)
		return newVectorOutput(cmds), nil
	}
	return o.renderBitmap(shaped, opts)
}

// RenderText fuses Segment+Shape+Render for a single run of uniform
// text (spec.md §4.1 "fast path"). Mixed-script/mixed-direction input
// is segmented into multiple runs; only the first is resolved against
// font (spec.md leaves multi-run RenderText composition to a future
// paragraph layout layer — out of CORE scope per spec.md §1).
func (o *softwareBackend) RenderText(text string, font *Font, opts RenderOptions) (RenderOutput, error) {
	runs, err := o.Segment(text, "", LTR)
	if err != nil {
		return RenderOutput{}, err
	}
	if len(runs) == 0 {
		return o.Render(&ShapingResult{Font: font}, opts)
	}

	shaped, err := o.Shape(runs[0], font)
	if err != nil {
		return RenderOutput{}, err
	}
	return o.Render(shaped, opts)
}

func (o *softwareBackend) renderVector(shaped *ShapingResult, opts RenderOptions) []PathCommand {
	face := shaped.resolvedFace.FontFace()
	scale := glyphScale(face, opts.FontSize)

	var cmds []PathCommand
	for _, g := range shaped.Glyphs {
		segs := glyphOutlineSegments(face, gofont.GID(g.GlyphID), scale, -scale)
		if len(segs) == 0 {
			continue
		}
		t := transform.NewTransAffineTranslation(g.X, g.Y)
		cmds = append(cmds, surface.EmitPath(segs, t)...)
	}
	return cmds
}

func (o *softwareBackend) renderBitmap(shaped *ShapingResult, opts RenderOptions) (RenderOutput, error) {
	pad := opts.Padding
	minX, minY := shaped.MinX, shaped.MinY
	maxX, maxY := shaped.MaxX, shaped.MaxY
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}

	width := int(math.Ceil(maxX-minX)) + 2*pad
	height := int(math.Ceil(maxY-minY)) + 2*pad
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	canvas := surface.NewBitmap(width, height, surface.FormatGray8)
	offsetX := -minX + float64(pad)
	offsetY := -minY + float64(pad)

	face := shaped.resolvedFace
	fface := face.FontFace()
	scale := glyphScale(fface, opts.FontSize)

	for _, g := range shaped.Glyphs {
		rg, err := o.rasterizedGlyph(shaped.Font, fface, g.GlyphID, opts, scale)
		if err != nil {
			return RenderOutput{}, err
		}
		if rg == nil || rg.bitmap.Width == 0 || rg.bitmap.Height == 0 {
			continue
		}
		px := int(math.Round(g.X+offsetX)) + rg.originX
		py := int(math.Round(g.Y+offsetY)) + rg.originY
		compositeMax(canvas, rg.bitmap, px, py)
	}

	composed, cerr := surface.CompositeOverBackground(canvas, opts.Foreground.toRGBA8(), opts.Background.toRGBA8())
	if cerr != nil {
		return RenderOutput{}, newError(RasterizationFailed, "surface composite failed", cerr)
	}

	switch opts.Format {
	case FormatPNG:
		data, err := surface.EncodePNG(composed)
		if err != nil {
			return RenderOutput{}, newError(EncodingFailed, "png encode failed", err)
		}
		return newPNGOutput(data), nil
	default:
		return newBitmapOutput(bitmapFromSurface(composed)), nil
	}
}

// rasterizedGlyph rasterizes (or fetches from cache) a single glyph's
// coverage mask sized tightly to its own ink bounding box.
func (o *softwareBackend) rasterizedGlyph(font *Font, fface gofont.Face, glyphID uint32, opts RenderOptions, scale float64) (*renderedGlyph, error) {
	_, glyphCache := o.caches()
	key := GlyphCacheKey{
		Font:    font.CacheKey(),
		GlyphID: glyphID,
		SizePx:  opts.FontSize,
		AA:      opts.Antialias,
	}
	return glyphCache.GetOrCompute(key, func() (*renderedGlyph, error) {
		return rasterizeGlyph(fface, glyphID, scale, opts, config.GetConfig().FlattenTolerance)
	})
}

func glyphScale(face gofont.Face, sizePx float64) float64 {
	upem := float64(face.Upem())
	if upem <= 0 {
		upem = 1000
	}
	return sizePx / upem
}

func rasterizeGlyph(face gofont.Face, glyphID uint32, scale float64, opts RenderOptions, tolerance float64) (*renderedGlyph, error) {
	segs := glyphOutlineSegments(face, gofont.GID(glyphID), scale, -scale)
	if len(segs) == 0 {
		return &renderedGlyph{bitmap: surface.NewBitmap(0, 0, surface.FormatGray8)}, nil
	}

	identity := transform.NewTransAffine()
	contours := surface.FlattenSegments(segs, identity, tolerance)
	minPt, maxPt := contourBounds(contours)
	if maxPt.X <= minPt.X || maxPt.Y <= minPt.Y {
		return &renderedGlyph{bitmap: surface.NewBitmap(0, 0, surface.FormatGray8)}, nil
	}

	originX := int(minPt.X >> 6)
	originY := int(minPt.Y >> 6)
	width := int((maxPt.X>>6)-(minPt.X>>6)) + 1
	height := int((maxPt.Y>>6)-(minPt.Y>>6)) + 1

	dx := -fixed.Int26_6(originX << 6)
	dy := -fixed.Int26_6(originY << 6)
	shifted := translateContours(contours, dx, dy)

	var mono []byte
	if opts.Antialias == AntialiasGrayscale {
		mono = orge.RasterizeGrayscale(shifted, width, height, opts.GrayscaleLevel, basics.FillNonZero)
	} else {
		raw := orge.Rasterize(shifted, width, height, basics.FillNonZero)
		mono = make([]byte, len(raw))
		for i, v := range raw {
			if v != 0 {
				mono[i] = 255
			}
		}
	}

	bmp := surface.NewBitmap(width, height, surface.FormatGray8)
	copy(bmp.Pix, mono)
	return &renderedGlyph{bitmap: bmp, originX: originX, originY: originY}, nil
}

func contourBounds(contours []orge.Contour) (min, max fixed.Point26_6) {
	first := true
	for _, c := range contours {
		for _, p := range c {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max
}

func translateContours(contours []orge.Contour, dx, dy fixed.Int26_6) []orge.Contour {
	out := make([]orge.Contour, len(contours))
	for i, c := range contours {
		shifted := make(orge.Contour, len(c))
		for j, p := range c {
			shifted[j] = fixed.Point26_6{X: p.X + dx, Y: p.Y + dy}
		}
		out[i] = shifted
	}
	return out
}

// compositeMax draws src onto dst at (x, y) using per-pixel max, so
// overlapping glyph ink (cursive joins, diacritics) never darkens past
// either glyph's own coverage.
func compositeMax(dst, src *surface.Bitmap, x, y int) {
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= dst.Height {
			continue
		}
		srcRow := src.Row(sy)
		dstRow := dst.Row(dy)
		for sx := 0; sx < src.Width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= dst.Width {
				continue
			}
			if srcRow[sx] > dstRow[dx] {
				dstRow[dx] = srcRow[sx]
			}
		}
	}
}
