package typf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/typf-go/typf/internal/fontdb"
)

// Style mirrors spec.md §3's upright/italic/oblique triad; typf.Style is
// an alias of fontdb.Style so callers never juggle two near-identical
// enums across the package boundary.
type Style = fontdb.Style

const (
	StyleUpright = fontdb.StyleUpright
	StyleItalic  = fontdb.StyleItalic
	StyleOblique = fontdb.StyleOblique
)

type sourceTag int

const (
	sourceSystem sourceTag = iota
	sourcePath
	sourceBytes
)

// fontSource is a comparable tagged union over Font's three source
// kinds (spec.md §3 "system-family-name, filesystem path, or owned byte
// slice"). It is comparable (string fields plus a pointer) so it can sit
// directly inside a CacheKey struct used as a Go map key.
type fontSource struct {
	tag  sourceTag
	name string          // family name (sourceSystem) or path (sourcePath)
	data *fontdb.FontData // owned bytes (sourceBytes); pointer identity is the cache identity
}

// Font is a handle carrying family/style hints plus a source (spec.md
// §3 Font). Constructed by callers with NewFontFromFamily,
// NewFontFromPath, or NewFontFromBytes; cloned freely via Clone.
// Identity equality for cache keying is by (source, size, weight,
// style, variations, features), computed by CacheKey.
type Font struct {
	family     string
	source     fontSource
	SizePt     float64
	Weight     int
	Style      Style
	Variations map[string]float32
	Features   map[string]uint32
}

// NewFontFromFamily builds a Font resolved by system family name at
// render time via the pipeline's font database.
func NewFontFromFamily(family string, sizePt float64, weight int, style Style) *Font {
	return &Font{
		family: family,
		source: fontSource{tag: sourceSystem, name: family},
		SizePt: sizePt,
		Weight: weight,
		Style:  style,
	}
}

// NewFontFromPath builds a Font backed by a font file on disk, loaded
// lazily by the pipeline on first use.
func NewFontFromPath(path string, sizePt float64, weight int, style Style) *Font {
	return &Font{
		source: fontSource{tag: sourcePath, name: path},
		SizePt: sizePt,
		Weight: weight,
		Style:  style,
	}
}

// NewFontFromBytes builds a Font backed by caller-owned, in-memory font
// bytes (spec.md §4.2 "load_bytes(bytes) -> owned handle"). Underlying
// bytes are reference-counted (internal/fontdb.FontData), so cloning
// this Font or handing it to multiple backends never copies the buffer.
func NewFontFromBytes(data []byte, sizePt float64, weight int, style Style) *Font {
	return &Font{
		source: fontSource{tag: sourceBytes, data: fontdb.LoadBytes(data)},
		SizePt: sizePt,
		Weight: weight,
		Style:  style,
	}
}

// Clone returns a copy of f sharing the same underlying font bytes
// (spec.md §3 "underlying font bytes are shared via reference-counted
// ownership so multiple backends can hold the same font without
// copying"; "Font owns or shares a reference to font bytes").
func (f *Font) Clone() *Font {
	out := *f
	if f.source.tag == sourceBytes && f.source.data != nil {
		out.source.data = f.source.data.Retain()
	}
	if f.Variations != nil {
		out.Variations = make(map[string]float32, len(f.Variations))
		for k, v := range f.Variations {
			out.Variations[k] = v
		}
	}
	if f.Features != nil {
		out.Features = make(map[string]uint32, len(f.Features))
		for k, v := range f.Features {
			out.Features[k] = v
		}
	}
	return &out
}

// Family reports the family name (empty for path/bytes sources that
// haven't been resolved to a family yet).
func (f *Font) Family() string {
	if f.source.tag == sourceSystem {
		return f.source.name
	}
	return f.family
}

// CacheKey is a comparable struct suitable as a map key, identifying f
// by (source, size, weight, style, variations digest, features digest)
// per spec.md §3's Font identity-equality rule.
type CacheKey struct {
	source           fontSource
	sizePt           float64
	weight           int
	style            Style
	variationsDigest string
	featuresDigest   string
}

func (f *Font) CacheKey() CacheKey {
	return CacheKey{
		source:           f.source,
		sizePt:           f.SizePt,
		weight:           f.Weight,
		style:            f.Style,
		variationsDigest: digestVariations(f.Variations),
		featuresDigest:   digestFeatures(f.Features),
	}
}

func digestVariations(vars map[string]float32) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%s=%s", k, strconv.FormatFloat(float64(vars[k]), 'g', -1, 32))
	}
	return b.String()
}

func digestFeatures(feats map[string]uint32) string {
	if len(feats) == 0 {
		return ""
	}
	keys := make([]string, 0, len(feats))
	for k := range feats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%s=%d", k, feats[k])
	}
	return b.String()
}
