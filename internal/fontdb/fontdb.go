// Package fontdb resolves font family names and script fallback chains
// to concrete font data (spec.md §4.2): family/weight/style resolution,
// loading from filesystem or memory, and keeping loaded bytes alive via
// shared reference counting. Family resolution is modeled on
// go-text/typesetting/fontscan.FontMap (studied from the vendored copy
// under _examples/esimov-caire/vendor/.../fontscan): a FontMap queried
// with a Query{Families, Aspect} and resolved per-rune with ResolveFace.
package fontdb

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	meta "github.com/go-text/typesetting/opentype/api/metadata"
)

// ErrFontNotFound is returned by Resolve when no face satisfies the
// requested family/weight/style (spec.md §4.2 "FontNotFound").
var ErrFontNotFound = errors.New("fontdb: no matching font found")

// Style mirrors spec.md §3's upright/italic/oblique triad. fontscan's
// own meta.Style only distinguishes Normal/Italic (folding Oblique into
// Italic, per its own styleConsts table), so Oblique maps to
// meta.StyleItalic at query time; the distinction survives only in
// typf's own Font value.
type Style int

const (
	StyleUpright Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) toMeta() meta.Style {
	if s == StyleUpright {
		return meta.StyleNormal
	}
	return meta.StyleItalic
}

// Face is a resolved, loadable font face: enough to hand to a shaper
// and rasterizer without re-running family resolution.
type Face struct {
	Family string
	Aspect meta.Aspect
	face   font.Face
}

// FontFace returns the underlying go-text face for shaping/rasterization.
func (f *Face) FontFace() font.Face { return f.face }

// Database wraps a fontscan.FontMap with typf's resolve/load contract.
// Not safe for concurrent use, matching fontscan.FontMap's own
// documented constraint; callers share one Database per goroutine or
// guard it with their own lock (the pipeline package does the latter).
type Database struct {
	fm *fontscan.FontMap
}

// discardLogger adapts typf's no-stdout-by-default policy (SPEC_FULL.md §2) to
// fontscan.Logger: library code swallows fontscan's non-fatal warnings
// rather than writing to stderr on its own.
type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

// NewDatabase builds an empty font database. Populate it with
// UseSystemFonts, AddFontFile, or AddFontBytes before calling Resolve.
func NewDatabase() *Database {
	return &Database{fm: fontscan.NewFontMap(discardLogger{})}
}

// UseSystemFonts scans the host's installed fonts into the database,
// caching the scan result under cacheDir (spec.md §4.2 "delegate to the
// OS chain where available"). A non-existent or unreadable cacheDir
// falls back to an in-memory-only index for this process.
func (d *Database) UseSystemFonts(cacheDir string) error {
	if err := d.fm.UseSystemFonts(cacheDir); err != nil {
		return fmt.Errorf("fontdb: system font scan: %w", err)
	}
	return nil
}

// AddFontFile registers a font file on disk under familyName.
func (d *Database) AddFontFile(path, familyName string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("fontdb: open %s: %w", path, err)
	}
	defer file.Close()
	if err := d.fm.AddFont(file, path, familyName); err != nil {
		return fmt.Errorf("fontdb: parse %s: %w", path, err)
	}
	return nil
}

// AddFontBytes registers in-memory font bytes under familyName, the
// same way AddFontFile registers a file, so Font values backed by owned
// bytes (spec.md §4.2 "load_bytes") can still be resolved by family
// through the normal Resolve path.
func (d *Database) AddFontBytes(data []byte, familyName string) error {
	if err := d.fm.AddFont(bytes.NewReader(data), familyName, familyName); err != nil {
		return fmt.Errorf("fontdb: parse in-memory font %q: %w", familyName, err)
	}
	return nil
}

// Resolve looks up the best-matching face for (family, weight, style)
// (spec.md §4.2 "resolve(family, weight, style) -> (bytes, face-index)
// or FontNotFound"). weight follows the CSS numeric scale (100-900).
func (d *Database) Resolve(family string, weight int, style Style) (*Face, error) {
	aspect := meta.Aspect{Style: style.toMeta(), Weight: meta.Weight(weight)}
	aspect.SetDefaults()

	d.fm.SetQuery(fontscan.Query{Families: []string{family}, Aspect: aspect})
	face := d.fm.ResolveFace('a')
	if face == nil {
		return nil, fmt.Errorf("%w: family=%q weight=%d style=%v", ErrFontNotFound, family, weight, style)
	}
	_, resolvedAspect := d.fm.FontMetadata(face.Font)
	return &Face{Family: family, Aspect: resolvedAspect, face: face}, nil
}

// LoadPath reads a font file's raw bytes (spec.md §4.2 "load_path(path)
// -> bytes with read error propagation").
func LoadPath(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontdb: read %s: %w", path, err)
	}
	return data, nil
}

// LoadBytes wraps caller-owned font bytes in a reference-counted handle
// (spec.md §4.2 "load_bytes(bytes) -> owned handle"; spec.md §3
// Ownership: "Font owns or shares a reference to font bytes via shared
// reference counting").
func LoadBytes(data []byte) *FontData {
	return newFontData(data)
}
