package fontdb

import (
	"path/filepath"
	"testing"

	meta "github.com/go-text/typesetting/opentype/api/metadata"
)

func TestStyleToMeta(t *testing.T) {
	cases := []struct {
		style Style
		want  meta.Style
	}{
		{StyleUpright, meta.StyleNormal},
		{StyleItalic, meta.StyleItalic},
		{StyleOblique, meta.StyleItalic}, // Oblique folds into Italic, matching fontscan
	}
	for _, c := range cases {
		if got := c.style.toMeta(); got != c.want {
			t.Errorf("Style(%d).toMeta() = %v, want %v", c.style, got, c.want)
		}
	}
}

func TestResolveOnEmptyDatabaseFails(t *testing.T) {
	db := NewDatabase()
	_, err := db.Resolve("Nonexistent Family", 400, StyleUpright)
	if err == nil {
		t.Fatal("expected an error resolving a family from an empty database")
	}
}

func TestLoadPathMissingFile(t *testing.T) {
	_, err := LoadPath(filepath.Join(t.TempDir(), "does-not-exist.ttf"))
	if err == nil {
		t.Fatal("expected an error reading a nonexistent font file")
	}
}

func TestAddFontFileMissingPath(t *testing.T) {
	db := NewDatabase()
	err := db.AddFontFile(filepath.Join(t.TempDir(), "missing.ttf"), "Missing Family")
	if err == nil {
		t.Fatal("expected an error adding a nonexistent font file")
	}
}

func TestAddFontBytesRejectsGarbage(t *testing.T) {
	db := NewDatabase()
	err := db.AddFontBytes([]byte("not a real font file"), "Garbage Family")
	if err == nil {
		t.Fatal("expected an error parsing non-font bytes")
	}
}

func TestAddFontBytesThenResolveStillMissesWithoutAValidFont(t *testing.T) {
	db := NewDatabase()
	_ = db.AddFontBytes([]byte("not a real font file"), "Garbage Family")
	if _, err := db.Resolve("Garbage Family", 400, StyleUpright); err == nil {
		t.Fatal("a family whose only registration failed to parse must still fail to resolve")
	}
}
