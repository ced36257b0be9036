package segment

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestItemizeScriptSingleRun(t *testing.T) {
	runs := itemizeScript("hello")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].start != 0 || runs[0].end != 5 {
		t.Errorf("run span = [%d,%d), want [0,5)", runs[0].start, runs[0].end)
	}
}

func TestItemizeScriptMixedScripts(t *testing.T) {
	text := "helloαβγ" // "hello" + Greek alpha beta gamma
	runs := itemizeScript(text)
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].end != 5 {
		t.Errorf("first run end = %d, want 5", runs[0].end)
	}
	if runs[1].start != 5 || runs[1].end != len(text) {
		t.Errorf("second run span = [%d,%d), want [5,%d)", runs[1].start, runs[1].end, len(text))
	}
}

func TestItemizeScriptCommonTiesToPreviousStrong(t *testing.T) {
	// "a, b" -- comma and space are Common and should fold into Latin
	// rather than starting their own run.
	runs := itemizeScript("a, b")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1 (Common folded into Latin), got %+v", len(runs), runs)
	}
}

func TestItemizeScriptLeadingCommonUsesDefault(t *testing.T) {
	// Leading punctuation with no prior strong script falls back to
	// Common itself, which is a legitimate (if degenerate) run.
	runs := itemizeScript("!!!")
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	if runs[0].script != language.Common {
		t.Errorf("script = %v, want Common", runs[0].script)
	}
}

func TestScriptAtOutOfRangeFallsBackToLast(t *testing.T) {
	runs := itemizeScript("abc")
	if got := scriptAt(runs, 100); got != runs[len(runs)-1].script {
		t.Errorf("scriptAt(100) = %v, want last run's script", got)
	}
	if got := scriptAt(nil, 0); got != language.Common {
		t.Errorf("scriptAt(nil, 0) = %v, want Common", got)
	}
}

func TestScriptTagKnownAndUnknown(t *testing.T) {
	if got := ScriptTag(language.Common); got != "Zyyy" {
		t.Errorf("ScriptTag(Common) = %q, want Zyyy", got)
	}
	unknown := language.LookupScript('\U00010000') // outside the mapped table
	if got := ScriptTag(unknown); got == "" {
		t.Error("ScriptTag should never return empty for an unmapped script")
	}
}
