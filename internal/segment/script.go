package segment

import "github.com/go-text/typesetting/language"

// scriptRun is a maximal byte range [start, end) of text carrying a
// single resolved Unicode script, after Common/Inherited tie-break.
type scriptRun struct {
	start, end int
	script     language.Script
}

// itemizeScript partitions text into script runs (UAX#24), folding
// Common and Inherited code points into the most recent strong script
// rather than starting a run of their own. Mirrors splitByScript in
// gioui's text shaper: a punctuation or combining-mark run should not
// force a script change that the surrounding shaping has to undo.
func itemizeScript(text string) []scriptRun {
	if text == "" {
		return nil
	}

	offsets := make([]int, 0, len(text))
	scripts := make([]language.Script, 0, len(text))
	for i, r := range text {
		offsets = append(offsets, i)
		scripts = append(scripts, language.LookupScript(r))
	}

	prev := language.Common
	for i, s := range scripts {
		if s == language.Common || s == language.Inherited {
			scripts[i] = prev
		} else {
			prev = s
		}
	}

	var runs []scriptRun
	for i, s := range scripts {
		if len(runs) == 0 || runs[len(runs)-1].script != s {
			if len(runs) > 0 {
				runs[len(runs)-1].end = offsets[i]
			}
			runs = append(runs, scriptRun{start: offsets[i], end: len(text), script: s})
		}
	}
	return runs
}

func scriptAt(runs []scriptRun, offset int) language.Script {
	for _, r := range runs {
		if offset >= r.start && offset < r.end {
			return r.script
		}
	}
	if len(runs) > 0 {
		return runs[len(runs)-1].script
	}
	return language.Common
}

// ScriptTag renders a resolved script as its ISO 15924 four-letter
// tag, for feeding fallback-chain lookups keyed that way (see
// fontdb.FallbackChain). language.Script's own String only promises
// the long Unicode property name, so the mapping here is deliberately
// narrow: the handful of scripts typf's fallback table knows about,
// plus Cyrillic and Greek, and the Zyyy/Zinh/Zzzz sentinels for the
// rest.
func ScriptTag(s language.Script) string {
	switch s.String() {
	case "Latin":
		return "Latn"
	case "Arabic":
		return "Arab"
	case "Devanagari":
		return "Deva"
	case "Han":
		return "Hani"
	case "Hebrew":
		return "Hebr"
	case "Thai":
		return "Thai"
	case "Cyrillic":
		return "Cyrl"
	case "Greek":
		return "Grek"
	case "Hangul":
		return "Kore"
	case "Hiragana", "Katakana":
		return "Jpan"
	case "Common":
		return "Zyyy"
	case "Inherited":
		return "Zinh"
	default:
		return "Zzzz"
	}
}
