package fontdb

// builtinFallback is the script -> ordered family name priority table
// (spec.md §4.2 "a prioritized list of well-known family names (e.g.,
// Noto families)"), covering at least Latin, Arabic, Devanagari, CJK,
// Hebrew, Thai as required. Shaped like fontscan's own internal
// script-to-family tables (a plain map literal keyed by ISO 15924
// script tag), used when no system font API is available or the
// platform scan yields nothing for the script.
var builtinFallback = map[string][]string{
	"Latn": {"Noto Sans", "Arial", "Helvetica", "DejaVu Sans"},
	"Arab": {"Noto Sans Arabic", "Noto Naskh Arabic", "Arial"},
	"Deva": {"Noto Sans Devanagari", "Mangal"},
	"Hans": {"Noto Sans CJK SC", "Noto Sans SC", "SimHei"},
	"Hant": {"Noto Sans CJK TC", "Noto Sans TC", "PMingLiU"},
	"Hani": {"Noto Sans CJK SC", "Noto Sans SC"},
	"Jpan": {"Noto Sans CJK JP", "Noto Sans JP", "MS Gothic"},
	"Kore": {"Noto Sans CJK KR", "Noto Sans KR", "Malgun Gothic"},
	"Hebr": {"Noto Sans Hebrew", "Arial Hebrew"},
	"Thai": {"Noto Sans Thai", "Leelawadee"},
}

// defaultFallback is used for scripts absent from builtinFallback: a
// broad Latin-capable family, the same "fall back to something legible"
// behavior fontscan.FontMap.UseSystemFonts applies when its own index
// has no entry for a script.
var defaultFallback = []string{"Noto Sans", "Arial"}

// FallbackChain returns the ordered family-name preference list for a
// script tag (spec.md §4.2 "fallback_chain(script) -> ordered list of
// family names"). script is an ISO 15924 4-letter tag (e.g. "Latn").
func FallbackChain(script string) []string {
	if chain, ok := builtinFallback[script]; ok {
		return append([]string(nil), chain...)
	}
	return append([]string(nil), defaultFallback...)
}
