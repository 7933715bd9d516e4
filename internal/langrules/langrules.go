// Package langrules centralizes per-language configuration for the mixing
// pipeline: transliteration script names, ordered phonetic substitutions,
// schwa-deletion rules, and the FLORES-200 codes spoken by IndicTrans-style
// engines. All tables are static and read-only; concurrent readers need no
// synchronization.
package langrules

// Substitution is a single post-romanization replacement. Substitutions are
// applied in slice order; multi-character patterns must precede any
// single-character pattern that is a substring of them, otherwise the shorter
// pattern shadows part of the longer one.
type Substitution struct {
	Pattern     string
	Replacement string
}

// Profile bundles everything the romanizer needs for one target language.
type Profile struct {
	Script            string
	Substitutions     []Substitution
	SchwaDeletion     bool
	ProtectedSuffixes []string
}

// scriptMap maps ISO-639 codes to Aksharamukha script names.
var scriptMap = map[string]string{
	"hi":  "Devanagari",
	"bn":  "Bengali",
	"ta":  "Tamil",
	"te":  "Telugu",
	"mr":  "Devanagari",
	"gu":  "Gujarati",
	"kn":  "Kannada",
	"ml":  "Malayalam",
	"pa":  "Gurmukhi",
	"or":  "Oriya",
	"as":  "Assamese",
	"ur":  "Urdu",
	"sa":  "Devanagari",
	"ne":  "Devanagari",
	"sd":  "Arabic",
	"ks":  "Arabic",
	"gom": "Devanagari",
	"mai": "Devanagari",
	"doi": "Devanagari",
	"brx": "Devanagari",
	"mni": "Bengali",
	"sat": "OlChiki",
}

// phoneticFixes holds colloquial romanization preferences per language
// ("v" vs "w", aspirate simplification, and so on).
var phoneticFixes = map[string][]Substitution{
	"hi": {{"Phr", "Fr"}, {"phr", "fr"}, {"Ph", "F"}, {"ph", "f"}, {"w", "v"}},
	"mr": {{"Phr", "Fr"}, {"phr", "fr"}, {"zh", "jh"}},
	"bn": {{"v", "b"}, {"V", "B"}, {"w", "b"}, {"a", "o"}},
	"or": {{"v", "b"}, {"w", "b"}, {"a", "o"}},
	"as": {{"ch", "s"}, {"v", "b"}, {"w", "b"}},
	"ta": {{"zh", "l"}, {"th", "dh"}},
	"te": {{"th", "d"}, {"T", "t"}},
	"ml": {{"zh", "l"}, {"th", "d"}},
	"ur": {{"q", "k"}, {"z", "j"}},
	"pa": {{"bh", "p"}, {"dh", "t"}},
}

// schwaProtection lists word endings that keep their trailing 'a' even in
// schwa-deleting languages.
var schwaProtection = map[string][]string{
	"hi": {"na", "la", "ta", "da", "ga", "ya", "ka", "ra", "ha", "ma", "ja"},
	"mr": {"na", "la", "ta", "da", "ga", "ya", "ka", "ra", "ha", "ma", "ja"},
	"gu": {"na", "la", "ta", "da", "ga", "ya", "ka"},
	"bn": {"o", "a"},
	"pa": {"na", "la", "ta"},
	"ur": {"ah", "eh"},
	"ta": {"a", "i", "u", "e", "o"},
	"te": {"a", "i", "u", "e", "o"},
	"kn": {"a", "i", "u", "e", "o"},
	"ml": {"a", "i", "u", "e", "o"},
	"sa": {"a", "i", "u", "e", "o", "m", "h"},
}

// noSchwaDeletion marks languages whose inherent vowel is kept: Dravidian,
// Sanskrit, Nepali, the eastern languages with an 'o'-colored inherent vowel,
// and the non-Indo-Aryan scripts.
var noSchwaDeletion = map[string]bool{
	"ta": true, "te": true, "kn": true, "ml": true,
	"sa": true, "ne": true,
	"as": true, "or": true, "bn": true,
	"mni": true, "sat": true,
}

// floresCodes maps ISO codes to the FLORES-200 identifiers used by
// IndicTrans-style translation servers.
var floresCodes = map[string]string{
	"en":  "eng_Latn",
	"hi":  "hin_Deva",
	"bn":  "ben_Beng",
	"ta":  "tam_Taml",
	"te":  "tel_Telu",
	"mr":  "mar_Deva",
	"gu":  "guj_Gujr",
	"kn":  "kan_Knda",
	"ml":  "mal_Mlym",
	"pa":  "pan_Guru",
	"or":  "ory_Orya",
	"as":  "asm_Beng",
	"ur":  "urd_Arab",
	"sa":  "san_Deva",
	"ne":  "npi_Deva",
	"sd":  "snd_Arab",
	"ks":  "kas_Arab",
	"gom": "gom_Deva",
	"mai": "mai_Deva",
	"doi": "doi_Deva",
	"brx": "brx_Deva",
	"mni": "mni_Beng",
}

// ScriptName returns the Aksharamukha script for a language code, defaulting
// to Devanagari for unknown codes.
func ScriptName(lang string) string {
	if s, ok := scriptMap[lang]; ok {
		return s
	}
	return "Devanagari"
}

// FloresCode returns the FLORES-200 code for a language, defaulting to Hindi.
func FloresCode(lang string) string {
	if c, ok := floresCodes[lang]; ok {
		return c
	}
	return "hin_Deva"
}

// SchwaDeletionEnabled reports whether the language drops the inherent
// trailing 'a' in colloquial romanization.
func SchwaDeletionEnabled(lang string) bool {
	return !noSchwaDeletion[lang]
}

// ProfileFor assembles the phonetic profile for a target language. Unknown
// languages get a Devanagari profile with no substitutions.
func ProfileFor(lang string) Profile {
	return Profile{
		Script:            ScriptName(lang),
		Substitutions:     phoneticFixes[lang],
		SchwaDeletion:     SchwaDeletionEnabled(lang),
		ProtectedSuffixes: schwaProtection[lang],
	}
}

// Supported lists every language code the rules tables know about.
func Supported() []string {
	out := make([]string, 0, len(scriptMap))
	for code := range scriptMap {
		out = append(out, code)
	}
	return out
}
