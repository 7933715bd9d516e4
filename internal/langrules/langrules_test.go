package langrules

import (
	"strings"
	"testing"
)

func TestScriptName(t *testing.T) {
	cases := []struct{ lang, want string }{
		{"hi", "Devanagari"},
		{"bn", "Bengali"},
		{"ta", "Tamil"},
		{"xx", "Devanagari"}, // unknown falls back
	}
	for _, tc := range cases {
		if got := ScriptName(tc.lang); got != tc.want {
			t.Errorf("ScriptName(%q) = %q, want %q", tc.lang, got, tc.want)
		}
	}
}

func TestFloresCode(t *testing.T) {
	cases := []struct{ lang, want string }{
		{"en", "eng_Latn"},
		{"hi", "hin_Deva"},
		{"pa", "pan_Guru"},
		{"zz", "hin_Deva"},
	}
	for _, tc := range cases {
		if got := FloresCode(tc.lang); got != tc.want {
			t.Errorf("FloresCode(%q) = %q, want %q", tc.lang, got, tc.want)
		}
	}
}

func TestSchwaDeletionEnabled(t *testing.T) {
	if !SchwaDeletionEnabled("hi") {
		t.Error("hi should delete schwa")
	}
	for _, lang := range []string{"ta", "te", "kn", "ml", "bn", "sa", "ne"} {
		if SchwaDeletionEnabled(lang) {
			t.Errorf("%s should keep the inherent vowel", lang)
		}
	}
}

func TestProfileFor(t *testing.T) {
	p := ProfileFor("hi")
	if p.Script != "Devanagari" || !p.SchwaDeletion {
		t.Errorf("hi profile = %+v", p)
	}
	if len(p.Substitutions) == 0 || len(p.ProtectedSuffixes) == 0 {
		t.Error("hi profile missing phonetic tables")
	}

	// Multi-character substitutions must come before their single-character
	// substrings or they could never match.
	for i, sub := range p.Substitutions {
		for j := 0; j < i; j++ {
			prev := p.Substitutions[j].Pattern
			if len(prev) < len(sub.Pattern) && strings.Contains(sub.Pattern, prev) {
				t.Errorf("substitution %q listed after shorter %q", sub.Pattern, prev)
			}
		}
	}

	unknown := ProfileFor("xx")
	if unknown.Script != "Devanagari" || len(unknown.Substitutions) != 0 {
		t.Errorf("unknown profile = %+v", unknown)
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) == 0 {
		t.Fatal("no supported languages")
	}
	seen := make(map[string]bool, len(langs))
	for _, l := range langs {
		if seen[l] {
			t.Errorf("duplicate language %q", l)
		}
		seen[l] = true
	}
	if !seen["hi"] || !seen["ta"] {
		t.Errorf("core languages missing from %v", langs)
	}
}
