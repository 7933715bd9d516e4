// Package romanizer renders translated target-script text into a colloquial
// Latin approximation: transliteration through the Transliterator capability,
// then per-language phonetic substitutions and conditional schwa deletion.
// It also owns the spacing reconciliation applied when restored chunks and
// romanized segments are joined back into one string.
package romanizer

import (
	"context"
	"strings"
	"unicode"

	"github.com/xglish/xglish/internal/langrules"
	"github.com/xglish/xglish/internal/logger"
)

// Transliterator converts text between scripts. May fail; romanization
// degrades to the raw input segment on failure.
type Transliterator interface {
	Convert(ctx context.Context, sourceScript, targetScript, text string) (string, error)
}

// targetScheme is the colloquial Latin rendering scheme requested from the
// transliterator.
const targetScheme = "RomanColloquial"

type Romanizer struct {
	tr Transliterator
}

func New(tr Transliterator) *Romanizer {
	return &Romanizer{tr: tr}
}

// Romanize converts one translated segment to colloquial Latin. Failures are
// not fatal: the segment is returned as-is and the error logged, matching
// the pipeline's fail-open policy.
func (r *Romanizer) Romanize(ctx context.Context, segment, targetLang string) string {
	prof := langrules.ProfileFor(targetLang)

	roman, err := r.tr.Convert(ctx, prof.Script, targetScheme, segment)
	if err != nil {
		logger.L().Warnw("transliteration failed, keeping segment",
			"lang", targetLang, "script", prof.Script, "err", err)
		return segment
	}

	// Ordered substitutions: multi-character patterns are listed before any
	// single-character pattern they contain.
	for _, sub := range prof.Substitutions {
		roman = strings.ReplaceAll(roman, sub.Pattern, sub.Replacement)
	}

	if prof.SchwaDeletion {
		words := strings.Fields(roman)
		for i, w := range words {
			words[i] = deleteSchwa(w, prof.ProtectedSuffixes)
		}
		roman = strings.Join(words, " ")
	}

	return roman
}

// deleteSchwa drops an inherent trailing 'a' when the word is long enough,
// the penultimate letter is a consonant, and no protected suffix matches.
func deleteSchwa(word string, protected []string) string {
	runes := []rune(word)
	if len(runes) <= 3 || runes[len(runes)-1] != 'a' {
		return word
	}
	if isVowel(runes[len(runes)-2]) {
		return word
	}
	for _, suf := range protected {
		if strings.HasSuffix(word, suf) {
			return word
		}
	}
	return string(runes[:len(runes)-1])
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// JoinSegments concatenates restored and romanized segments, dropping empty
// ones and inserting exactly one space where two alphanumeric characters
// would otherwise glue together at a chunk boundary.
func JoinSegments(parts []string) string {
	var b strings.Builder
	var lastRune rune
	for _, p := range parts {
		if p == "" {
			continue
		}
		first, _ := firstLastRunes(p)
		if b.Len() > 0 && isAlnum(lastRune) && isAlnum(first) {
			b.WriteByte(' ')
		}
		b.WriteString(p)
		_, lastRune = firstLastRunes(p)
	}
	return b.String()
}

func firstLastRunes(s string) (first, last rune) {
	for _, r := range s {
		first = r
		break
	}
	for _, r := range s {
		last = r
	}
	return first, last
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
