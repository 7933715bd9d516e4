// Package masker turns the per-token keep/translate decisions into a masked
// string: each maximal run of kept tokens collapses into one chunk,
// represented in the translator input by an opaque placeholder. The paired
// map lets the restorer substitute originals back after translation.
package masker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xglish/xglish/internal"
	"github.com/xglish/xglish/internal/tagger"
)

var (
	// asciiRe matches the literal-token-safe placeholder form. Matched
	// case-insensitively: some engines lowercase their output.
	asciiRe = regexp.MustCompile(`(?i)VAR_(\d+)`)

	// bracedRe tolerates whitespace around the digits; subword tokenizers
	// sometimes reassemble "{{3}}" as "{{ 3 }}".
	bracedRe = regexp.MustCompile(`\{\{\s*(\d+)\s*\}\}`)

	// contractionSpaceRe collapses the stray space the word-join introduces
	// before a contraction fragment ("do n't" → "don't").
	contractionSpaceRe = regexp.MustCompile(`\s+(n't|'s|'re|'ll|'ve|'d|'m)`)
)

// Format renders the placeholder for an id in the given style.
func Format(style internal.PlaceholderStyle, id int) string {
	if style == internal.PlaceholderBraced {
		return fmt.Sprintf("{{%d}}", id)
	}
	return fmt.Sprintf("VAR_%d", id)
}

// Pattern returns the compiled matcher for a style's placeholder grammar.
// The single capture group holds the decimal id.
func Pattern(style internal.PlaceholderStyle) *regexp.Regexp {
	if style == internal.PlaceholderBraced {
		return bracedRe
	}
	return asciiRe
}

// Mask produces the masked text and the placeholder map. Kept chunks are
// joined by single spaces; placeholder ids are sequential from zero and
// unique within the call.
func Mask(tokens []tagger.Token, decisions []bool, style internal.PlaceholderStyle) (string, map[int]string) {
	chunks := make(map[int]string)
	words := make([]string, 0, len(tokens))

	id := 0
	for i := 0; i < len(tokens); {
		if !decisions[i] {
			words = append(words, tokens[i].Text)
			i++
			continue
		}
		j := i
		var run []string
		for j < len(tokens) && decisions[j] {
			run = append(run, tokens[j].Text)
			j++
		}
		chunks[id] = strings.Join(run, " ")
		words = append(words, Format(style, id))
		id++
		i = j
	}

	masked := strings.Join(words, " ")
	masked = contractionSpaceRe.ReplaceAllString(masked, "$1")
	return masked, chunks
}

// Validate checks that every placeholder created by Mask survives in the
// translated markup exactly once. It returns ids that were dropped and ids
// that appear more than once; either means the translator mangled the
// masking protocol and restoration cannot be trusted.
func Validate(translated string, style internal.PlaceholderStyle, chunks map[int]string) (missing, duplicated []int) {
	counts := make(map[int]int)
	for _, m := range Pattern(style).FindAllStringSubmatch(translated, -1) {
		if id, err := strconv.Atoi(m[1]); err == nil {
			counts[id]++
		}
	}
	for id := range chunks {
		switch {
		case counts[id] == 0:
			missing = append(missing, id)
		case counts[id] > 1:
			duplicated = append(duplicated, id)
		}
	}
	return missing, duplicated
}
