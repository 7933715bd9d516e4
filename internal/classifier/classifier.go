// Package classifier decides, per token, whether to keep the original
// language (true) or route the token to translation (false). Rules are
// evaluated in fixed priority order; the first matching rule wins. A second
// cohesion pass flips isolated weak grammatical words into the surrounding
// translated span so the output reads naturally.
package classifier

import (
	"strings"
	"unicode"

	"github.com/xglish/xglish/internal/resources"
	"github.com/xglish/xglish/internal/tagger"
)

// nounFrequencyWiden widens the frequency keep band for noun-tagged tokens.
const nounFrequencyWiden = 1.5

// contraction fragments always translate; they belong to the grammar of the
// surrounding clause, not to any keepable word.
var contractions = map[string]bool{
	"n't": true, "'s": true, "'m": true, "'re": true,
	"'ll": true, "'ve": true, "'d": true, "nt": true,
}

// weakTags are the grammatical classes the cohesion pass may flip: adverbs,
// prepositions, conjunctions, the infinitive marker, determiners,
// interjections and modals.
var weakTags = []string{"RB", "IN", "CC", "TO", "DT", "UH", "MD"}

type Classifier struct {
	res *resources.Bundle
}

func New(res *resources.Bundle) *Classifier {
	return &Classifier{res: res}
}

// Classify returns true when the token should keep its original language.
// Pure function over the token and the static resource bundle.
func (c *Classifier) Classify(tok tagger.Token, threshold int) bool {
	clean := tagger.Clean(tok.Text)
	if strings.TrimSpace(clean) == "" {
		return false
	}
	lower := strings.ToLower(clean)

	// 1. structural contraction fragments
	if contractions[lower] || strings.HasSuffix(lower, "n't") {
		return false
	}

	// 2-3. curated sets
	if c.res.IsTechTerm(lower) {
		return true
	}
	if c.res.IsManualKeep(lower) {
		return true
	}

	// 4. verbs translate unless a set above claimed them
	if strings.HasPrefix(tok.Tag, "VB") {
		return false
	}

	// 5. informality band: a high threshold keeps most scored words
	if scale, ok := c.res.FormalityScore(lower); ok {
		return scale >= 10-threshold
	}

	// 6. multi-letter acronyms
	if isAcronym(clean) {
		return true
	}

	// 7. capitalized words; sentence-initial ones only when tagged proper
	if len([]rune(clean)) > 1 && unicode.IsUpper([]rune(clean)[0]) {
		if tok.Index == 0 {
			if strings.HasPrefix(tok.Tag, "NNP") {
				return true
			}
		} else {
			return true
		}
	}

	// 8. frequency fallback: rare words stay English
	freq := c.res.ZipfFrequency(lower)
	if freq < float64(threshold) {
		return true
	}
	if strings.HasPrefix(tok.Tag, "NN") && freq < float64(threshold)+nounFrequencyWiden {
		return true
	}

	return false
}

// Decide runs Classify over every token.
func (c *Classifier) Decide(tokens []tagger.Token, threshold int) []bool {
	decisions := make([]bool, len(tokens))
	for i, tok := range tokens {
		decisions[i] = c.Classify(tok, threshold)
	}
	return decisions
}

// Cohere flips kept weak-class tokens whose left or right neighbor is marked
// translate. One left-to-right pass over the decision array; rules are not
// re-evaluated. Tech terms are immune.
func (c *Classifier) Cohere(tokens []tagger.Token, decisions []bool) {
	for i, tok := range tokens {
		if !decisions[i] {
			continue
		}
		clean := strings.ToLower(tagger.Clean(tok.Text))
		if c.res.IsTechTerm(clean) {
			continue
		}
		if !hasWeakTag(tok.Tag) {
			continue
		}
		leftTranslated := i > 0 && !decisions[i-1]
		rightTranslated := i < len(tokens)-1 && !decisions[i+1]
		if leftTranslated || rightTranslated {
			decisions[i] = false
		}
	}
}

func hasWeakTag(tag string) bool {
	for _, w := range weakTags {
		if strings.HasPrefix(tag, w) {
			return true
		}
	}
	return false
}

func isAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) || !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
