// Package tagger provides tokenization and part-of-speech tagging for the
// mixing pipeline. Tags use the Penn Treebank inventory; the classifier only
// consumes coarse prefixes (VB*, NN*, NNP, and the weak grammatical classes),
// so a lexicon-driven tagger is sufficient and keeps classification
// deterministic and offline.
package tagger

import (
	"regexp"
	"strings"
	"unicode"
)

// Token is one unit of the input text, produced once per mixing call and
// immutable afterwards.
type Token struct {
	Text    string
	Index   int
	Tag     string
	IsPunct bool
}

// tokenRe matches a word run (with internal apostrophes or hyphens) or a
// single non-space symbol, tweet-tokenizer style.
var tokenRe = regexp.MustCompile(`[A-Za-z0-9_]+(?:['’-][A-Za-z0-9_]+)*|\S`)

// contraction suffixes split off as their own tokens, longest first so n't
// wins over 't.
var contractionSuffixes = []string{"n't", "'re", "'ll", "'ve", "'s", "'d", "'m"}

// Tokenize splits text into tokens, separating contraction fragments the way
// treebank tokenizers do: "don't" becomes "do", "n't" and "Rahul's" becomes
// "Rahul", "'s". Punctuation comes out as standalone tokens.
func Tokenize(text string) []Token {
	var out []Token
	for _, raw := range tokenRe.FindAllString(text, -1) {
		for _, piece := range splitContractions(raw) {
			out = append(out, Token{
				Text:    piece,
				Index:   len(out),
				IsPunct: isPunct(piece),
			})
		}
	}
	return out
}

func splitContractions(word string) []string {
	lower := strings.ToLower(word)
	for _, suf := range contractionSuffixes {
		if strings.HasSuffix(lower, suf) && len(word) > len(suf) {
			cut := len(word) - len(suf)
			// "n't" must leave a real stem behind ("don't" → "do"), and a
			// bare apostrophe word should not split.
			if strings.TrimSpace(word[:cut]) == "" {
				break
			}
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

func isPunct(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// cleanRe strips everything except word characters, whitespace, apostrophes
// and hyphens; classification operates on the cleaned form while the original
// text flows through to the output.
var cleanRe = regexp.MustCompile(`[^\w\s'-]`)

// Clean returns the classification view of a token's text.
func Clean(text string) string {
	return cleanRe.ReplaceAllString(text, "")
}

// NormalizeQuotes replaces curly quotes with their straight ASCII forms so
// contraction matching and masking see one apostrophe variant.
func NormalizeQuotes(text string) string {
	r := strings.NewReplacer("“", `"`, "”", `"`, "‘", "'", "’", "'")
	return r.Replace(text)
}
