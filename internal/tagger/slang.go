package tagger

import (
	"regexp"
	"strings"
	"unicode"
)

// slangMap expands chat shorthand before tagging so the tagger sees canonical
// words. The expansion is only used for the tagging view; original spellings
// flow through to the output untouched.
var slangMap = map[string]string{
	// pronouns & contractions
	"u": "you", "ur": "your", "ure": "you're", "youre": "you're",
	"im": "i'm", "ive": "i've", "id": "i'd", "ill": "i'll",
	"hes": "he's", "shes": "she's", "theyre": "they're",
	"wont": "won't", "dont": "don't", "cant": "can't", "shouldnt": "shouldn't",

	// common abbreviations
	"pls": "please", "plz": "please", "thx": "thanks", "thks": "thanks",
	"tbh": "to be honest", "btw": "by the way", "rn": "right now",
	"omg": "oh my god", "nvm": "never mind", "idk": "i don't know",
	"imo": "in my opinion", "imho": "in my honest opinion",

	// verbs & slang
	"wanna": "want to", "gonna": "going to", "gotta": "got to",
	"tryna": "trying to", "kinda": "kind of", "sorta": "sort of",
	"gimme": "give me", "lemme": "let me", "dunno": "don't know",

	// intensifiers
	"v": "very", "rly": "really", "srsly": "seriously",

	// questions
	"y": "why", "bc": "because", "cuz": "because", "coz": "because",
	"r": "are", "wat": "what", "wen": "when",
}

var nonWordRe = regexp.MustCompile(`[^\w]`)

// NormalizeSlang expands chat slang word by word, preserving the leading
// capitalization of the original.
func NormalizeSlang(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, word := range words {
		clean := nonWordRe.ReplaceAllString(strings.ToLower(word), "")
		if repl, ok := slangMap[clean]; ok {
			if len(word) > 0 && unicode.IsUpper([]rune(word)[0]) {
				repl = capitalize(repl)
			}
			out = append(out, repl)
		} else {
			out = append(out, word)
		}
	}
	return strings.Join(out, " ")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
