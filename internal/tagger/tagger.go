package tagger

import (
	"context"
	"strings"
	"unicode"
)

// TaggedToken pairs a token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags to a text. Implementations may fail or
// return a degraded (empty) result; the classifier tolerates missing tags.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]TaggedToken, error)
}

// Rule is a lexicon-driven tagger: closed grammatical classes come from word
// lists, verbs from a core verb lexicon plus suffix heuristics, and
// capitalized non-initial words are treated as proper nouns. Everything else
// defaults to NN.
type Rule struct{}

func NewRule() *Rule {
	return &Rule{}
}

var closedClass = map[string]string{
	// determiners
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "each": "DT", "every": "DT", "some": "DT",
	"any": "DT", "no": "DT", "all": "DT", "both": "DT", "another": "DT",

	// prepositions / subordinating conjunctions
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "of": "IN", "about": "IN", "into": "IN",
	"over": "IN", "under": "IN", "after": "IN", "before": "IN",
	"between": "IN", "through": "IN", "during": "IN", "against": "IN",
	"without": "IN", "within": "IN", "if": "IN", "because": "IN",
	"while": "IN", "since": "IN", "until": "IN",

	// coordinating conjunctions
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",

	// modals
	"can": "MD", "could": "MD", "will": "MD", "would": "MD", "shall": "MD",
	"should": "MD", "may": "MD", "might": "MD", "must": "MD",

	// pronouns
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP$",
	"us": "PRP", "them": "PRP", "my": "PRP$", "your": "PRP$", "his": "PRP$",
	"its": "PRP$", "our": "PRP$", "their": "PRP$",

	// interjections
	"oh": "UH", "wow": "UH", "hey": "UH", "hmm": "UH", "yeah": "UH",
	"ugh": "UH", "ah": "UH", "uh": "UH", "hello": "UH", "hi": "UH",
	"okay": "UH", "ok": "UH", "please": "UH", "thanks": "UH", "yes": "UH",

	// adverbs
	"not": "RB", "very": "RB", "really": "RB", "quite": "RB", "too": "RB",
	"also": "RB", "just": "RB", "never": "RB", "always": "RB", "often": "RB",
	"soon": "RB", "now": "RB", "then": "RB", "here": "RB", "there": "RB",
	"again": "RB", "still": "RB", "already": "RB", "maybe": "RB",

	// wh-words
	"what": "WP", "who": "WP", "which": "WDT",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",

	"to": "TO",
}

var coreVerbs = map[string]string{
	"be": "VB", "is": "VBZ", "am": "VBP", "are": "VBP", "was": "VBD",
	"were": "VBD", "been": "VBN", "being": "VBG",
	"have": "VBP", "has": "VBZ", "had": "VBD",
	"do": "VBP", "does": "VBZ", "did": "VBD", "done": "VBN",
	"go": "VB", "get": "VB", "make": "VB", "know": "VB", "think": "VB",
	"see": "VB", "come": "VB", "take": "VB", "want": "VB", "give": "VB",
	"send": "VB", "tell": "VB", "call": "VB", "find": "VB", "say": "VB",
	"said": "VBD", "help": "VB", "need": "VB", "let": "VB", "put": "VB",
	"mean": "VB", "keep": "VB", "ask": "VB", "show": "VB", "try": "VB",
	"feel": "VB", "leave": "VB", "work": "VB", "play": "VB", "run": "VB",
	"eat": "VB", "read": "VB", "write": "VB", "buy": "VB", "pay": "VB",
	"meet": "VB", "learn": "VB", "speak": "VB", "talk": "VB", "wait": "VB",
	"look": "VB", "use": "VB", "bring": "VB", "sit": "VB", "stand": "VB",
	"went": "VBD", "got": "VBD", "made": "VBD", "told": "VBD", "sent": "VBD",
	"came": "VBD", "took": "VBD", "gave": "VBD", "found": "VBD", "met": "VBD",
}

var fragmentTags = map[string]string{
	"n't": "RB", "'s": "POS", "'m": "VBP", "'re": "VBP",
	"'ve": "VBP", "'ll": "MD", "'d": "MD",
}

// Tag tokenizes text and tags every token. It never fails; callers that need
// a fallible tagger (e.g. a remote service) wrap their own implementation.
func (r *Rule) Tag(_ context.Context, text string) ([]TaggedToken, error) {
	toks := Tokenize(text)
	out := make([]TaggedToken, len(toks))
	for i, tok := range toks {
		out[i] = TaggedToken{Text: tok.Text, Tag: r.tagOne(tok.Text, i)}
	}
	return out, nil
}

func (r *Rule) tagOne(word string, index int) string {
	if isPunct(word) {
		return "."
	}
	lower := strings.ToLower(word)

	if tag, ok := fragmentTags[lower]; ok {
		return tag
	}
	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if tag, ok := coreVerbs[lower]; ok {
		return tag
	}
	if strings.HasSuffix(lower, "ly") && len(lower) > 4 {
		return "RB"
	}
	if strings.HasSuffix(lower, "ing") && len(lower) > 5 {
		if _, ok := coreVerbs[strings.TrimSuffix(lower, "ing")]; ok {
			return "VBG"
		}
	}
	if strings.HasSuffix(lower, "ed") && len(lower) > 4 {
		if _, ok := coreVerbs[strings.TrimSuffix(lower, "ed")]; ok {
			return "VBD"
		}
	}

	runes := []rune(word)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) {
		if index > 0 {
			return "NNP"
		}
		// Sentence-initial capitalized words are only proper nouns when the
		// lowercase form is unknown to every lexicon.
		if _, ok := coreFrequencyKnown(lower); !ok {
			return "NNP"
		}
	}
	return "NN"
}

// coreFrequencyKnown reports whether the word belongs to the common English
// vocabulary the tagger knows about. Used only to keep sentence-initial
// common words from being mistaken for names.
func coreFrequencyKnown(lower string) (string, bool) {
	if tag, ok := closedClass[lower]; ok {
		return tag, true
	}
	if tag, ok := coreVerbs[lower]; ok {
		return tag, true
	}
	if commonNouns[lower] {
		return "NN", true
	}
	return "", false
}

var commonNouns = map[string]bool{
	"time": true, "people": true, "day": true, "man": true, "thing": true,
	"woman": true, "life": true, "child": true, "world": true, "house": true,
	"report": true, "market": true, "office": true, "meeting": true,
	"school": true, "friend": true, "phone": true, "email": true,
	"computer": true, "water": true, "food": true, "money": true,
	"morning": true, "night": true, "week": true, "year": true, "home": true,
}
