package classifier

import (
	"testing"

	"github.com/xglish/xglish/internal/resources"
	"github.com/xglish/xglish/internal/tagger"
)

func tok(text, tag string, index int) tagger.Token {
	return tagger.Token{Text: text, Index: index, Tag: tag}
}

func TestClassify_PriorityOrder(t *testing.T) {
	res := resources.NewBuilder().
		TechTerm("kubernetes").
		KeepWord("jugaad").
		Formality("report", 1).
		Formality("chill", 9).
		Frequency("send", 5.4).
		Frequency("the", 7.7).
		Build()
	c := New(res)

	cases := []struct {
		name string
		tok  tagger.Token
		want bool
	}{
		{"contraction fragment translates", tok("n't", "RB", 1), false},
		{"contraction suffix translates", tok("don't", "VB", 1), false},
		{"tech term kept", tok("Kubernetes", "NNP", 1), true},
		{"whitelist kept", tok("jugaad", "NN", 1), true},
		{"verb translates", tok("send", "VB", 1), false},
		{"formal scored word translates", tok("report", "NN", 1), false},
		{"informal scored word kept", tok("chill", "NN", 1), true},
		{"acronym kept", tok("NASA", "NNP", 1), true},
		{"capitalized mid-sentence kept", tok("Rahul", "NNP", 3), true},
		{"sentence-initial proper noun kept", tok("Priya", "NNP", 0), true},
		{"sentence-initial non-proper falls through", tok("The", "DT", 0), false},
		{"rare word kept by frequency", tok("serendipity", "NN", 1), true},
		{"punctuation translates", tok("?", ".", 5), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.tok, 7); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.tok.Text, got, tc.want)
			}
		})
	}
}

func TestClassify_FormalityBand(t *testing.T) {
	res := resources.NewBuilder().Formality("word", 3).Build()
	c := New(res)

	// threshold 7 keeps scale >= 3
	if !c.Classify(tok("word", "NN", 1), 7) {
		t.Error("scale 3 with threshold 7 should keep")
	}
	// threshold 6 keeps scale >= 4
	if c.Classify(tok("word", "NN", 1), 6) {
		t.Error("scale 3 with threshold 6 should translate")
	}
}

func TestClassify_NounFrequencyWidening(t *testing.T) {
	res := resources.NewBuilder().Frequency("market", 7.8).Build()
	c := New(res)

	// 7.8 >= 7 and >= 7+1.5? No: 7.8 < 8.5, so the noun band keeps it.
	if !c.Classify(tok("market", "NN", 1), 7) {
		t.Error("noun within widened band should keep")
	}
	// Same frequency, non-noun tag: translates.
	if c.Classify(tok("market", "JJ", 1), 7) {
		t.Error("non-noun outside base band should translate")
	}
}

func TestClassify_TaglessDegradation(t *testing.T) {
	c := New(resources.NewBuilder().Frequency("send", 5.4).Build())

	// Without a VB tag the verb rule cannot fire; frequency keeps it.
	if !c.Classify(tok("send", "", 1), 7) {
		t.Error("untagged rare word should fall through to frequency keep")
	}
	// Sentence-initial capitalized word without NNP tag is not kept by the
	// capitalization rule.
	got := c.Classify(tok("Serendipity", "", 0), 7)
	if !got {
		t.Error("still kept via frequency fallback")
	}
}

func TestCohere_FlipsStrandedWeakWord(t *testing.T) {
	res := resources.NewBuilder().
		Frequency("running", 7.5).
		Frequency("with", 6.7).
		Build()
	c := New(res)

	tokens := []tagger.Token{
		tok("running", "VBG", 0),
		tok("with", "IN", 1),
		tok("Rahul", "NNP", 2),
	}
	decisions := c.Decide(tokens, 7)
	want := []bool{false, true, true}
	for i := range want {
		if decisions[i] != want[i] {
			t.Fatalf("pre-cohesion decision %d = %v, want %v", i, decisions[i], want[i])
		}
	}

	c.Cohere(tokens, decisions)

	// "with" is weak (IN) and its left neighbor translates: flipped.
	if decisions[1] {
		t.Error("expected stranded preposition to flip to translate")
	}
	// "Rahul" is not weak: untouched.
	if !decisions[2] {
		t.Error("proper noun must not be flipped")
	}
}

func TestCohere_TechTermImmune(t *testing.T) {
	res := resources.NewBuilder().TechTerm("offline").Build()
	c := New(res)

	tokens := []tagger.Token{
		tok("going", "VBG", 0),
		tok("offline", "RB", 1),
	}
	decisions := c.Decide(tokens, 7)
	if decisions[0] || !decisions[1] {
		t.Fatalf("unexpected pre-cohesion decisions: %v", decisions)
	}

	c.Cohere(tokens, decisions)
	if !decisions[1] {
		t.Error("tech term must survive cohesion even with weak tag")
	}
}

func TestCohere_KeptNeighborsNotFlipped(t *testing.T) {
	c := New(resources.NewBuilder().KeepWord("so").KeepWord("cool").KeepWord("yaar").Build())

	tokens := []tagger.Token{
		tok("so", "RB", 0),
		tok("cool", "JJ", 1),
		tok("yaar", "UH", 2),
	}
	decisions := c.Decide(tokens, 7)
	c.Cohere(tokens, decisions)

	for i, d := range decisions {
		if !d {
			t.Errorf("token %d flipped despite both neighbors kept", i)
		}
	}
}
