package tagger

import (
	"reflect"
	"testing"
)

func TestTokenize_SplitsContractions(t *testing.T) {
	toks := Tokenize("Don't send Rahul's report")
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	want := []string{"Do", "n't", "send", "Rahul", "'s", "report"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("expected %v, got %v", want, texts)
	}
}

func TestTokenize_PunctuationStandsAlone(t *testing.T) {
	toks := Tokenize("Hello, world!")
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	want := []string{"Hello", ",", "world", "!"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	if !toks[1].IsPunct || !toks[3].IsPunct {
		t.Error("expected , and ! to be punctuation tokens")
	}
	if toks[0].IsPunct {
		t.Error("Hello should not be punctuation")
	}
}

func TestTokenize_IndicesAreSequential(t *testing.T) {
	toks := Tokenize("I'm here now")
	for i, tok := range toks {
		if tok.Index != i {
			t.Errorf("token %q has index %d, want %d", tok.Text, tok.Index, i)
		}
	}
}

func TestClean_StripsPunctuationKeepsApostrophe(t *testing.T) {
	if got := Clean("report,"); got != "report" {
		t.Errorf("expected %q, got %q", "report", got)
	}
	if got := Clean("n't"); got != "n't" {
		t.Errorf("expected contraction preserved, got %q", got)
	}
	if got := Clean("!?"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestNormalizeQuotes(t *testing.T) {
	in := "“don’t”"
	if got := NormalizeQuotes(in); got != `"don't"` {
		t.Errorf("expected straight quotes, got %q", got)
	}
}

func TestNormalizeSlang(t *testing.T) {
	got := NormalizeSlang("Gonna meet u rn")
	want := "Going to meet you right now"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeSlang_LeavesUnknownWords(t *testing.T) {
	in := "send the report"
	if got := NormalizeSlang(in); got != in {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
