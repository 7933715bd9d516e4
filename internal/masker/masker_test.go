package masker

import (
	"sort"
	"testing"

	"github.com/xglish/xglish/internal"
	"github.com/xglish/xglish/internal/tagger"
)

func toks(words ...string) []tagger.Token {
	out := make([]tagger.Token, len(words))
	for i, w := range words {
		out[i] = tagger.Token{Text: w, Index: i}
	}
	return out
}

func TestFormat(t *testing.T) {
	if got := Format(internal.PlaceholderASCII, 3); got != "VAR_3" {
		t.Errorf("ascii format = %q", got)
	}
	if got := Format(internal.PlaceholderBraced, 3); got != "{{3}}" {
		t.Errorf("braced format = %q", got)
	}
}

func TestMask_RunsCollapse(t *testing.T) {
	tokens := toks("Can", "you", "send", "Rahul", "the", "report", "?")
	decisions := []bool{false, false, false, true, false, true, false}

	masked, chunks := Mask(tokens, decisions, internal.PlaceholderASCII)

	if masked != "Can you send VAR_0 the VAR_1 ?" {
		t.Errorf("masked = %q", masked)
	}
	if len(chunks) != 2 {
		t.Fatalf("chunks = %v", chunks)
	}
	if chunks[0] != "Rahul" || chunks[1] != "report" {
		t.Errorf("chunk contents = %v", chunks)
	}
}

func TestMask_AdjacentKeptTokensShareChunk(t *testing.T) {
	tokens := toks("ping", "the", "staging", "server", "now")
	decisions := []bool{true, false, true, true, false}

	masked, chunks := Mask(tokens, decisions, internal.PlaceholderBraced)

	if masked != "{{0}} the {{1}} now" {
		t.Errorf("masked = %q", masked)
	}
	if chunks[1] != "staging server" {
		t.Errorf("run chunk = %q", chunks[1])
	}
}

func TestMask_ContractionSpaceCollapse(t *testing.T) {
	tokens := toks("Do", "n't", "touch", "Kubernetes")
	decisions := []bool{false, false, false, true}

	masked, _ := Mask(tokens, decisions, internal.PlaceholderASCII)
	if masked != "Don't touch VAR_0" {
		t.Errorf("masked = %q", masked)
	}
}

func TestMask_AllTranslate(t *testing.T) {
	masked, chunks := Mask(toks("send", "it"), []bool{false, false}, internal.PlaceholderASCII)
	if masked != "send it" || len(chunks) != 0 {
		t.Errorf("masked = %q, chunks = %v", masked, chunks)
	}
}

func TestPattern_BracedToleratesSpaces(t *testing.T) {
	m := Pattern(internal.PlaceholderBraced).FindStringSubmatch("kya {{ 2 }} hai")
	if m == nil || m[1] != "2" {
		t.Fatalf("submatch = %v", m)
	}
}

func TestPattern_ASCIICaseInsensitive(t *testing.T) {
	m := Pattern(internal.PlaceholderASCII).FindStringSubmatch("kya var_7 hai")
	if m == nil || m[1] != "7" {
		t.Fatalf("submatch = %v", m)
	}
}

func TestValidate(t *testing.T) {
	chunks := map[int]string{0: "Rahul", 1: "report", 2: "ASAP"}

	missing, duplicated := Validate("VAR_0 ko VAR_1 bhejo VAR_2", internal.PlaceholderASCII, chunks)
	if len(missing) != 0 || len(duplicated) != 0 {
		t.Errorf("clean round trip flagged: missing=%v duplicated=%v", missing, duplicated)
	}

	missing, duplicated = Validate("VAR_0 ko VAR_0 bhejo", internal.PlaceholderASCII, chunks)
	sort.Ints(missing)
	if len(missing) != 2 || missing[0] != 1 || missing[1] != 2 {
		t.Errorf("missing = %v", missing)
	}
	if len(duplicated) != 1 || duplicated[0] != 0 {
		t.Errorf("duplicated = %v", duplicated)
	}
}
