package restorer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xglish/xglish/internal"
)

func TestScan_AlternatingSegments(t *testing.T) {
	segs := Scan("kya aap VAR_0 ko VAR_1 bhejo", internal.PlaceholderASCII)

	want := []Segment{
		{Kind: Literal, Text: "kya aap "},
		{Kind: Placeholder, Text: "VAR_0", ID: 0},
		{Kind: Literal, Text: " ko "},
		{Kind: Placeholder, Text: "VAR_1", ID: 1},
		{Kind: Literal, Text: " bhejo"},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %v, want %v", segs, want)
	}
}

func TestScan_AdjacentPlaceholders(t *testing.T) {
	segs := Scan("VAR_0VAR_1", internal.PlaceholderASCII)
	if len(segs) != 2 {
		t.Fatalf("segments = %v", segs)
	}
	if segs[0].ID != 0 || segs[1].ID != 1 {
		t.Errorf("ids = %d, %d", segs[0].ID, segs[1].ID)
	}
}

func TestScan_BracedWithSpaces(t *testing.T) {
	segs := Scan("namaste {{ 4 }} ji", internal.PlaceholderBraced)
	if len(segs) != 3 {
		t.Fatalf("segments = %v", segs)
	}
	if segs[1].Kind != Placeholder || segs[1].ID != 4 {
		t.Errorf("middle segment = %+v", segs[1])
	}
}

func TestScan_NoPlaceholders(t *testing.T) {
	segs := Scan("sab theek hai", internal.PlaceholderASCII)
	if len(segs) != 1 || segs[0].Kind != Literal {
		t.Fatalf("segments = %v", segs)
	}
}

func upperRomanize(_ context.Context, s string) string {
	return strings.ToUpper(s)
}

func TestRestore_SubstitutesChunks(t *testing.T) {
	chunks := map[int]string{0: "Rahul", 1: "report"}

	parts := Restore(context.Background(), "kya VAR_0 ko VAR_1 bhejo", internal.PlaceholderASCII, chunks, upperRomanize)

	want := []string{"KYA ", "Rahul", " KO ", "report", " BHEJO"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("parts = %v, want %v", parts, want)
	}
}

func TestRestore_UnknownIDBecomesLiteral(t *testing.T) {
	parts := Restore(context.Background(), "VAR_9 bhejo", internal.PlaceholderASCII, map[int]string{}, nil)
	if parts[0] != "(9)" {
		t.Errorf("unknown placeholder rendered as %q", parts[0])
	}
}

func TestRestore_WhitespaceLiteralNotRomanized(t *testing.T) {
	called := false
	romanize := func(_ context.Context, s string) string {
		called = true
		return s
	}
	parts := Restore(context.Background(), "VAR_0 VAR_1", internal.PlaceholderASCII, map[int]string{0: "a", 1: "b"}, romanize)
	if called {
		t.Error("whitespace-only literal sent to romanizer")
	}
	want := []string{"a", " ", "b"}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("parts = %v", parts)
	}
}

func TestRestore_UntranslatableMarkerPassesThrough(t *testing.T) {
	for _, markup := range []string{"<mask> rakho", "< maask rakho", "<MASK> rakho"} {
		parts := Restore(context.Background(), markup, internal.PlaceholderASCII, nil, upperRomanize)
		if parts[0] != markup {
			t.Errorf("marker literal %q romanized to %q", markup, parts[0])
		}
	}
}

func TestVerify(t *testing.T) {
	chunks := map[int]string{0: "Rahul", 1: "report"}

	if err := Verify("VAR_0 ko VAR_1", internal.PlaceholderASCII, chunks); err != nil {
		t.Errorf("intact markup rejected: %v", err)
	}

	err := Verify("VAR_0 hi VAR_0", internal.PlaceholderASCII, chunks)
	if !errors.Is(err, ErrPlaceholderMismatch) {
		t.Errorf("mangled markup error = %v", err)
	}
}
