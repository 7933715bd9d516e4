// Package restorer splits translated markup back into literal and
// placeholder segments and reinserts the original chunks. The split is an
// explicit two-token scan (literal-run, placeholder-run) over the
// placeholder grammar rather than an ad-hoc regex split, so literal content
// that merely resembles a delimiter cannot desynchronize restoration.
package restorer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xglish/xglish/internal"
	"github.com/xglish/xglish/internal/masker"
)

// ErrPlaceholderMismatch reports that the translator dropped or duplicated a
// placeholder; positional restoration cannot be trusted in that case.
var ErrPlaceholderMismatch = errors.New("restorer: placeholder round-trip mismatch")

// untranslatableRe matches the translator-side marker for content it refused
// to translate; such segments pass through romanization untouched. Engines
// emit the marker with stray vowels at times, hence the tolerant pattern.
var untranslatableRe = regexp.MustCompile(`(?i)<\s*m[a]*sk[a]*`)

type SegmentKind int

const (
	Literal SegmentKind = iota
	Placeholder
)

// Segment is one token of the restoration grammar: a literal text run or a
// placeholder reference.
type Segment struct {
	Kind SegmentKind
	Text string // literal text, or the raw placeholder match
	ID   int    // placeholder id; meaningful only for Kind == Placeholder
}

// Scan tokenizes translated markup into alternating literal and placeholder
// segments. Adjacent placeholders produce no empty literal between them.
func Scan(markup string, style internal.PlaceholderStyle) []Segment {
	pattern := masker.Pattern(style)
	var segs []Segment
	last := 0
	for _, loc := range pattern.FindAllStringSubmatchIndex(markup, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Kind: Literal, Text: markup[last:loc[0]]})
		}
		id, err := strconv.Atoi(markup[loc[2]:loc[3]])
		if err != nil {
			// Cannot happen with the digit-only grammar; treat as literal.
			segs = append(segs, Segment{Kind: Literal, Text: markup[loc[0]:loc[1]]})
		} else {
			segs = append(segs, Segment{Kind: Placeholder, Text: markup[loc[0]:loc[1]], ID: id})
		}
		last = loc[1]
	}
	if last < len(markup) {
		segs = append(segs, Segment{Kind: Literal, Text: markup[last:]})
	}
	return segs
}

// RomanizeFunc renders one literal segment; see romanizer.Romanizer.
type RomanizeFunc func(ctx context.Context, segment string) string

// Restore rebuilds the final segment list from translated markup: placeholder
// segments are replaced by their original chunk text (or a defensive "(id)"
// literal when the id is unknown), untranslatable-marked literals pass
// through verbatim, and every other literal goes through romanize.
func Restore(ctx context.Context, markup string, style internal.PlaceholderStyle, chunks map[int]string, romanize RomanizeFunc) []string {
	segs := Scan(markup, style)
	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg.Kind {
		case Placeholder:
			if original, ok := chunks[seg.ID]; ok {
				parts = append(parts, original)
			} else {
				parts = append(parts, fmt.Sprintf("(%d)", seg.ID))
			}
		case Literal:
			if strings.TrimSpace(seg.Text) == "" {
				parts = append(parts, seg.Text)
			} else if untranslatableRe.MatchString(seg.Text) {
				parts = append(parts, seg.Text)
			} else if romanize != nil {
				parts = append(parts, romanize(ctx, seg.Text))
			} else {
				parts = append(parts, seg.Text)
			}
		}
	}
	return parts
}

// Verify checks placeholder round-trip integrity of translated markup. Call
// it only after a successful translation; the fail-open fallback path keeps
// the masked input, which round-trips by construction.
func Verify(markup string, style internal.PlaceholderStyle, chunks map[int]string) error {
	missing, duplicated := masker.Validate(markup, style, chunks)
	if len(missing) > 0 || len(duplicated) > 0 {
		return fmt.Errorf("%w: missing %v, duplicated %v", ErrPlaceholderMismatch, missing, duplicated)
	}
	return nil
}
