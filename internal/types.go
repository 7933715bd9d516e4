package internal

// PlaceholderStyle selects the wire encoding of mask tokens for a given
// translation engine. Engines that pass literal tokens through untouched get
// the ASCII form (VAR_0); engines whose subword tokenization may insert
// spacing inside tokens get the braced form ({{0}}), which is matched with
// whitespace tolerance on restoration.
type PlaceholderStyle int

const (
	PlaceholderASCII PlaceholderStyle = iota
	PlaceholderBraced
)

func (s PlaceholderStyle) String() string {
	if s == PlaceholderBraced {
		return "braced"
	}
	return "ascii"
}
