// Package detector guards the pipeline entrance: the mixer's rules assume
// English input, so callers probe the input language first and pass
// non-English text through unmixed.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the ISO-639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// IsEnglish reports whether the text is detected as English. Undetectable
// text counts as English so short or ambiguous inputs still get mixed.
func (d *Detector) IsEnglish(text string) bool {
	lang, ok := d.Detect(text)
	if !ok {
		return true
	}
	return lang == lingua.English
}
