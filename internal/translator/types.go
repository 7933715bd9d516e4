// Package translator defines the translation engine contract and the three
// concrete backends: an IndicTrans-style local server, LibreTranslate, and
// Google Cloud Translation. The engine is selected once at construction;
// callers never branch on engine names per call.
package translator

import (
	"context"
	"time"

	"github.com/xglish/xglish/internal"
)

type Service interface {
	Name() string

	// PlaceholderStyle tells the masker which placeholder encoding survives
	// this engine's tokenization.
	PlaceholderStyle() internal.PlaceholderStyle

	// Translate translates a single text. May fail; callers are expected to
	// fail open with their original input.
	Translate(ctx context.Context, text, targetLang string) (string, error)

	// TranslateBatch translates texts positionally: len(out) == len(texts)
	// on success. A failure fails the batch as a whole.
	TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

const defaultHTTPTimeout = 120 * time.Second
