// Package resources loads the immutable lookup tables behind the
// keep/translate decision: the informality benchmark (word → 0-10 scale), the
// manual keep-word whitelist, the technical-term set, and a zipf-style word
// frequency lexicon. A Bundle is built once at startup and is read-only
// afterwards, so concurrent mixing calls share it without locking.
package resources

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/xglish/xglish/internal/logger"
)

const (
	// Whitelist entries more frequent than this zipf value are dropped:
	// very common English words should follow the normal rules rather than
	// being force-kept.
	whitelistFrequencyCap = 6.42
)

// benchmark file naming: the upstream data repo carried a typo for a while,
// so both spellings are probed.
var benchmarkCandidates = []string{"informalbechmark.json", "infornalbechmark.json"}

const (
	whitelistFile = "xglishwordhindi.json"
	techTermsFile = "TECH_TERMS.json"
	lexiconFile   = "FREQUENCY.json"
)

// wordValueFile is the shared shape of the benchmark/whitelist/tech-term
// resource files.
type wordValueFile struct {
	WordValue []wordValueEntry `json:"wordvalue"`
}

type wordValueEntry struct {
	EnglishWord string  `json:"EnglishWord"`
	Scale       int     `json:"scale"`
	ToBeUsed    bool    `json:"tobeused"`
	Zipf        float64 `json:"zipf"`
}

// Bundle is the immutable resource store.
type Bundle struct {
	formality map[string]int
	keepWords map[string]struct{}
	techTerms map[string]struct{}
	lexicon   map[string]float64
}

// Normalize lowercases and NFC-normalizes a lookup key. All table lookups go
// through it so callers may pass raw token text.
func Normalize(word string) string {
	return norm.NFC.String(strings.ToLower(word))
}

// Empty returns a Bundle with no entries. Classification still works: every
// lookup misses and the frequency fallback sees only the built-in lexicon.
func Empty() *Bundle {
	return &Bundle{
		formality: map[string]int{},
		keepWords: map[string]struct{}{},
		techTerms: map[string]struct{}{},
		lexicon:   map[string]float64{},
	}
}

// Load reads every resource file found under dir. Individual missing or
// malformed files are tolerated (the corresponding table stays empty); a
// missing directory is an error so a misconfigured data path fails at startup
// rather than silently classifying everything as translate.
func Load(dir string) (*Bundle, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("resource directory %s: %w", dir, err)
	}

	b := Empty()
	log := logger.L()

	loaded := false
	for _, name := range benchmarkCandidates {
		f, err := readWordValueFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		for _, e := range f.WordValue {
			w := Normalize(e.EnglishWord)
			if w == "" {
				continue
			}
			b.formality[w] = e.Scale
		}
		log.Infow("loaded formality benchmark", "file", name, "words", len(b.formality))
		loaded = true
		break
	}
	if !loaded {
		log.Warnw("formality benchmark not found, table empty", "dir", dir)
	}

	if f, err := readWordValueFile(filepath.Join(dir, whitelistFile)); err == nil {
		filtered := 0
		for _, e := range f.WordValue {
			if !e.ToBeUsed {
				continue
			}
			w := Normalize(e.EnglishWord)
			if w == "" {
				continue
			}
			if b.frequency(w) > whitelistFrequencyCap {
				filtered++
				continue
			}
			b.keepWords[w] = struct{}{}
		}
		log.Infow("loaded manual whitelist", "words", len(b.keepWords), "filtered", filtered)
	} else {
		log.Warnw("manual whitelist not found, table empty", "err", err)
	}

	if f, err := readWordValueFile(filepath.Join(dir, techTermsFile)); err == nil {
		for _, e := range f.WordValue {
			if w := Normalize(e.EnglishWord); w != "" {
				b.techTerms[w] = struct{}{}
			}
		}
		log.Infow("loaded tech terms", "words", len(b.techTerms))
	} else {
		log.Warnw("tech terms not found, table empty", "err", err)
	}

	if raw, err := os.ReadFile(filepath.Join(dir, lexiconFile)); err == nil {
		lex := map[string]float64{}
		if err := json.Unmarshal(raw, &lex); err == nil {
			for w, z := range lex {
				b.lexicon[Normalize(w)] = z
			}
			log.Infow("loaded frequency lexicon", "words", len(b.lexicon))
		} else {
			log.Warnw("frequency lexicon malformed, using built-in", "err", err)
		}
	}

	return b, nil
}

func readWordValueFile(path string) (*wordValueFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f wordValueFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("malformed resource file %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// FormalityScore returns the 0-10 informality scale for a word.
func (b *Bundle) FormalityScore(word string) (int, bool) {
	s, ok := b.formality[Normalize(word)]
	return s, ok
}

// IsTechTerm reports whether the word is in the technical-term set.
func (b *Bundle) IsTechTerm(word string) bool {
	_, ok := b.techTerms[Normalize(word)]
	return ok
}

// IsManualKeep reports whether the word is in the manual whitelist.
func (b *Bundle) IsManualKeep(word string) bool {
	_, ok := b.keepWords[Normalize(word)]
	return ok
}

// ZipfFrequency returns the zipf-scale frequency of a word: the loaded
// lexicon first, then the built-in core vocabulary, then 0 (i.e. rare).
func (b *Bundle) ZipfFrequency(word string) float64 {
	return b.frequency(Normalize(word))
}

func (b *Bundle) frequency(normalized string) float64 {
	if z, ok := b.lexicon[normalized]; ok {
		return z
	}
	if z, ok := coreFrequencies[normalized]; ok {
		return z
	}
	return 0
}

// Counts reports table sizes for the resources inspection command.
func (b *Bundle) Counts() (formality, whitelist, tech, lexicon int) {
	return len(b.formality), len(b.keepWords), len(b.techTerms), len(b.lexicon)
}

// Builder constructs bundles programmatically; tests and embedders use it
// instead of the file loader.
type Builder struct {
	b *Bundle
}

func NewBuilder() *Builder {
	return &Builder{b: Empty()}
}

func (bl *Builder) Formality(word string, scale int) *Builder {
	bl.b.formality[Normalize(word)] = scale
	return bl
}

func (bl *Builder) KeepWord(word string) *Builder {
	bl.b.keepWords[Normalize(word)] = struct{}{}
	return bl
}

func (bl *Builder) TechTerm(word string) *Builder {
	bl.b.techTerms[Normalize(word)] = struct{}{}
	return bl
}

func (bl *Builder) Frequency(word string, zipf float64) *Builder {
	bl.b.lexicon[Normalize(word)] = zipf
	return bl
}

func (bl *Builder) Build() *Bundle {
	return bl.b
}
