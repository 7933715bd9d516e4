// Package mixer runs the code-mixing pipeline: tokenize → tag → classify →
// cohesion → mask → translate → split → restore+romanize → join. Each call
// walks the stages once, suspending only while awaiting the translation
// backend (directly or through the batch scheduler). Concurrent calls share
// only the immutable resource bundle and language rules.
package mixer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xglish/xglish/internal"
	"github.com/xglish/xglish/internal/classifier"
	"github.com/xglish/xglish/internal/logger"
	"github.com/xglish/xglish/internal/masker"
	"github.com/xglish/xglish/internal/resources"
	"github.com/xglish/xglish/internal/restorer"
	"github.com/xglish/xglish/internal/romanizer"
	"github.com/xglish/xglish/internal/scheduler"
	"github.com/xglish/xglish/internal/store"
	"github.com/xglish/xglish/internal/tagger"
	"github.com/xglish/xglish/internal/translator"
)

// DefaultThreshold is the formality threshold used when a call passes 0.
const DefaultThreshold = 7

type Options struct {
	Resources      *resources.Bundle
	Engine         translator.Service
	Transliterator romanizer.Transliterator

	// Tagger defaults to the built-in rule tagger.
	Tagger tagger.Tagger

	// Scheduler, when set, routes single-item translations through the
	// micro-batching queue instead of calling the engine directly.
	Scheduler *scheduler.Scheduler

	// Memory, when set, caches final outputs.
	Memory *store.Store

	Threshold int
}

type Mixer struct {
	res       *resources.Bundle
	cls       *classifier.Classifier
	tag       tagger.Tagger
	engine    translator.Service
	rom       *romanizer.Romanizer
	sched     *scheduler.Scheduler
	mem       *store.Store
	threshold int
	log       *zap.SugaredLogger
}

func New(opts Options) (*Mixer, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("mixer: translation engine is required")
	}
	if opts.Transliterator == nil {
		return nil, fmt.Errorf("mixer: transliterator is required")
	}
	res := opts.Resources
	if res == nil {
		res = resources.Empty()
	}
	tag := opts.Tagger
	if tag == nil {
		tag = tagger.NewRule()
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Mixer{
		res:       res,
		cls:       classifier.New(res),
		tag:       tag,
		engine:    opts.Engine,
		rom:       romanizer.New(opts.Transliterator),
		sched:     opts.Scheduler,
		mem:       opts.Memory,
		threshold: threshold,
		log:       logger.L(),
	}, nil
}

// Mix code-mixes one text. threshold <= 0 selects the configured default.
func (m *Mixer) Mix(ctx context.Context, text, targetLang string, threshold int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if threshold <= 0 {
		threshold = m.threshold
	}

	if m.mem != nil {
		if cached, found, err := m.mem.Get(ctx, text, targetLang, threshold); err == nil && found {
			m.log.Debugw("mix memory hit", "lang", targetLang)
			return cached, nil
		}
	}

	out, err := m.mixOne(ctx, text, targetLang, threshold)
	if err != nil {
		return "", err
	}

	if m.mem != nil {
		if err := m.mem.Save(ctx, text, targetLang, threshold, out, m.engine.Name()); err != nil {
			m.log.Warnw("failed to save mix memory", "err", err)
		}
	}
	return out, nil
}

// MixBatch code-mixes texts positionally: the output has the same order and
// length as the input. All texts are masked first, translated in one backend
// call, then restored individually. A batch translation failure degrades
// every item together, fail-open.
func (m *Mixer) MixBatch(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	threshold := m.threshold
	style := m.engine.PlaceholderStyle()

	out := make([]string, len(texts))
	type prepared struct {
		index  int
		masked string
		chunks map[int]string
	}
	var pending []prepared

	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			out[i] = text
			continue
		}
		if m.mem != nil {
			if cached, found, err := m.mem.Get(ctx, text, targetLang, threshold); err == nil && found {
				out[i] = cached
				continue
			}
		}
		masked, chunks := m.prepare(ctx, text, threshold, style)
		pending = append(pending, prepared{index: i, masked: masked, chunks: chunks})
	}

	if len(pending) > 0 {
		maskedTexts := make([]string, len(pending))
		for i, p := range pending {
			maskedTexts[i] = p.masked
		}

		translated, err := m.engine.TranslateBatch(ctx, maskedTexts, targetLang)
		if err != nil || len(translated) != len(pending) {
			m.log.Warnw("batch translation failed, falling back to masked texts",
				"engine", m.engine.Name(), "size", len(pending), "err", err)
			translated = maskedTexts
		}

		for i, p := range pending {
			if err := restorer.Verify(translated[i], style, p.chunks); err != nil {
				return nil, err
			}
			out[p.index] = m.finish(ctx, translated[i], targetLang, style, p.chunks)
			if m.mem != nil {
				if err := m.mem.Save(ctx, texts[p.index], targetLang, threshold, out[p.index], m.engine.Name()); err != nil {
					m.log.Warnw("failed to save mix memory", "err", err)
				}
			}
		}
	}

	return out, nil
}

func (m *Mixer) mixOne(ctx context.Context, text, targetLang string, threshold int) (string, error) {
	style := m.engine.PlaceholderStyle()
	masked, chunks := m.prepare(ctx, text, threshold, style)

	translated, err := m.translate(ctx, masked, targetLang)
	if err != nil {
		return "", err
	}

	// A failed translation falls back to the masked input, which round-trips
	// by construction, so verification only bites on real mangling.
	if err := restorer.Verify(translated, style, chunks); err != nil {
		return "", err
	}

	return m.finish(ctx, translated, targetLang, style, chunks), nil
}

// prepare runs the decision half of the pipeline: tokenize, tag, classify,
// cohesion, mask.
func (m *Mixer) prepare(ctx context.Context, text string, threshold int, style internal.PlaceholderStyle) (string, map[int]string) {
	text = tagger.NormalizeQuotes(text)
	tokens := tagger.Tokenize(text)
	m.applyTags(ctx, text, tokens)

	decisions := m.cls.Decide(tokens, threshold)
	m.cls.Cohere(tokens, decisions)

	masked, chunks := masker.Mask(tokens, decisions, style)
	m.log.Debugw("masked input", "chunks", len(chunks), "style", style.String())
	return masked, chunks
}

// applyTags tags the slang-normalized view of the text and aligns the tags
// onto the original tokens: positionally when the token counts agree,
// otherwise by lowercased text. A tagging failure is non-fatal; tokens stay
// untagged and the classifier falls back to its lexical rules.
func (m *Mixer) applyTags(ctx context.Context, text string, tokens []tagger.Token) {
	taggingText := tagger.NormalizeSlang(text)
	tagged, err := m.tag.Tag(ctx, taggingText)
	if err != nil {
		m.log.Warnw("tagging failed, proceeding untagged", "err", err)
		return
	}

	if len(tagged) == len(tokens) {
		for i := range tokens {
			tokens[i].Tag = tagged[i].Tag
		}
		return
	}

	// Slang expansion changed the token count; fall back to a lookup table.
	byText := make(map[string]string, len(tagged))
	for _, tt := range tagged {
		lower := strings.ToLower(tt.Text)
		if _, seen := byText[lower]; !seen {
			byText[lower] = tt.Tag
		}
	}
	for i := range tokens {
		if tag, ok := byText[strings.ToLower(tokens[i].Text)]; ok {
			tokens[i].Tag = tag
		} else if tag, ok := byText[strings.ToLower(tagger.Clean(tokens[i].Text))]; ok {
			tokens[i].Tag = tag
		}
	}
}

// translate sends the masked text to the backend, through the scheduler when
// one is configured. Engine failures fail open to the masked input; scheduler
// overload and context cancellation propagate as errors.
func (m *Mixer) translate(ctx context.Context, masked, targetLang string) (string, error) {
	if m.sched != nil {
		return m.sched.Submit(ctx, masked, targetLang)
	}
	translated, err := m.engine.Translate(ctx, masked, targetLang)
	if err != nil {
		m.log.Warnw("translation failed, falling back to masked text",
			"engine", m.engine.Name(), "lang", targetLang, "err", err)
		return masked, nil
	}
	return translated, nil
}

// finish runs the recombination half: split, restore, romanize, join.
func (m *Mixer) finish(ctx context.Context, translated, targetLang string, style internal.PlaceholderStyle, chunks map[int]string) string {
	parts := restorer.Restore(ctx, translated, style, chunks, func(ctx context.Context, seg string) string {
		return m.rom.Romanize(ctx, seg, targetLang)
	})
	return romanizer.JoinSegments(parts)
}
