// Package scheduler amortizes translation backend calls across concurrent
// mixing requests. Producers submit single texts and block on their own
// result channel; one worker goroutine drains the queue in time-boxed windows
// and issues one TranslateBatch call per target language in the window.
//
// The queue is bounded: when it is full Submit fails fast with ErrOverloaded
// instead of accumulating latency. A batch failure resolves every request in
// that batch with its own original text (fail-open at batch granularity).
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/xglish/xglish/internal/logger"
	"github.com/xglish/xglish/internal/translator"
)

// ErrOverloaded is returned by Submit when the request queue is full.
var ErrOverloaded = errors.New("scheduler: request queue full")

// ErrStopped is returned by Submit after Stop.
var ErrStopped = errors.New("scheduler: stopped")

type Options struct {
	// MaxBatchSize caps how many requests one backend call may carry.
	MaxBatchSize int

	// DrainWindow bounds how long the worker waits for additional requests
	// after the first one arrives.
	DrainWindow time.Duration

	// QueueSize bounds the number of pending requests.
	QueueSize int

	// BatchTimeout bounds one backend call.
	BatchTimeout time.Duration
}

func (o *Options) withDefaults() {
	if o.MaxBatchSize <= 0 {
		o.MaxBatchSize = 32
	}
	if o.DrainWindow <= 0 {
		o.DrainWindow = 50 * time.Millisecond
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 256
	}
	if o.BatchTimeout <= 0 {
		o.BatchTimeout = 2 * time.Minute
	}
}

type request struct {
	id         string
	text       string
	targetLang string
	done       chan string
}

type Scheduler struct {
	svc      translator.Service
	opts     Options
	requests chan *request
	stop     chan struct{}
	stopped  chan struct{}
}

// New starts the scheduler's worker. Stop must be called to release it.
func New(svc translator.Service, opts Options) *Scheduler {
	opts.withDefaults()
	s := &Scheduler{
		svc:      svc,
		opts:     opts,
		requests: make(chan *request, opts.QueueSize),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Submit enqueues one text and blocks until its translation (or fail-open
// fallback) is ready, the context is canceled, or the scheduler stops.
// Cancellation abandons the wait only; an already-drained request is still
// translated and its result discarded.
func (s *Scheduler) Submit(ctx context.Context, text, targetLang string) (string, error) {
	req := &request{
		id:         uuid.NewString(),
		text:       text,
		targetLang: targetLang,
		done:       make(chan string, 1),
	}

	select {
	case s.requests <- req:
		logger.L().Debugw("request enqueued", "id", req.id, "lang", targetLang)
	case <-s.stop:
		return "", ErrStopped
	default:
		return "", ErrOverloaded
	}

	select {
	case res := <-req.done:
		return res, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.stopped:
		return "", ErrStopped
	}
}

// Stop terminates the worker. Requests not yet resolved fail with ErrStopped.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.stopped
}

func (s *Scheduler) run() {
	defer close(s.stopped)
	for {
		var first *request
		select {
		case first = <-s.requests:
		case <-s.stop:
			return
		}

		batch := []*request{first}
		timer := time.NewTimer(s.opts.DrainWindow)
	drain:
		for len(batch) < s.opts.MaxBatchSize {
			select {
			case r := <-s.requests:
				batch = append(batch, r)
			case <-timer.C:
				break drain
			case <-s.stop:
				break drain
			}
		}
		timer.Stop()

		s.flush(batch)
	}
}

// flush groups the drained batch by target language and issues one backend
// call per group, distributing results positionally.
func (s *Scheduler) flush(batch []*request) {
	groups := make(map[string][]*request)
	var order []string
	for _, r := range batch {
		if _, seen := groups[r.targetLang]; !seen {
			order = append(order, r.targetLang)
		}
		groups[r.targetLang] = append(groups[r.targetLang], r)
	}

	log := logger.L()
	for _, lang := range order {
		group := groups[lang]
		texts := make([]string, len(group))
		for i, r := range group {
			texts[i] = r.text
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.opts.BatchTimeout)
		results, err := s.svc.TranslateBatch(ctx, texts, lang)
		cancel()

		if err != nil || len(results) != len(group) {
			log.Warnw("batch translation failed, resolving with originals",
				"engine", s.svc.Name(), "lang", lang, "size", len(group), "err", err)
			for _, r := range group {
				r.done <- r.text
			}
			continue
		}

		log.Debugw("batch translated", "engine", s.svc.Name(), "lang", lang, "size", len(group))
		for i, r := range group {
			r.done <- results[i]
		}
	}
}
