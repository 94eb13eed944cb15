package leit

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the pause after the last keystroke before a live
// search is dispatched.
const DefaultDebounce = 300 * time.Millisecond

// LiveSearcher dispatches debounced searches as a visitor types. Each
// Update supersedes the pending one; only the response to the latest
// query is ever delivered, so stale responses cannot overwrite fresh
// results.
type LiveSearcher struct {
	client    *Client
	delay     time.Duration
	configure func(*SearchBuilder)

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	seq    uint64
	closed bool

	results chan *SearchResponse
}

// LiveOption configures a LiveSearcher.
type LiveOption func(*LiveSearcher)

// WithDebounce overrides the debounce delay.
func WithDebounce(d time.Duration) LiveOption {
	return func(ls *LiveSearcher) { ls.delay = d }
}

// WithBuilder applies fixed facets or language to every dispatched search.
func WithBuilder(configure func(*SearchBuilder)) LiveOption {
	return func(ls *LiveSearcher) { ls.configure = configure }
}

// NewLiveSearcher creates a LiveSearcher over c.
func NewLiveSearcher(c *Client, opts ...LiveOption) *LiveSearcher {
	ls := &LiveSearcher{
		client:  c,
		delay:   DefaultDebounce,
		results: make(chan *SearchResponse, 1),
	}
	for _, o := range opts {
		o(ls)
	}
	return ls
}

// Results delivers responses for dispatched searches. The channel holds
// only the latest response; slow consumers see fresh results, not a
// backlog.
func (ls *LiveSearcher) Results() <-chan *SearchResponse {
	return ls.results
}

// Update registers a keystroke. The search runs after the debounce delay
// unless another Update arrives first; any in-flight request for an older
// query is cancelled.
func (ls *LiveSearcher) Update(query string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.closed {
		return
	}

	ls.seq++
	seq := ls.seq

	if ls.timer != nil {
		ls.timer.Stop()
	}
	if ls.cancel != nil {
		ls.cancel()
		ls.cancel = nil
	}

	ls.timer = time.AfterFunc(ls.delay, func() {
		ls.dispatch(seq, query)
	})
}

// Close stops pending and in-flight work. No responses are delivered
// after Close returns.
func (ls *LiveSearcher) Close() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.closed {
		return
	}
	ls.closed = true
	ls.seq++
	if ls.timer != nil {
		ls.timer.Stop()
	}
	if ls.cancel != nil {
		ls.cancel()
		ls.cancel = nil
	}
}

func (ls *LiveSearcher) dispatch(seq uint64, query string) {
	ls.mu.Lock()
	if ls.closed || seq != ls.seq {
		ls.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel
	ls.mu.Unlock()

	b := ls.client.Search(query)
	if ls.configure != nil {
		ls.configure(b)
	}
	resp, err := b.Do(ctx)
	if err != nil {
		return
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.closed || seq != ls.seq {
		return
	}
	// Latest wins: drop a stale undelivered response before queuing.
	select {
	case <-ls.results:
	default:
	}
	ls.results <- resp
}
