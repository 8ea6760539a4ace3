package asset

import (
	"context"
	"image"
	"sync"
)

// Progress counts resolved handles.
type Progress struct {
	Total  int // handles expected
	Loaded int // handles now ready
	Failed int // handles now failed
}

// Done reports whether every expected handle has resolved.
func (p Progress) Done() bool { return p.Loaded+p.Failed >= p.Total }

type completion struct {
	img    *Image
	pixels image.Image
	err    error
}

// Queue carries fetch results from background goroutines to the render
// thread.
//
// [Queue.Post] may be called from any goroutine. [Queue.Drain] and
// [Queue.Wait] apply results to the handles and must be called from the
// goroutine that owns the handles.
type Queue struct {
	mu       sync.Mutex
	posted   []completion
	progress Progress
	signal   chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{signal: make(chan struct{}, 1)}
}

// Expect registers n more handles that will be posted.
func (q *Queue) Expect(n int) {
	q.mu.Lock()
	q.progress.Total += n
	q.mu.Unlock()
}

// Post records the outcome for img. It never blocks.
func (q *Queue) Post(img *Image, px image.Image, err error) {
	q.mu.Lock()
	q.posted = append(q.posted, completion{img: img, pixels: px, err: err})
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Drain applies every posted result and returns how many were applied.
// It never blocks on outstanding fetches.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.posted
	q.posted = nil
	q.mu.Unlock()

	loaded, failed := 0, 0
	for _, c := range batch {
		if !c.img.resolve(c.pixels, c.err) {
			continue
		}
		switch c.img.State() {
		case Ready:
			loaded++
		case Failed:
			failed++
		}
	}

	if len(batch) > 0 {
		q.mu.Lock()
		q.progress.Loaded += loaded
		q.progress.Failed += failed
		q.mu.Unlock()
	}
	return len(batch)
}

// Progress returns the current counts.
func (q *Queue) Progress() Progress {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.progress
}

// Wait drains until every expected handle has resolved or ctx is done.
func (q *Queue) Wait(ctx context.Context) error {
	for {
		q.Drain()
		if q.Progress().Done() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
		}
	}
}
