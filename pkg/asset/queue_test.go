package asset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	a, b := NewImage("a.png"), NewImage("b.png")
	q.Expect(2)

	if n := q.Drain(); n != 0 {
		t.Fatalf("Drain() on empty queue = %d, want 0", n)
	}

	q.Post(a, solid(4, 4), nil)
	if a.Ready() {
		t.Fatal("Post() must not touch the handle before Drain()")
	}

	q.Post(b, nil, errors.New("404"))
	if n := q.Drain(); n != 2 {
		t.Fatalf("Drain() = %d, want 2", n)
	}
	if !a.Ready() || b.State() != Failed {
		t.Errorf("states = %v/%v, want ready/failed", a.State(), b.State())
	}

	p := q.Progress()
	if p.Total != 2 || p.Loaded != 1 || p.Failed != 1 || !p.Done() {
		t.Errorf("Progress() = %+v, want 2 total, 1 loaded, 1 failed", p)
	}
}

func TestQueueDuplicatePostCountsOnce(t *testing.T) {
	q := NewQueue()
	img := NewImage("a.png")
	q.Expect(1)

	q.Post(img, solid(2, 2), nil)
	q.Post(img, solid(2, 2), nil)
	q.Drain()

	if p := q.Progress(); p.Loaded != 1 {
		t.Errorf("Loaded = %d, want 1", p.Loaded)
	}
}

func TestQueueWait(t *testing.T) {
	q := NewQueue()
	imgs := make([]*Image, 10)
	for i := range imgs {
		imgs[i] = NewImage("x.png")
	}
	q.Expect(len(imgs))

	var wg sync.WaitGroup
	for _, img := range imgs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(img, solid(2, 2), nil)
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := q.Wait(ctx); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}
	wg.Wait()

	for i, img := range imgs {
		if !img.Ready() {
			t.Errorf("image %d state = %v, want ready", i, img.State())
		}
	}
}

func TestQueueWaitCanceled(t *testing.T) {
	q := NewQueue()
	q.Expect(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := q.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestQueueWaitNothingExpected(t *testing.T) {
	if err := NewQueue().Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v, want nil", err)
	}
}
