// Package loader turns the remote rune dataset into a [sketch.State].
//
// Loading has two phases. The dataset document is fetched and parsed
// synchronously; any failure there is returned to the caller. Icons are then
// fetched in the background: [Loader.Load] returns as soon as every handle
// exists (all pending), and each fetch posts its result to the state's
// [asset.Queue] for the render thread to apply.
//
// Icon failures never fail the load. They are logged at warn level and the
// handle is marked failed, which the grid skips.
package loader

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/runegrid/pkg/asset"
	"github.com/matzehuels/runegrid/pkg/dataset"
	"github.com/matzehuels/runegrid/pkg/observability"
	"github.com/matzehuels/runegrid/pkg/sketch"
)

// DefaultConcurrency bounds simultaneous icon fetches.
const DefaultConcurrency = 16

// Fetcher retrieves the dataset and icon bytes.
//
// [ddragon.Client] is the standard implementation. Fetchers must be safe for
// concurrent use; FetchIcon is called from several goroutines.
//
// [ddragon.Client]: github.com/matzehuels/runegrid/pkg/integrations/ddragon.Client
type Fetcher interface {
	DataURL() string
	FetchRunes(ctx context.Context) ([]dataset.RunePath, error)
	FetchIcon(ctx context.Context, icon string) ([]byte, error)
}

// Options configures a load.
type Options struct {
	// Paths limits loading to these path keys (case-insensitive).
	// Empty loads every path.
	Paths []string

	// Concurrency bounds simultaneous icon fetches.
	// Zero uses DefaultConcurrency.
	Concurrency int
}

// Result is a started load.
type Result struct {
	// State holds one pending handle per icon. Handles resolve as the
	// render thread drains State.Queue.
	State *sketch.State

	// Paths is the (filtered) dataset the state was built from.
	Paths []dataset.RunePath

	// Done is closed once every icon fetch has finished and posted.
	Done <-chan struct{}
}

// Loader fetches datasets and icons.
type Loader struct {
	fetcher Fetcher
	logger  *log.Logger
}

// New creates a loader. A nil logger discards output.
func New(f Fetcher, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fetcher: f, logger: logger}
}

// FetchDataset fetches, parses, and filters the dataset.
func (l *Loader) FetchDataset(ctx context.Context, only []string) ([]dataset.RunePath, error) {
	hooks := observability.Pipeline()
	url := l.fetcher.DataURL()
	hooks.OnLoadStart(ctx, url)
	start := time.Now()

	paths, err := l.fetcher.FetchRunes(ctx)
	if err == nil {
		paths, err = dataset.Filter(paths, only)
	}
	if err != nil {
		hooks.OnLoadComplete(ctx, url, 0, 0, time.Since(start), err)
		return nil, err
	}

	hooks.OnLoadComplete(ctx, url, len(paths), dataset.ImageCount(paths), time.Since(start), nil)
	l.logger.Info("loaded dataset", "paths", len(paths), "images", dataset.ImageCount(paths), "duration", time.Since(start).Round(time.Millisecond))
	return paths, nil
}

// Load fetches the dataset, builds the state, and starts the icon fetches.
// It returns once the state exists; icons keep arriving until ctx is done.
func (l *Loader) Load(ctx context.Context, opts Options) (*Result, error) {
	paths, err := l.FetchDataset(ctx, opts.Paths)
	if err != nil {
		return nil, err
	}

	st, jobs := Build(paths)
	st.Queue.Expect(len(jobs))

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.fetchAll(ctx, st.Queue, jobs, opts.Concurrency)
	}()

	return &Result{State: st, Paths: paths, Done: done}, nil
}

// Job is one icon fetch.
type Job struct {
	Image *asset.Image
	Icon  string
}

// Build creates pending handles for every icon in paths, in dataset order.
// The path icon of each path comes first, followed by its runes row by row.
func Build(paths []dataset.RunePath) (*sketch.State, []Job) {
	groups := make([]sketch.PathGroup, 0, len(paths))
	jobs := make([]Job, 0, dataset.ImageCount(paths))

	add := func(icon string) *asset.Image {
		img := asset.NewImage(icon)
		jobs = append(jobs, Job{Image: img, Icon: icon})
		return img
	}

	for _, p := range paths {
		g := sketch.PathGroup{Key: p.Key, Icon: add(p.Icon)}
		for _, slot := range p.Slots {
			row := make([]*asset.Image, 0, len(slot.Runes))
			for _, r := range slot.Runes {
				row = append(row, add(r.Icon))
			}
			g.Rows = append(g.Rows, row)
		}
		groups = append(groups, g)
	}
	return sketch.NewState(asset.NewQueue(), groups), jobs
}

func (l *Loader) fetchAll(ctx context.Context, q *asset.Queue, jobs []Job, limit int) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for _, j := range jobs {
		g.Go(func() error {
			px, err := l.fetchIcon(ctx, j.Icon)
			q.Post(j.Image, px, err)
			return nil
		})
	}
	g.Wait()
}

func (l *Loader) fetchIcon(ctx context.Context, icon string) (image.Image, error) {
	hooks := observability.Asset()
	start := time.Now()

	var px image.Image
	body, err := l.fetcher.FetchIcon(ctx, icon)
	if err == nil {
		px, err = asset.Decode(icon, body)
	}
	if err != nil {
		hooks.OnImageFailed(ctx, icon, err)
		if ctx.Err() == nil {
			l.logger.Warn("icon unavailable", "icon", icon, "error", err)
		}
		return nil, err
	}

	hooks.OnImageLoaded(ctx, icon, len(body), time.Since(start))
	l.logger.Debug("icon loaded", "icon", icon, "bytes", len(body))
	return px, nil
}
