package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"github.com/matzehuels/runegrid/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// stderrIsTerminal reports whether the spinner has somewhere to draw.
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Spinner draws a one-line progress indicator on stderr until stopped or
// until its context ends. It draws nothing when stderr is not a terminal.
type Spinner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	halted  atomic.Bool
	quiet   bool

	mu      sync.Mutex
	w       io.Writer
	message string
	width   int // widest line drawn, for clearing
}

func newSpinner(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		quiet:   !stderrIsTerminal(),
		w:       os.Stderr,
		message: message,
	}
}

// Start begins drawing.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop stops drawing and clears the line. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.halted.Store(s.ctx.Err() == nil)
		s.cancel()
		<-s.stopped
	})
}

// Fail stops the spinner and prints message as an error.
func (s *Spinner) Fail(message string) {
	s.Stop()
	printError("%s", message)
}

// Canceled reports whether the parent context ended before Stop.
func (s *Spinner) Canceled() bool {
	return s.ctx.Err() != nil && !s.halted.Load()
}

func (s *Spinner) draw(frame string) {
	if s.quiet {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message)
	s.width = max(s.width, len(s.message)+2)
	fmt.Fprintf(s.w, "\r%s", line)
}

func (s *Spinner) clear() {
	if s.quiet {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
}

// =============================================================================
// Icon progress
// =============================================================================

// iconProgress counts icon fetches and shows the count on a spinner.
type iconProgress struct {
	observability.NoopAssetHooks
	spinner *Spinner
	label   string
	loaded  atomic.Int64
	failed  atomic.Int64
}

func (p *iconProgress) OnImageLoaded(context.Context, string, int, time.Duration) {
	p.loaded.Add(1)
	p.update()
}

func (p *iconProgress) OnImageFailed(context.Context, string, error) {
	p.failed.Add(1)
	p.update()
}

func (p *iconProgress) update() {
	msg := fmt.Sprintf("%s (%d icons", p.label, p.loaded.Load())
	if n := p.failed.Load(); n > 0 {
		msg += fmt.Sprintf(", %d failed", n)
	}
	p.spinner.SetMessage(msg + ")")
}

// trackIcons routes asset events to s until the returned func is called.
func trackIcons(s *Spinner, label string) (restore func()) {
	prev := observability.Asset()
	observability.SetAssetHooks(&iconProgress{spinner: s, label: label})
	return func() { observability.SetAssetHooks(prev) }
}
