package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/runegrid/pkg/observability"
)

// drawingSpinner forces drawing into a buffer regardless of the terminal.
func drawingSpinner(ctx context.Context, message string) (*Spinner, *bytes.Buffer) {
	s := newSpinner(ctx, message)
	var buf bytes.Buffer
	s.quiet = false
	s.w = &buf
	return s, &buf
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	s, buf := drawingSpinner(context.Background(), "Fetching dataset...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := buf.String()
	if !strings.Contains(got, "Fetching dataset...") {
		t.Errorf("spinner output %q missing message", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Error("spinner should clear its line on stop")
	}
	if s.Canceled() {
		t.Error("Canceled() = true after Stop")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s, buf := drawingSpinner(context.Background(), "first")
	s.SetMessage("second")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "second") {
		t.Errorf("spinner output %q missing updated message", buf.String())
	}
}

func TestSpinnerCanceledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "Canceling...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if !s.Canceled() {
		t.Error("Canceled() = false after parent cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "Stopping...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Fail("failed")
}

func TestSpinnerQuietWithoutTerminal(t *testing.T) {
	prev := stderrIsTerminal
	stderrIsTerminal = func() bool { return false }
	defer func() { stderrIsTerminal = prev }()

	s := newSpinner(context.Background(), "Quiet...")
	if !s.quiet {
		t.Fatal("spinner should be quiet when stderr is not a terminal")
	}
	var buf bytes.Buffer
	s.w = &buf
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("quiet spinner wrote %q", buf.String())
	}
}

func TestTrackIcons(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	s := newSpinner(context.Background(), "Rendering png...")
	restore := trackIcons(s, "Rendering png...")

	ctx := context.Background()
	observability.Asset().OnImageLoaded(ctx, "a.png", 10, time.Millisecond)
	observability.Asset().OnImageLoaded(ctx, "b.png", 10, time.Millisecond)
	observability.Asset().OnImageFailed(ctx, "c.png", errors.New("404"))

	if want := "Rendering png... (2 icons, 1 failed)"; s.message != want {
		t.Errorf("message = %q, want %q", s.message, want)
	}

	restore()
	if _, ok := observability.Asset().(observability.NoopAssetHooks); !ok {
		t.Error("restore did not reinstate the previous hooks")
	}
}
