package sketch

import (
	"fmt"
	"image/color"
	"strings"
	"unicode"
)

// Key names a key on the host keyboard, e.g. "numpad1" or "escape".
type Key string

// KeyNumpad1 is the default stop key.
const KeyNumpad1 Key = "numpad1"

// Label returns the key as shown to users: "numpad1" reads "numpad 1".
func (k Key) Label() string {
	s := string(k)
	for i, r := range s {
		if unicode.IsDigit(r) && i > 0 && !unicode.IsDigit(rune(s[i-1])) {
			return s[:i] + " " + s[i:]
		}
	}
	return s
}

// Instructions is the panel that tells the user how to control the sketch.
type Instructions interface {
	SetText(text string)
}

// InstructionsFunc adapts a function to [Instructions].
type InstructionsFunc func(text string)

// SetText calls f(text).
func (f InstructionsFunc) SetText(text string) { f(text) }

// Debug overlay lines written every frame.
const (
	LineFPS      = 1
	LineFrames   = 2
	LineProgress = 3
)

// StoppedText replaces the instructions once the stop key is pressed.
const StoppedText = "sketch stopped"

// Options configures a [Sketch].
type Options struct {
	Background color.Color
	Grid       Grid
	Debug      bool    // draw the debug overlay
	DebugLines int     // overlay line count
	DebugSize  float64 // overlay font size
	MaxFrames  int     // stop after this many frames; 0 disables the ceiling
	StopKey    Key
}

// DefaultOptions matches the 1200×600 sketch.
func DefaultOptions() Options {
	return Options{
		Background: color.NRGBA{R: 40, G: 42, B: 61, A: 255},
		Grid:       DefaultGrid(),
		Debug:      true,
		DebugLines: 5,
		DebugSize:  14,
		MaxFrames:  3000,
		StopKey:    KeyNumpad1,
	}
}

// Sketch is the frame-driven renderer. It is not safe for concurrent use;
// every method must be called from the host's render goroutine.
type Sketch struct {
	opts         Options
	debug        *DebugCorner
	instructions Instructions

	state    *State
	incoming <-chan *State

	frameCount int
	looping    bool
	stopReason string
}

// New creates a looping sketch with no state yet.
// The instructions panel is initialised with the stop key hint.
func New(opts Options, ins Instructions) *Sketch {
	if ins == nil {
		ins = InstructionsFunc(func(string) {})
	}
	d := NewDebugCorner(opts.DebugLines)
	if opts.DebugSize > 0 {
		d.FontSize = opts.DebugSize
	}
	s := &Sketch{
		opts:         opts,
		debug:        d,
		instructions: ins,
		looping:      true,
	}
	ins.SetText(s.Hint())
	return s
}

// Hint is the initial instructions text.
func (s *Sketch) Hint() string {
	return fmt.Sprintf("%s → freeze sketch", s.opts.StopKey.Label())
}

// SetState installs a loaded state.
func (s *Sketch) SetState(st *State) { s.state = st }

// Follow makes the sketch pick up the state sent on ch at the start of a
// later frame. Frames never block on ch.
func (s *Sketch) Follow(ch <-chan *State) { s.incoming = ch }

// State returns the installed state, or nil while loading.
func (s *Sketch) State() *State { return s.state }

// Debug returns the overlay.
func (s *Sketch) Debug() *DebugCorner { return s.debug }

// FrameCount returns the number of frames drawn.
func (s *Sketch) FrameCount() int { return s.frameCount }

// Looping reports whether frames are still being drawn.
func (s *Sketch) Looping() bool { return s.looping }

// StopReason describes why the loop stopped, or "" while looping.
func (s *Sketch) StopReason() string { return s.stopReason }

// Update applies pending state and icon deliveries without drawing.
// Hosts that keep ticking after the loop stops call it so fetches still land.
func (s *Sketch) Update() {
	if s.state == nil && s.incoming != nil {
		select {
		case st, ok := <-s.incoming:
			if ok && st != nil {
				s.state = st
			}
			if !ok || st != nil {
				s.incoming = nil
			}
		default:
		}
	}
	if s.state != nil && s.state.Queue != nil {
		s.state.Queue.Drain()
	}
}

// Frame draws one frame onto c and reports whether it drew anything.
// fps is the host's measured frame rate, shown in the overlay.
//
// The frame that crosses MaxFrames is still drawn; the loop stops after it.
func (s *Sketch) Frame(c Canvas, fps float64) bool {
	s.Update()
	if !s.looping {
		return false
	}

	s.frameCount++
	c.Clear(s.opts.Background)

	s.debug.SetText(fmt.Sprintf("frameCount: %d", s.frameCount), LineFrames)
	s.debug.SetText(fmt.Sprintf("fps: %.0f", fps), LineFPS)
	if s.debug.Size() > LineProgress {
		s.debug.SetText(s.progressText(), LineProgress)
	}

	if s.opts.MaxFrames > 0 && s.frameCount > s.opts.MaxFrames {
		s.stop(fmt.Sprintf("frame ceiling %d reached", s.opts.MaxFrames))
	}

	s.opts.Grid.Draw(c, s.state)

	if s.opts.Debug {
		s.debug.Show(c)
	}
	return true
}

func (s *Sketch) progressText() string {
	if s.state == nil || s.state.Queue == nil {
		return "images: loading dataset"
	}
	p := s.state.Queue.Progress()
	text := fmt.Sprintf("images: %d/%d", p.Loaded, p.Total)
	if p.Failed > 0 {
		text += fmt.Sprintf(" (%d failed)", p.Failed)
	}
	return text
}

// HandleKey reacts to a key press. The stop key halts the loop and swaps
// the instructions text; other keys are ignored. Key names compare
// case-insensitively.
func (s *Sketch) HandleKey(k Key) bool {
	if !strings.EqualFold(string(k), string(s.opts.StopKey)) || !s.looping {
		return false
	}
	s.stop("stop key " + string(k))
	s.instructions.SetText(StoppedText)
	return true
}

func (s *Sketch) stop(reason string) {
	s.looping = false
	s.stopReason = reason
}
