package sink

import (
	"encoding/json"

	"github.com/matzehuels/runegrid/pkg/sketch"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	runID string
	frame int
	paths []string
}

// WithRunID records the run identifier.
func WithRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

// WithFrame records which frame the ops belong to.
func WithFrame(n int) JSONOption { return func(r *jsonRenderer) { r.frame = n } }

// WithPaths records the path keys in display order.
func WithPaths(keys []string) JSONOption { return func(r *jsonRenderer) { r.paths = keys } }

type jsonOutput struct {
	RunID  string      `json:"run_id,omitempty"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Frame  int         `json:"frame,omitempty"`
	Paths  []string    `json:"paths,omitempty"`
	Ops    []sketch.Op `json:"ops"`
}

// RenderJSON exports the frame captured by rec as indented JSON.
func RenderJSON(rec *sketch.Recorder, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	ops := rec.Ops
	if ops == nil {
		ops = []sketch.Op{}
	}
	return json.MarshalIndent(jsonOutput{
		RunID:  r.runID,
		Width:  rec.W,
		Height: rec.H,
		Frame:  r.frame,
		Paths:  r.paths,
		Ops:    ops,
	}, "", "  ")
}
