package sketch

import "github.com/matzehuels/runegrid/pkg/asset"

// PathGroup is the loaded form of one rune path: its icon and one row of
// rune icons per slot.
type PathGroup struct {
	Key  string
	Icon *asset.Image
	Rows [][]*asset.Image
}

// Images returns the number of handles in the group, path icon included.
func (g PathGroup) Images() int {
	n := 1
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// Resolved reports whether every handle in the group has left the pending
// state.
func (g PathGroup) Resolved() bool {
	if g.Icon != nil && g.Icon.State() == asset.Pending {
		return false
	}
	for _, row := range g.Rows {
		for _, img := range row {
			if img.State() == asset.Pending {
				return false
			}
		}
	}
	return true
}

// State is the loaded image graph shared by the loader and the renderer.
//
// The set of paths, rows and handles is fixed at construction. Afterwards
// only the handles themselves change: pixels arrive through Queue, and the
// renderer resizes them in place.
type State struct {
	paths []PathGroup
	index map[string]int

	// Queue delivers fetch results for every handle in the state.
	Queue *asset.Queue
}

// NewState builds a state from paths in display order.
// Later duplicates of a key are dropped.
func NewState(queue *asset.Queue, paths []PathGroup) *State {
	if queue == nil {
		queue = asset.NewQueue()
	}
	st := &State{
		paths: make([]PathGroup, 0, len(paths)),
		index: make(map[string]int, len(paths)),
		Queue: queue,
	}
	for _, p := range paths {
		if _, ok := st.index[p.Key]; ok {
			continue
		}
		st.index[p.Key] = len(st.paths)
		st.paths = append(st.paths, p)
	}
	return st
}

// Paths returns the groups in display order.
func (s *State) Paths() []PathGroup { return s.paths }

// Path looks up a group by key.
func (s *State) Path(key string) (PathGroup, bool) {
	i, ok := s.index[key]
	if !ok {
		return PathGroup{}, false
	}
	return s.paths[i], true
}

// Rows returns the row-major rune icons for a path key.
func (s *State) Rows(key string) [][]*asset.Image {
	g, _ := s.Path(key)
	return g.Rows
}

// Icon returns the path icon for a path key.
func (s *State) Icon(key string) *asset.Image {
	g, _ := s.Path(key)
	return g.Icon
}

// Keys returns the path keys in display order.
func (s *State) Keys() []string {
	keys := make([]string, len(s.paths))
	for i, p := range s.paths {
		keys[i] = p.Key
	}
	return keys
}

// Images returns the total number of handles.
func (s *State) Images() int {
	n := 0
	for _, p := range s.paths {
		n += p.Images()
	}
	return n
}
