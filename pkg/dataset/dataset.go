// Package dataset defines the Runes Reforged data model and its JSON decoding.
//
// The upstream document is a JSON array of paths; each path holds ordered
// slots and each slot holds ordered runes:
//
//	[{"key": "Domination", "icon": "perk-images/Styles/7200_Domination.png",
//	  "slots": [{"runes": [{"key": "Electrocute", "icon": "..."}]}]}]
//
// [Parse] preserves source order at every level. Unknown fields are ignored.
package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/runegrid/pkg/errors"
)

// Rune is a single rune within a slot.
type Rune struct {
	ID   int    `json:"id,omitempty"`
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
	Icon string `json:"icon"`
}

// RuneSlot is one row of runes.
type RuneSlot struct {
	Runes []Rune `json:"runes"`
}

// RunePath is a top-level rune path (Precision, Domination, ...).
type RunePath struct {
	ID    int        `json:"id,omitempty"`
	Key   string     `json:"key"`
	Name  string     `json:"name,omitempty"`
	Icon  string     `json:"icon"`
	Slots []RuneSlot `json:"slots"`
}

// RuneCount returns the number of runes across all slots.
func (p RunePath) RuneCount() int {
	n := 0
	for _, s := range p.Slots {
		n += len(s.Runes)
	}
	return n
}

// Parse decodes a runesReforged document.
//
// Malformed JSON, a non-array document, and paths without a key are rejected
// with [errors.ErrCodeInvalidDataset]. Duplicate path keys are rejected too,
// since paths are addressed by key.
func Parse(data []byte) ([]RunePath, error) {
	var paths []RunePath
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode runes dataset")
	}
	if paths == nil {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "runes dataset is null")
	}

	seen := make(map[string]bool, len(paths))
	for i, p := range paths {
		if p.Key == "" {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "path %d has no key", i)
		}
		if seen[p.Key] {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "duplicate path key %q", p.Key)
		}
		seen[p.Key] = true
	}
	return paths, nil
}

// Filter returns the paths whose key is in keys, in dataset order.
// Keys match case-insensitively. An empty keys list returns paths unchanged.
// Unknown keys are reported as an error listing the available keys.
func Filter(paths []RunePath, keys []string) ([]RunePath, error) {
	if len(keys) == 0 {
		return paths, nil
	}

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[strings.ToLower(k)] = true
	}

	var out []RunePath
	for _, p := range paths {
		k := strings.ToLower(p.Key)
		if want[k] {
			out = append(out, p)
			delete(want, k)
		}
	}

	if len(want) > 0 {
		var missing []string
		for _, k := range keys {
			if want[strings.ToLower(k)] {
				missing = append(missing, k)
			}
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown path %s (available: %s)",
			strings.Join(missing, ", "), strings.Join(Keys(paths), ", "))
	}
	return out, nil
}

// Keys returns the path keys in dataset order.
func Keys(paths []RunePath) []string {
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = p.Key
	}
	return keys
}

// ImageCount returns how many icons a load of paths will fetch:
// one per rune plus one per path.
func ImageCount(paths []RunePath) int {
	n := len(paths)
	for _, p := range paths {
		n += p.RuneCount()
	}
	return n
}

// String implements fmt.Stringer for log output.
func (p RunePath) String() string {
	return fmt.Sprintf("%s (%d slots, %d runes)", p.Key, len(p.Slots), p.RuneCount())
}
