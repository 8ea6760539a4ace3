package window

import (
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matzehuels/runegrid/pkg/sketch"
)

var keyNames = map[ebiten.Key]sketch.Key{
	ebiten.KeyEscape:      "escape",
	ebiten.KeySpace:       "space",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyTab:         "tab",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyNumpad0:     "numpad0",
	ebiten.KeyNumpad1:     "numpad1",
	ebiten.KeyNumpad2:     "numpad2",
	ebiten.KeyNumpad3:     "numpad3",
	ebiten.KeyNumpad4:     "numpad4",
	ebiten.KeyNumpad5:     "numpad5",
	ebiten.KeyNumpad6:     "numpad6",
	ebiten.KeyNumpad7:     "numpad7",
	ebiten.KeyNumpad8:     "numpad8",
	ebiten.KeyNumpad9:     "numpad9",
	ebiten.KeyNumpadEnter: "numpadenter",
	ebiten.KeyDigit0:      "0",
	ebiten.KeyDigit1:      "1",
	ebiten.KeyDigit2:      "2",
	ebiten.KeyDigit3:      "3",
	ebiten.KeyDigit4:      "4",
	ebiten.KeyDigit5:      "5",
	ebiten.KeyDigit6:      "6",
	ebiten.KeyDigit7:      "7",
	ebiten.KeyDigit8:      "8",
	ebiten.KeyDigit9:      "9",
	ebiten.KeyF1:          "f1",
	ebiten.KeyF2:          "f2",
	ebiten.KeyF3:          "f3",
	ebiten.KeyF4:          "f4",
	ebiten.KeyF5:          "f5",
	ebiten.KeyF6:          "f6",
	ebiten.KeyF7:          "f7",
	ebiten.KeyF8:          "f8",
	ebiten.KeyF9:          "f9",
	ebiten.KeyF10:         "f10",
	ebiten.KeyF11:         "f11",
	ebiten.KeyF12:         "f12",
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keyNames[k] = sketch.Key(string(rune('a' + int(k-ebiten.KeyA))))
	}
}

// KeyName returns the sketch name of an Ebitengine key, or "" if the key
// has no name.
func KeyName(k ebiten.Key) sketch.Key {
	return keyNames[k]
}

// KnownKey reports whether name is a key the window can deliver.
func KnownKey(name sketch.Key) bool {
	want := strings.ToLower(string(name))
	for _, n := range keyNames {
		if string(n) == want {
			return true
		}
	}
	return false
}

// KeyNames lists every key name the window can deliver, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for _, n := range keyNames {
		names = append(names, string(n))
	}
	slices.Sort(names)
	return slices.Compact(names)
}
