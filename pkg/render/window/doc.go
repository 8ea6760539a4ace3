// Package window runs the rune grid in a desktop window with Ebitengine.
//
// [Game] implements [ebiten.Game]: Update forwards key presses to the
// sketch and applies finished icon fetches; Draw runs one sketch frame on
// the screen image. The screen is not cleared between frames, so once the
// sketch stops the last frame stays visible.
//
// The window title doubles as the instructions panel:
//
//	g := window.New(window.Options{Title: "runegrid", Width: 1200, Height: 600})
//	s := sketch.New(sketch.DefaultOptions(), g)
//	err := g.Run(ctx, s)
//
// Closing the window, pressing Escape, or cancelling ctx ends Run.
//
// [ebiten.Game]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Game
package window
