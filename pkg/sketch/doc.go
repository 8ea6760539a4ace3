// Package sketch implements the rune grid: the per-frame layout of path
// labels, path icons and rune icons, plus the debug overlay drawn in the
// bottom-left corner.
//
// # Drawing
//
// Everything is painted through the [Canvas] interface. The live window
// (pkg/render/window), the headless PNG renderer (pkg/render/sink) and the
// [Recorder] used for layout export all implement it, so the layout code is
// identical across backends.
//
// # Frame Loop
//
// A [Sketch] is driven by its host: [Sketch.Frame] once per frame,
// [Sketch.HandleKey] on key presses. Frame applies finished icon fetches,
// updates the overlay counters, and paints the grid:
//
//	s := sketch.New(sketch.DefaultOptions(), instructions)
//	s.Follow(states) // receives the *State once the dataset is loaded
//
//	for s.Looping() {
//	    s.Frame(canvas, fps)
//	}
//
// # Grid Layout
//
// [Grid.Draw] walks paths in dataset order with a cursor starting at (0, 0).
// Each path draws its label and icon, then one row per slot where every icon
// is forced to a CellSize square and the cursor advances by CellSize. After
// each row x returns to 0 and y advances by CellSize; after each path y
// advances by Margin. Icons that are still loading, or failed, are skipped
// while the cursor advances as if they were drawn.
package sketch
