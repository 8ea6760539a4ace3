// Package asset provides image handles that are filled in asynchronously and
// resized in place.
//
// # Image Lifecycle
//
// An [Image] starts pending. A background fetch decodes the bytes and posts
// the result to a [Queue]; the render thread calls [Queue.Drain] at the top
// of each frame, which moves every posted handle to ready or failed. Handles
// are therefore only ever mutated on the render thread and need no locks.
//
//	q := asset.NewQueue()
//	img := asset.NewImage("perk-images/x.png")
//	q.Expect(1)
//
//	go func() {
//	    px, err := asset.Decode(img.Src, body)
//	    q.Post(img, px, err)
//	}()
//
//	// render thread, once per frame
//	q.Drain()
//	if img.Ready() {
//	    img.Resize(20, 20)
//	}
//
// # Resizing
//
// [Image.Resize] replaces the pixels with a resampled copy (via
// disintegration/imaging). A zero dimension is derived from the other one so
// the aspect ratio is kept. Resizing to the current size does nothing, which
// keeps per-frame resizes free once the size settles.
package asset
