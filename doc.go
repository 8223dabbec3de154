// Package softvg is a software-rasterized 2D vector graphics context.
//
// A Context accepts path, fill, stroke, and glyph drawing commands and
// rasterizes them directly into a caller-supplied pixel buffer, without a
// GPU or graphics driver. The destination's channel order is described by
// per-channel bit shifts, so the same compositor serves RGBA8888, BGRA8888,
// ARGB8888 or any other packing:
//
//	buf := make([]byte, 256*256*4)
//	vg, _ := softvg.New()
//	defer vg.Close()
//	vg.BindFramebufferRGBA(buf, 256, 256)
//
//	vg.BeginPath()
//	vg.RoundedRect(16, 16, 224, 224, 24)
//	vg.SetFillPaint(softvg.LinearGradient(16, 16, 240, 240,
//	    softvg.Stop(0, softvg.RGB(1, 0, 0)),
//	    softvg.Stop(1, softvg.RGB(0, 0, 1))))
//	vg.Fill()
//
// Drawing state — transform, paints, stroke style, scissor, global alpha,
// clip — lives on a stack managed with Save and Restore. Path coordinates
// are transformed by the current matrix at the time each command is issued.
//
// A Context is single-threaded: operations run to completion on the calling
// goroutine, and a context plus its bound buffer must not be used from
// multiple goroutines without external serialization. Independent contexts
// share no state and may run concurrently.
package softvg
