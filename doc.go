// Package motion provides a per-frame motion persistence kernel for
// RGBA video streams in pure Go.
//
// Each processed frame is differenced against a cached previous frame,
// weighted by a center-biased radial sensitivity mask, gated by an
// adaptive threshold that rises toward the frame edges, and folded into
// a decaying persistence buffer. The buffer can be spatially warped
// each frame — panned, expanded, spiraled or waved — before new motion
// is blended in, producing a trailing-glow motion visualization. The
// output is grayscale written into an RGBA frame.
//
// # Features
//
//   - Four warp variants (direction, radial, spiral, wave) with
//     distance-tiered quality approximations for distant pixels
//   - Precomputed per-pixel geometry tables built once per detector
//   - Built-in frame caching so callers supply one frame per call
//   - Fallback-to-default option resolution that never fails
//   - Optional SIMD acceleration via github.com/tphakala/simd with
//     numerically identical results
//   - Per-frame trail statistics via gonum
//   - Pure Go, no CGO dependencies
//
// # Quick Start
//
//	det, err := motion.New(&motion.Config{Width: 640, Height: 480})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	output := motion.AllocFrame(det.Width(), det.Height())
//	opts := motion.DefaultOptions()
//	opts.Move = motion.SpiralMove(2.0, 0.05)
//
//	for frame := range frames {
//	    if err := det.Process(frame, output, opts); err != nil {
//	        log.Fatal(err)
//	    }
//	    display(output)
//	}
//
// The first Process call primes the internal frame cache and emits an
// all-black frame; motion appears from the second call on.
//
// # Options
//
// Options are supplied fresh on every call and carry no persisted
// state. [DefaultOptions] returns the documented defaults (decay 0.95,
// threshold 30, sensitivity 1, no warp). Hosts holding a loosely typed
// configuration object can decode it into [RawOptions]; Resolve
// substitutes the default for every absent or invalid field and never
// fails. An unknown move tag resolves to the identity warp and emits a
// single diagnostic notice through [SetNoticeFunc].
//
// # Warps
//
// A warp remaps the persistence buffer before blending, simulating
// virtual camera or scene motion. Pixels revealed by a warp fade in
// from black rather than carrying stale trail data. Warp math is
// cheapened for pixels far from the center: the effective speed,
// rotation or amplitude is attenuated in two outer quality tiers, a
// deliberate fidelity/performance trade for the least perceptually
// important pixels.
//
// # Thread Safety
//
// A Detector carries no internal locking. Process fully mutates the
// shared buffers, so calls on one instance must be serialized by the
// caller. Independent instances are fully isolated.
package motion
