/*
NAME
  oracle.go

DESCRIPTION
  oracle.go defines the Oracle interface shared by the four interchangeable
  sine-sample synthesizers used by the SAME AFSK modulator and attention-tone
  generator.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sine implements the pluggable sine-sample synthesizers behind the
// SAME header generator: a direct math-library call, a lookup table driven
// by a phase accumulator, a low-order Taylor polynomial, and a
// caller-supplied callback. All four are interchangeable behind the Oracle
// interface so a GenerationContext can select one at construction time.
package sine

// FullScale is the amplitude a full-scale sinusoid is scaled to.
const FullScale = 32767

// Variant identifies which sine-sample synthesizer an Oracle uses.
type Variant int

const (
	// Libc evaluates math.Sin directly. The simplest variant, and the only
	// one in this package that uses double-precision arithmetic internally
	// (it is, by definition, a direct call to the platform math library).
	Libc Variant = iota
	// LUT indexes a precomputed table via a phase accumulator, linearly
	// interpolating between adjacent entries.
	LUT
	// Taylor approximates sin(x) with a 3-term odd-power polynomial after
	// reducing the argument into [0, pi).
	Taylor
	// App delegates every sample request to a caller-supplied function.
	App
)

// String returns the canonical name of the variant, as reported by
// gen_engine_desc_get in the original API surface.
func (v Variant) String() string {
	switch v {
	case Libc:
		return "LIBC"
	case LUT:
		return "LUT"
	case Taylor:
		return "TAYLOR"
	case App:
		return "APP"
	default:
		return "UNKNOWN"
	}
}

// Oracle produces one signed 16-bit sample of sin(2*pi*f*t) scaled to
// FullScale, for a tone of frequency f Hz at time t seconds. Implementations
// that carry internal phase state (LUT) are single-owner and must not be
// shared between concurrently-driven voices (e.g. the two attention tones
// each need their own Oracle instance).
type Oracle interface {
	Sample(t, f float32) int16
}

// Func is the signature of a caller-supplied sine-sample callback, used by
// the App variant. userdata is opaque to this package.
type Func func(userdata interface{}, t, f float32) int16

// New constructs an Oracle for the given variant. size and sampleRate are
// only consulted when v is LUT (size <= 0 selects DefaultLUTSize); fn and
// userdata are only consulted when v is App.
func New(v Variant, size int, sampleRate float32, fn Func, userdata interface{}) Oracle {
	switch v {
	case Libc:
		return NewLibc()
	case LUT:
		if size <= 0 {
			size = DefaultLUTSize
		}
		return NewLUT(size, sampleRate)
	case Taylor:
		return NewTaylor()
	case App:
		return NewApp(fn, userdata)
	default:
		panic("sine: unknown variant")
	}
}
