/*
NAME
  context.go

DESCRIPTION
  context.go defines Config and Context (the GenerationContext of
  spec.md SS3), and NewContext, which populates a Context from a
  HeaderDescriptor once.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mcroddev/libsame/codec/same/sine"
	"github.com/mcroddev/libsame/logging"
)

// Config selects the sine oracle variant and other construction-time
// options for a Context. Unlike HeaderDescriptor, a Config has no fixed
// per-call data; it is consulted once, in NewContext.
type Config struct {
	// SampleRate is the output sample rate in Hz. Must be > 0; 44100 is
	// the tested default.
	SampleRate int

	// Variant selects the sine oracle implementation. The zero value is
	// sine.Libc.
	Variant sine.Variant

	// LUTSize is the lookup table size, only consulted when Variant is
	// sine.LUT. Zero selects sine.DefaultLUTSize.
	LUTSize int

	// AppFunc and AppUserdata are only consulted when Variant is sine.App.
	AppFunc     sine.Func
	AppUserdata interface{}

	// Logger receives construction-time diagnostics only; it is never
	// consulted on the Generate hot path. A nil Logger is treated as
	// logging.NoOp().
	Logger logging.Logger
}

// Context is the single-owner, heap-free generation state described as
// GenerationContext in spec.md SS3. It is produced once by NewContext and
// driven to completion by repeated calls to Generate. A Context must not be
// used from more than one goroutine, and must not be reused across
// goroutines without external synchronization even sequentially.
type Context struct {
	sampleRate    float32
	samplesPerBit int

	header    [HeaderBytesMax]byte
	headerLen int
	eom       [EOMBytes]byte

	remaining [int(phaseDone)]int
	state     phase

	afsk afskState
	attn attnState

	variant sine.Variant

	out [ChunkSamples]int16

	log logging.Logger
}

// NewContext validates desc and cfg, then builds a Context ready to
// generate the first chunk. It returns an error for any construction-time
// usage mistake (spec.md SS7); once it succeeds, Generate cannot fail.
func NewContext(desc *HeaderDescriptor, cfg Config) (*Context, error) {
	if desc == nil {
		return nil, errors.New("same: nil HeaderDescriptor")
	}
	if err := desc.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid header descriptor")
	}
	if cfg.SampleRate <= 0 {
		return nil, errors.Errorf("sample rate must be positive, got %d", cfg.SampleRate)
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NoOp()
	}

	c := &Context{
		sampleRate: float32(cfg.SampleRate),
		variant:    cfg.Variant,
		log:        log,
	}

	c.samplesPerBit = int(math.Round(float64(cfg.SampleRate) / AFSKBitRate))

	c.headerLen = serializeHeader(&c.header, desc)
	buildEOM(&c.eom)

	c.afsk.sampleRate = c.sampleRate
	c.afsk.samplesPerBit = c.samplesPerBit
	c.afsk.oracle = sine.New(cfg.Variant, cfg.LUTSize, c.sampleRate, cfg.AppFunc, cfg.AppUserdata)

	c.attn.sampleRate = c.sampleRate
	c.attn.oracleA = sine.New(cfg.Variant, cfg.LUTSize, c.sampleRate, cfg.AppFunc, cfg.AppUserdata)
	c.attn.oracleB = sine.New(cfg.Variant, cfg.LUTSize, c.sampleRate, cfg.AppFunc, cfg.AppUserdata)

	c.computeBudgets(desc.AttnSigDuration)
	c.state = phaseAFSKHeader1
	c.enterPhase(c.state)

	log.Info("same context initialized",
		"variant", cfg.Variant.String(),
		"sampleRate", cfg.SampleRate,
		"samplesPerBit", c.samplesPerBit,
		"headerLen", c.headerLen,
		"attnSigDuration", desc.AttnSigDuration,
	)

	return c, nil
}

// buildEOM writes the 20-byte EOM burst buffer (16 preamble bytes followed
// by "NNNN") into dst.
func buildEOM(dst *[EOMBytes]byte) {
	for i := 0; i < PreambleCount; i++ {
		dst[i] = PreambleByte
	}
	copy(dst[PreambleCount:], AsciiEOM)
}

// Samples returns the chunk most recently filled by Generate. Only the first
// n samples are valid, where n is what that Generate call returned: all
// ChunkSamples of them, except on the call that ended the sequence (after
// which Done reports true), where the tail past n is undefined.
func (c *Context) Samples() []int16 {
	return c.out[:]
}

// Done reports whether the sequence has reached its terminal state. Once
// true, Generate must not be called again.
func (c *Context) Done() bool {
	return c.state >= phaseDone
}

// Variant reports the sine oracle variant this Context was built with.
func (c *Context) Variant() sine.Variant {
	return c.variant
}

// SampleRate reports the sample rate, in Hz, this Context was built with.
func (c *Context) SampleRate() int {
	return int(c.sampleRate)
}

// SamplesPerBit reports round(sampleRate / AFSKBitRate).
func (c *Context) SamplesPerBit() int {
	return c.samplesPerBit
}
