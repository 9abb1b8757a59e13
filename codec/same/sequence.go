/*
NAME
  sequence.go

DESCRIPTION
  sequence.go implements the 14-phase state machine driving a Context from
  the first header burst through to the final EOM silence gap, per spec.md
  SS4.5/SS4.6, and Generate, the chunked public entry point.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

// phase identifies one segment of the fixed 14-segment SAME sequence: three
// header bursts, each followed by a silence gap, the attention signal and
// its trailing silence gap, then three EOM bursts, each followed by a
// silence gap. phaseDone is terminal and carries no budget.
type phase int

const (
	phaseHeader1 phase = iota
	phaseSilenceAfterHeader1
	phaseHeader2
	phaseSilenceAfterHeader2
	phaseHeader3
	phaseSilenceAfterHeader3
	phaseAttention
	phaseSilenceAfterAttention
	phaseEOM1
	phaseSilenceAfterEOM1
	phaseEOM2
	phaseSilenceAfterEOM2
	phaseEOM3
	phaseSilenceAfterEOM3
	phaseDone
)

// phaseAFSKHeader1 is the entry phase of every Context, aliased here for
// readability at the NewContext call site.
const phaseAFSKHeader1 = phaseHeader1

// computeBudgets populates c.remaining with the sample count owed by each
// phase, per the framing durations in spec.md SS4.5: a header or EOM burst
// costs 8*samplesPerBit bits per byte transmitted; a silence gap costs
// SilenceDuration seconds; the attention signal costs attnSigDuration
// seconds.
func (c *Context) computeBudgets(attnSigDuration int) {
	headerBurst := 8 * c.samplesPerBit * c.headerLen
	eomBurst := 8 * c.samplesPerBit * EOMBytes
	silence := SilenceDuration * int(c.sampleRate)
	attention := attnSigDuration * int(c.sampleRate)

	c.remaining[phaseHeader1] = headerBurst
	c.remaining[phaseSilenceAfterHeader1] = silence
	c.remaining[phaseHeader2] = headerBurst
	c.remaining[phaseSilenceAfterHeader2] = silence
	c.remaining[phaseHeader3] = headerBurst
	c.remaining[phaseSilenceAfterHeader3] = silence
	c.remaining[phaseAttention] = attention
	c.remaining[phaseSilenceAfterAttention] = silence
	c.remaining[phaseEOM1] = eomBurst
	c.remaining[phaseSilenceAfterEOM1] = silence
	c.remaining[phaseEOM2] = eomBurst
	c.remaining[phaseSilenceAfterEOM2] = silence
	c.remaining[phaseEOM3] = eomBurst
	c.remaining[phaseSilenceAfterEOM3] = silence
}

// isHeaderPhase reports whether p is one of the three header burst phases.
func isHeaderPhase(p phase) bool {
	return p == phaseHeader1 || p == phaseHeader2 || p == phaseHeader3
}

// isEOMPhase reports whether p is one of the three EOM burst phases.
func isEOMPhase(p phase) bool {
	return p == phaseEOM1 || p == phaseEOM2 || p == phaseEOM3
}

// enterPhase resets whatever sub-state generator p's samples will be drawn
// from. Silence phases need no reset; a fresh oracle phase accumulator is
// only meaningful at the start of a burst or the attention signal.
func (c *Context) enterPhase(p phase) {
	switch {
	case isHeaderPhase(p):
		c.afsk.reset(c.header[:c.headerLen])
	case isEOMPhase(p):
		c.afsk.reset(c.eom[:])
	case p == phaseAttention:
		c.attn.reset()
	}
}

// nextSample returns the next sample for the current phase. p must not be
// phaseDone.
func (c *Context) nextSample(p phase) int16 {
	switch {
	case isHeaderPhase(p), isEOMPhase(p):
		return c.afsk.next()
	case p == phaseAttention:
		return c.attn.next()
	default:
		return silenceSample
	}
}

// Generate fills Samples() with up to ChunkSamples of audio and advances the
// sequence by that many samples. It returns the number of samples actually
// written, which is less than ChunkSamples exactly once: on the call during
// which the sequence reaches its terminal phase. Calling Generate again
// after Done reports true is a caller bug.
func (c *Context) Generate() int {
	assertf(!c.Done(), "Generate called on a terminal Context")

	n := 0
	for n < ChunkSamples {
		for c.remaining[c.state] == 0 {
			c.state++
			if c.state == phaseDone {
				return n
			}
			c.enterPhase(c.state)
		}

		c.out[n] = c.nextSample(c.state)
		c.remaining[c.state]--
		n++
	}

	return n
}
