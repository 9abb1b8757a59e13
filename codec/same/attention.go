/*
NAME
  attention.go

DESCRIPTION
  attention.go implements the attention-tone generator: the normalized sum
  of two fixed sinusoids (853 Hz and 960 Hz), per spec.md SS4.3.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

import "github.com/mcroddev/libsame/codec/same/sine"

// attnState holds the two independent tone oracles and the sample counter
// driving the shared time base t = sampleIndex / sampleRate. Each tone gets
// its own Oracle instance so a stateful variant's (LUT) phase accumulators
// don't interfere with one another.
type attnState struct {
	oracleA, oracleB sine.Oracle
	sampleRate       float32
	sampleIndex      int
}

// reset restarts the shared time base at the start of the attention phase.
func (a *attnState) reset() {
	a.sampleIndex = 0
}

// next returns floor((sin(2*pi*853*t) + sin(2*pi*960*t)) / 2) scaled to full
// int16 range; the division by two prevents clipping when summing two
// full-scale sinusoids.
func (a *attnState) next() int16 {
	t := float32(a.sampleIndex) / a.sampleRate

	sa := a.oracleA.Sample(t, AttnFreqA)
	sb := a.oracleB.Sample(t, AttnFreqB)

	a.sampleIndex++

	return int16((int32(sa) + int32(sb)) >> 1)
}
