/*
NAME
  afsk.go

DESCRIPTION
  afsk.go implements the AFSK (Audio Frequency Shift Keying) modulator: it
  converts a byte buffer into MARK/SPACE tone samples, one sample per call,
  per spec.md SS4.2.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

import "github.com/mcroddev/libsame/codec/same/sine"

// afskState tracks the AFSK modulator's progress through one burst (a
// header repetition or an EOM burst). It is reset at the start of every
// burst by Context.enterPhase.
type afskState struct {
	oracle        sine.Oracle
	sampleRate    float32
	samplesPerBit int

	data        []byte
	byteIndex   int
	bitIndex    int // 0..7, LSB first
	sampleInBit int // 0..samplesPerBit-1
}

// reset points the modulator at a new burst's data, clearing all indices.
func (a *afskState) reset(data []byte) {
	a.data = data
	a.byteIndex = 0
	a.bitIndex = 0
	a.sampleInBit = 0
}

// next produces one MARK/SPACE sample and advances the modulator's state.
// It must not be called once the burst's data has been fully consumed; the
// sequence state machine guarantees exactly 8*samplesPerBit*len(data)
// samples are requested per burst.
func (a *afskState) next() int16 {
	b := a.data[a.byteIndex]
	bit := (b >> uint(a.bitIndex)) & 1

	f := AFSKSpaceFreq
	if bit == 1 {
		f = AFSKMarkFreq
	}

	t := float32(a.sampleInBit) / a.sampleRate
	s := a.oracle.Sample(t, f)

	a.sampleInBit++
	if a.sampleInBit == a.samplesPerBit {
		a.sampleInBit = 0
		a.bitIndex++
		if a.bitIndex == 8 {
			a.bitIndex = 0
			a.byteIndex++
			if a.byteIndex == len(a.data) {
				a.data = nil
				a.byteIndex = 0
			}
		}
	}

	return s
}
