/*
NAME
  lut.go

DESCRIPTION
  lut.go implements the LUT sine oracle variant: a process-wide, read-only
  lookup table sampled through a per-voice phase accumulator with linear
  interpolation between adjacent entries.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sine

import (
	"math"
	"sync"
)

// DefaultLUTSize is the table size used when a caller does not specify one.
const DefaultLUTSize = 1024

var (
	tableMu sync.Mutex
	tables  = map[int][]int16{}
)

// InitLUT populates the process-wide table of the given size if it has not
// already been populated. It is race-free and idempotent: once a size has
// been initialized, the table is immutable and every LUTOracle of that size
// shares it without further coordination. Callers do not normally need to
// call this directly; NewLUT calls it on first use of a given size.
func InitLUT(size int) {
	tableMu.Lock()
	defer tableMu.Unlock()
	initLocked(size)
}

func initLocked(size int) []int16 {
	if t, ok := tables[size]; ok {
		return t
	}
	t := make([]int16, size)
	for k := 0; k < size; k++ {
		x := 2 * math.Pi * float64(k) / float64(size)
		t[k] = int16(math.Round(math.Sin(x) * FullScale))
	}
	tables[size] = t
	return t
}

// LUTOracle samples a shared sine table via a phase accumulator owned by
// this instance. Distinct voices (e.g. the two attention tones, or the AFSK
// modulator) must each hold their own LUTOracle so their phase accumulators
// don't interfere with one another.
type LUTOracle struct {
	table      []int16
	size       float32
	sampleRate float32
	phi        float32
}

// NewLUT returns a LUTOracle reading the process-wide table of the given
// size (initializing it on first use), advancing its phase accumulator for
// samples generated at sampleRate Hz.
func NewLUT(size int, sampleRate float32) *LUTOracle {
	tableMu.Lock()
	t := initLocked(size)
	tableMu.Unlock()
	return &LUTOracle{table: t, size: float32(size), sampleRate: sampleRate}
}

// Sample returns the linearly-interpolated table entry at the current phase,
// then advances the phase accumulator by (f*N)/sampleRate, reducing modulo N
// by repeated subtraction to preserve sub-integer phase.
func (o *LUTOracle) Sample(_, f float32) int16 {
	i0 := int(o.phi)
	i1 := i0 + 1
	if i1 >= len(o.table) {
		i1 = 0
	}
	frac := o.phi - float32(i0)
	s := float32(o.table[i0])*(1-frac) + float32(o.table[i1])*frac

	o.phi += f * o.size / o.sampleRate
	for o.phi >= o.size {
		o.phi -= o.size
	}
	for o.phi < 0 {
		o.phi += o.size
	}

	return int16(math.Round(float64(s)))
}
