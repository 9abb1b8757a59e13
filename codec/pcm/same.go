/*
NAME
  same.go

DESCRIPTION
  same.go adapts the pcm package's Buffer-oriented filters to the
  []int16 samples produced by codec/same, so a generated SAME stream can be
  amplified or band-limited before being written out, without the caller
  having to know about Buffer's byte encoding.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pcm

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// BufferFromSamples packs mono, 16-bit samples at sampleRate into a Buffer
// suitable for AudioFilter.Apply.
func BufferFromSamples(samples []int16, sampleRate uint) Buffer {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return Buffer{
		Format: BufferFormat{SFormat: S16_LE, Rate: sampleRate, Channels: 1},
		Data:   data,
	}
}

// SamplesFromBuffer unpacks a mono, S16_LE Buffer's data back into []int16.
func SamplesFromBuffer(b Buffer) ([]int16, error) {
	if b.Format.SFormat != S16_LE {
		return nil, errors.Errorf("expected S16_LE samples, got %v", b.Format.SFormat)
	}
	if len(b.Data)%2 != 0 {
		return nil, errors.New("buffer does not hold a whole number of 16-bit samples")
	}

	samples := make([]int16, len(b.Data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(b.Data[i*2:]))
	}
	return samples, nil
}

// ApplyToSamples runs samples (mono, at sampleRate Hz) through filter and
// returns the filtered result as []int16. It is the entry point a
// codec/same.Context's generated audio is expected to use for optional
// post-processing, e.g. band-limiting to a transmission channel or
// amplifying a quiet attention tone.
func ApplyToSamples(samples []int16, sampleRate uint, filter AudioFilter) ([]int16, error) {
	filtered, err := filter.Apply(BufferFromSamples(samples, sampleRate))
	if err != nil {
		return nil, errors.Wrap(err, "could not apply filter")
	}
	return SamplesFromBuffer(Buffer{
		Format: BufferFormat{SFormat: S16_LE, Rate: sampleRate, Channels: 1},
		Data:   filtered,
	})
}
