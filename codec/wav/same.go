/*
NAME
  same.go

DESCRIPTION
  same.go adapts the wav package to sink a generated mono 16-bit PCM stream
  (as produced by codec/same) to a standard WAV container, and to read one
  back for round-trip verification. This is a storage concern only; it is
  not an audio playback layer.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package wav sinks the []int16 PCM stream produced by codec/same to a
// standard WAV container, optionally running it through codec/pcm filters
// first, and reads one back for round-trip verification.
package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/mcroddev/libsame/codec/pcm"
)

// WriteFilteredSamples runs samples through each of filters in order, then
// writes the result to w via WriteSamples. It is the intended way to sink a
// codec/same.Context's generated audio after optional post-processing, e.g.
// amplifying it or band-limiting it to a transmission channel with a
// pcm.SelectiveFrequencyFilter.
func WriteFilteredSamples(w io.WriteSeeker, samples []int16, sampleRate int, filters ...pcm.AudioFilter) error {
	for _, f := range filters {
		var err error
		samples, err = pcm.ApplyToSamples(samples, uint(sampleRate), f)
		if err != nil {
			return fmt.Errorf("could not apply filter: %w", err)
		}
	}
	return WriteSamples(w, samples, sampleRate)
}

// WriteSamples encodes mono, 16-bit samples at sampleRate into w as a
// standard WAV file. It is intended for sinking the output of a
// codec/same.Context to disk or to any io.WriteSeeker.
func WriteSamples(w io.WriteSeeker, samples []int16, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("could not write wav samples: %w", err)
	}
	return enc.Close()
}

// ReadSamples decodes a mono 16-bit WAV stream from r, returning the raw
// samples and the sample rate they were encoded at. Used to verify that a
// stream written by WriteSamples round-trips losslessly.
func ReadSamples(r io.ReadSeeker) ([]int16, int, error) {
	dec := wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode wav samples: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return samples, buf.Format.SampleRate, nil
}
