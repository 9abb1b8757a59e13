/*
NAME
  same.go

DESCRIPTION
  same.go declares the protocol constants for the Specific Area Message
  Encoding (SAME) digital header, attention signal, and End-Of-Message
  trailer, as defined by 47 CFR 11.31.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package same generates a PCM audio stream for a SAME (Specific Area
// Message Encoding) digital header, attention signal, and End-Of-Message
// trailer, as used by the United States Emergency Alert System.
//
// A Context is created once from a HeaderDescriptor and a sample rate via
// NewContext, then driven by repeated calls to Generate, each of which
// fills one ChunkSamples chunk of the output stream. A Context is
// single-owner and must not be shared across goroutines; see the package
// doc of codec/same/sine for the pluggable sine synthesizer this package
// builds on.
//
// Generation is heap-free and total on the hot path: once a Context has
// been constructed, Generate cannot fail, it can only complete.
package same

import "github.com/mcroddev/libsame/codec/same/sine"

// Protocol constants mandated by 47 CFR 11.31.
const (
	// PreambleByte is the synchronization/AGC byte repeated before every
	// AFSK burst.
	PreambleByte byte = 0xAB

	// PreambleCount is the number of PreambleByte repetitions before each
	// burst.
	PreambleCount = 16

	// AsciiStart marks the beginning of a SAME header.
	AsciiStart = "ZCZC"

	// AsciiEOM marks the End-Of-Message trailer.
	AsciiEOM = "NNNN"

	// OriginatorCodeLen is the fixed length of the originator code field
	// (e.g. "WXR").
	OriginatorCodeLen = 3

	// EventCodeLen is the fixed length of the event code field (e.g. "TOR").
	EventCodeLen = 3

	// LocationCodeLen is the fixed length of one PSSCCC location code.
	LocationCodeLen = 6

	// LocationCodesMax is the maximum number of location codes permitted in
	// one header.
	LocationCodesMax = 31

	// ValidTimeLen is the fixed length of the valid time period field
	// (HHMM).
	ValidTimeLen = 4

	// OriginatorTimeLen is the fixed length of the originator time field
	// (JJJHHMM).
	OriginatorTimeLen = 7

	// CallsignLen is the fixed length of the space-padded callsign field.
	CallsignLen = 8

	// AFSKBitRate is the mandated AFSK symbol rate in Hz.
	AFSKBitRate = 520.83

	// AFSKMarkFreq is the AFSK tone, in Hz, representing a logical 1.
	AFSKMarkFreq float32 = 2083.3

	// AFSKSpaceFreq is the AFSK tone, in Hz, representing a logical 0.
	AFSKSpaceFreq float32 = 1562.5

	// AttnFreqA is the first of the two attention-signal tones, in Hz.
	AttnFreqA float32 = 853.0

	// AttnFreqB is the second of the two attention-signal tones, in Hz.
	AttnFreqB float32 = 960.0

	// AttnDurationMin is the minimum caller-specified attention signal
	// duration, in seconds.
	AttnDurationMin = 8

	// AttnDurationMax is the maximum caller-specified attention signal
	// duration, in seconds.
	AttnDurationMax = 25

	// SilenceDuration is the fixed duration, in seconds, of every silence
	// gap between bursts.
	SilenceDuration = 1

	// EOMBytes is the length, in bytes, of the EOM burst buffer: 16
	// preamble bytes followed by "NNNN".
	EOMBytes = PreambleCount + len(AsciiEOM)

	// HeaderBytesMax is the largest a serialized header can be, with
	// LocationCodesMax location codes.
	HeaderBytesMax = 268

	// ChunkSamples is the number of samples produced per call to Generate.
	ChunkSamples = 4096
)

// AttnSigDurations reports the caller-bounded range of valid attention
// signal durations, in seconds: (AttnDurationMin, AttnDurationMax).
func AttnSigDurations() (min, max int) {
	return AttnDurationMin, AttnDurationMax
}

// defaultSineVariant names the variant a zero Config selects: the zero value
// of sine.Variant, sine.Libc. Nothing in this package refers to it.
const defaultSineVariant = sine.Libc
