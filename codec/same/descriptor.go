/*
NAME
  descriptor.go

DESCRIPTION
  descriptor.go defines HeaderDescriptor, the caller-provided, immutable
  description of a SAME header, and its construction-time validation.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

import "github.com/pkg/errors"

// HeaderDescriptor is the caller-provided, immutable description of a SAME
// header. Every string field must already be exactly its fixed length;
// Callsign must already be space-padded to CallsignLen. The serializer
// performs no character-class validation of these fields.
//
// Unlike the reference implementation this is distilled from, the location
// list uses an explicit NumLocations count rather than a sentinel value: a
// sentinel equal to a real six-character location code would silently
// truncate the header, whereas an out-of-range count is rejected outright
// by NewContext.
type HeaderDescriptor struct {
	// Originator is the 3-character originator code, e.g. "WXR".
	Originator string

	// Event is the 3-character event code, e.g. "TOR".
	Event string

	// Locations holds up to LocationCodesMax six-character PSSCCC codes;
	// only the first NumLocations entries are used.
	Locations [LocationCodesMax][LocationCodeLen]byte

	// NumLocations is the number of valid entries in Locations, in
	// [1, LocationCodesMax].
	NumLocations int

	// ValidTime is the 4-character valid time period, HHMM.
	ValidTime string

	// OriginatorTime is the 7-character originator time, JJJHHMM.
	OriginatorTime string

	// Callsign is the 8-character, space-padded broadcast station
	// callsign.
	Callsign string

	// AttnSigDuration is the attention signal duration in seconds, in
	// [AttnDurationMin, AttnDurationMax].
	AttnSigDuration int
}

// validate checks every fixed-length field and bound in d, returning a
// wrapped error describing the first violation found. This is a
// construction-time check only: once a Context has been built from a valid
// descriptor, generation itself cannot fail (spec.md SS4.7/SS7).
func (d *HeaderDescriptor) validate() error {
	if len(d.Originator) != OriginatorCodeLen {
		return errors.Errorf("originator code must be %d characters, got %d", OriginatorCodeLen, len(d.Originator))
	}
	if len(d.Event) != EventCodeLen {
		return errors.Errorf("event code must be %d characters, got %d", EventCodeLen, len(d.Event))
	}
	if d.NumLocations < 1 || d.NumLocations > LocationCodesMax {
		return errors.Errorf("location count must be in [1, %d], got %d", LocationCodesMax, d.NumLocations)
	}
	if len(d.ValidTime) != ValidTimeLen {
		return errors.Errorf("valid time period must be %d characters, got %d", ValidTimeLen, len(d.ValidTime))
	}
	if len(d.OriginatorTime) != OriginatorTimeLen {
		return errors.Errorf("originator time must be %d characters, got %d", OriginatorTimeLen, len(d.OriginatorTime))
	}
	if len(d.Callsign) != CallsignLen {
		return errors.Errorf("callsign must be %d characters (space-padded), got %d", CallsignLen, len(d.Callsign))
	}
	if d.AttnSigDuration < AttnDurationMin || d.AttnSigDuration > AttnDurationMax {
		return errors.Errorf("attention signal duration must be in [%d, %d] seconds, got %d", AttnDurationMin, AttnDurationMax, d.AttnSigDuration)
	}
	return nil
}

// SetLocation copies code into location slot i, which must be in
// [0, LocationCodesMax); only slots below NumLocations are serialized. code
// must be exactly LocationCodeLen bytes.
func (d *HeaderDescriptor) SetLocation(i int, code string) error {
	if i < 0 || i >= LocationCodesMax {
		return errors.Errorf("location index %d out of range [0, %d)", i, LocationCodesMax)
	}
	if len(code) != LocationCodeLen {
		return errors.Errorf("location code must be %d characters, got %d", LocationCodeLen, len(code))
	}
	copy(d.Locations[i][:], code)
	return nil
}
