/*
NAME
  header.go

DESCRIPTION
  header.go renders a HeaderDescriptor into the canonical on-air SAME byte
  sequence, per spec.md SS4.1.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package same

// serializeHeader writes the canonical on-air byte sequence for d into dst,
// which must be at least HeaderBytesMax bytes, and returns the number of
// bytes written. It performs no character-class validation; d is assumed to
// have already passed HeaderDescriptor.validate.
//
// Grammar (see spec.md SS4.1):
//
//	frame    = preamble start "-" org "-" eee "-" loc *("-" loc) "+" ttt "-" jjj "-" lll "-"
//	preamble = 16 OCTET(0xAB)
//	start    = "ZCZC"
func serializeHeader(dst *[HeaderBytesMax]byte, d *HeaderDescriptor) int {
	n := 0

	for i := 0; i < PreambleCount; i++ {
		dst[n] = PreambleByte
		n++
	}
	n += copy(dst[n:], AsciiStart)
	dst[n] = '-'
	n++

	n += copy(dst[n:], d.Originator)
	dst[n] = '-'
	n++

	n += copy(dst[n:], d.Event)
	dst[n] = '-'
	n++

	for i := 0; i < d.NumLocations; i++ {
		n += copy(dst[n:], d.Locations[i][:])
		dst[n] = '-'
		n++
	}

	// The dash just written after the last location becomes a plus.
	dst[n-1] = '+'

	n += copy(dst[n:], d.ValidTime)
	dst[n] = '-'
	n++

	n += copy(dst[n:], d.OriginatorTime)
	dst[n] = '-'
	n++

	n += copy(dst[n:], d.Callsign)
	dst[n] = '-'
	n++

	return n
}

// headerLen returns the serialized length of a header with numLocations
// location codes: the 21-byte prelude (16 preamble bytes, "ZCZC", "-") plus
// org+dash, event+dash, numLocations*(location+dash), validtime+dash,
// origtime+dash, and callsign+dash, i.e. 51 + 7*numLocations bytes.
func headerLen(numLocations int) int {
	return 51 + 7*numLocations
}
