/*
NAME
  libc.go

DESCRIPTION
  libc.go implements the LIBC sine oracle variant: a direct call to the
  standard library's sine function.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sine

import "math"

// LibcOracle evaluates math.Sin directly every call. It is stateless and
// safe to share across voices, though New still gives each voice its own
// instance for consistency with the stateful variants.
type LibcOracle struct{}

// NewLibc returns an Oracle backed by math.Sin.
func NewLibc() LibcOracle { return LibcOracle{} }

// Sample returns round(sin(2*pi*f*t) * FullScale).
func (LibcOracle) Sample(t, f float32) int16 {
	x := 2 * math.Pi * float64(f) * float64(t)
	return int16(math.Round(math.Sin(x) * FullScale))
}
