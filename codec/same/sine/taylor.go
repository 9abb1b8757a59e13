/*
NAME
  taylor.go

DESCRIPTION
  taylor.go implements the TAYLOR sine oracle variant: domain reduction into
  [0, pi) followed by a 3-term odd-power Taylor polynomial, avoiding any
  trigonometric library call.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sine

const (
	twoPi float32 = 6.283185307
	pi    float32 = 3.141592653
)

// TaylorOracle approximates sin(2*pi*f*t) with sin(x) ~= x - x^3/6 + x^5/120
// - x^7/5040 after reducing x = |2*pi*f*t| into [0, pi) and folding it into
// [0, pi/2] via sin(pi - x) = sin(x). It is stateless.
type TaylorOracle struct{}

// NewTaylor returns an Oracle backed by a Taylor-series sine approximation.
func NewTaylor() TaylorOracle { return TaylorOracle{} }

// Sample returns the Taylor-approximated, full-scale sample for (t, f).
// t and f are assumed non-negative, as they always are on the AFSK and
// attention-tone call paths.
func (TaylorOracle) Sample(t, f float32) int16 {
	x := twoPi * f * t

	// Reduce to [0, 2*pi); x is non-negative so truncation is a floor.
	k := float32(int64(x / twoPi))
	x -= k * twoPi

	sign := float32(1)
	if x >= pi {
		sign = -1
		x -= pi
	}

	// sin(pi - x) == sin(x): fold into [0, pi/2], where the polynomial's
	// error stays within a few LSB of full scale.
	if x > pi/2 {
		x = pi - x
	}

	x2 := x * x
	term := x
	sum := term
	term *= -x2 / 6
	sum += term
	term *= -x2 / 20
	sum += term
	term *= -x2 / 42
	sum += term

	return int16(sign * sum * FullScale)
}
