/*
NAME
  sine_test.go

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
	"testing"

	"gonum.org/v1/gonum/floats"
)

const sampleRate = 44100

// TestVariantString checks gen_engine_desc_get-style reporting.
func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{Libc, "LIBC"},
		{LUT, "LUT"},
		{Taylor, "TAYLOR"},
		{App, "APP"},
		{Variant(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

// TestLibcFullScale checks that the LIBC oracle reaches (within rounding)
// full scale at the sinusoid's peak.
func TestLibcFullScale(t *testing.T) {
	o := NewLibc()
	// sin(2*pi*f*t) peaks at t = 1/(4f).
	const f = 1000.0
	s := o.Sample(1.0/(4*f), f)
	if s < FullScale-1 {
		t.Errorf("Sample at peak = %d, want close to %d", s, FullScale)
	}
}

// TestTaylorMatchesLibc checks that the Taylor approximation tracks the
// LIBC oracle closely across a sweep of the AFSK tone range.
func TestTaylorMatchesLibc(t *testing.T) {
	libc := NewLibc()
	taylor := NewTaylor()

	for _, f := range []float32{1562.5, 2083.3} {
		for i := 0; i < sampleRate; i++ {
			tt := float32(i) / float32(sampleRate)
			want := libc.Sample(tt, f)
			got := taylor.Sample(tt, f)
			if diff := math.Abs(float64(want) - float64(got)); diff > FullScale*0.02 {
				t.Fatalf("f=%v t=%v: taylor=%d libc=%d diverge by %v", f, tt, got, want, diff)
			}
		}
	}
}

// TestLUTMatchesLibcWithinTolerance verifies the sine-oracle-equivalence
// property: LUT-mode and LIBC-mode samples differ by at most 2% of full
// scale for tones in the AFSK range, given N >= 1024 with interpolation.
func TestLUTMatchesLibcWithinTolerance(t *testing.T) {
	libc := NewLibc()

	for _, f := range []float32{1562.5, 2083.3} {
		lut := NewLUT(1024, sampleRate)
		var want, got []float64
		for i := 0; i < sampleRate/10; i++ {
			tt := float32(i) / float32(sampleRate)
			want = append(want, float64(libc.Sample(tt, f)))
			got = append(got, float64(lut.Sample(tt, f)))
		}
		for i := range want {
			if !floats.EqualWithinAbs(want[i], got[i], FullScale*0.02) {
				t.Fatalf("f=%v sample %d: lut=%v libc=%v exceed 2%% tolerance", f, i, got[i], want[i])
			}
		}
	}
}

// TestLUTPhaseWraps checks that the phase accumulator reduces modulo the
// table size rather than growing without bound.
func TestLUTPhaseWraps(t *testing.T) {
	lut := NewLUT(256, sampleRate)
	for i := 0; i < sampleRate; i++ {
		lut.Sample(0, 2083.3)
	}
	if lut.phi < 0 || lut.phi >= lut.size {
		t.Errorf("phase accumulator out of range: %v (size %v)", lut.phi, lut.size)
	}
}

// TestAppDelegates checks that the App oracle simply forwards to the
// supplied function with the supplied userdata.
func TestAppDelegates(t *testing.T) {
	type key struct{}
	want := key{}

	var gotT, gotF float32
	var gotUserdata interface{}
	app := NewApp(func(userdata interface{}, t, f float32) int16 {
		gotT, gotF, gotUserdata = t, f, userdata
		return 42
	}, want)

	if s := app.Sample(0.5, 1000); s != 42 {
		t.Errorf("Sample() = %d, want 42", s)
	}
	if gotT != 0.5 || gotF != 1000 {
		t.Errorf("callback received t=%v f=%v, want t=0.5 f=1000", gotT, gotF)
	}
	if gotUserdata != want {
		t.Errorf("callback received userdata = %v, want %v", gotUserdata, want)
	}
}

// TestAppNilFuncPanics checks the documented panic on a nil callback.
func TestAppNilFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewApp(nil, ...) did not panic")
		}
	}()
	NewApp(nil, nil)
}
