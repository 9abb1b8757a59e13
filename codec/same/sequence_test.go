package same

import (
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"github.com/mcroddev/libsame/codec/same/sine"
)

const testSampleRate = 44100

func newCanonicalContext(t *testing.T, v sine.Variant) *Context {
	t.Helper()
	d := canonicalDescriptor(t)
	c, err := NewContext(d, Config{SampleRate: testSampleRate, Variant: v})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

// drain runs c to completion, returning every sample emitted and the number
// of Generate calls it took.
func drain(t *testing.T, c *Context) ([]int16, int) {
	t.Helper()

	var all []int16
	calls := 0
	for !c.Done() {
		n := c.Generate()
		all = append(all, c.Samples()[:n]...)
		calls++
		if calls > 1_000_000 {
			t.Fatal("drain: runaway generation, Done() never became true")
		}
	}
	return all, calls
}

func TestSamplesPerBitAt44100(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)
	if c.SamplesPerBit() != 85 {
		t.Errorf("SamplesPerBit() = %d, want 85", c.SamplesPerBit())
	}
}

func TestNewContextRejectsInvalidDescriptor(t *testing.T) {
	d := canonicalDescriptor(t)
	d.Originator = "X"
	if _, err := NewContext(d, Config{SampleRate: testSampleRate}); err == nil {
		t.Fatal("NewContext with invalid descriptor = nil error, want error")
	}
}

func TestNewContextRejectsBadSampleRate(t *testing.T) {
	d := canonicalDescriptor(t)
	if _, err := NewContext(d, Config{SampleRate: 0}); err == nil {
		t.Fatal("NewContext with zero sample rate = nil error, want error")
	}
}

func TestTotalSampleCountConservesBudget(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)

	headerBurst := 8 * c.samplesPerBit * c.headerLen
	eomBurst := 8 * c.samplesPerBit * EOMBytes
	silence := SilenceDuration * testSampleRate
	attention := 8 * testSampleRate

	want := 3*headerBurst + 3*silence /* after each header */ + attention + silence /* after attention */ + 3*eomBurst + 3*silence /* after each EOM */

	all, _ := drain(t, c)
	if len(all) != want {
		t.Errorf("total samples = %d, want %d", len(all), want)
	}
}

func TestGenerateChunkSizing(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)

	n := c.Generate()
	if n != ChunkSamples {
		t.Fatalf("first Generate() = %d, want %d (sequence is long enough to fill a chunk)", n, ChunkSamples)
	}

	calls := 0
	for !c.Done() {
		c.Generate()
		calls++
	}
	if calls == 0 {
		t.Fatal("expected at least one more Generate call after the first")
	}
}

func TestFinalGenerateCallIsShortByExactly(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)

	var last int
	for !c.Done() {
		last = c.Generate()
	}
	if last == 0 {
		t.Skip("total sample count happened to be an exact multiple of ChunkSamples")
	}
	if last <= 0 || last >= ChunkSamples {
		t.Errorf("final Generate() = %d, want in (0, %d)", last, ChunkSamples)
	}
}

func TestGenerateAfterDonePanics(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)
	for !c.Done() {
		c.Generate()
	}

	defer func() {
		if recover() == nil {
			t.Error("Generate() after Done() did not panic")
		}
	}()
	c.Generate()
}

func TestSilenceGapsAreAllZero(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)
	all, _ := drain(t, c)

	headerBurst := 8 * c.samplesPerBit * c.headerLen
	silence := SilenceDuration * testSampleRate

	// The first silence gap begins immediately after the first header burst.
	start := headerBurst
	for i := 0; i < silence; i++ {
		if all[start+i] != 0 {
			t.Fatalf("silence sample %d = %d, want 0", i, all[start+i])
		}
	}
}

func TestAttentionToneSpectralPeaks(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)
	all, _ := drain(t, c)

	headerBurst := 8 * c.samplesPerBit * c.headerLen
	silence := SilenceDuration * testSampleRate
	attnStart := 3*headerBurst + 3*silence
	attnLen := 8 * testSampleRate

	window := all[attnStart : attnStart+attnLen]

	// Use a power-of-two slice for the DFT.
	n := 1
	for n*2 <= len(window) {
		n *= 2
	}
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = float64(window[i])
	}

	spectrum := fft.FFTReal(samples)

	peakBin := func(loHz, hiHz float64) int {
		lo := int(loHz * float64(n) / testSampleRate)
		hi := int(hiHz * float64(n) / testSampleRate)
		best, bestMag := lo, -1.0
		for k := lo; k <= hi; k++ {
			mag := real(spectrum[k])*real(spectrum[k]) + imag(spectrum[k])*imag(spectrum[k])
			if mag > bestMag {
				bestMag = mag
				best = k
			}
		}
		return best
	}

	toHz := func(bin int) float64 { return float64(bin) * testSampleRate / float64(n) }

	pa := toHz(peakBin(800, 900))
	pb := toHz(peakBin(920, 1000))

	if diff := pa - AttnFreqA; diff < -10 || diff > 10 {
		t.Errorf("attention tone A peak at %.1f Hz, want near %.1f Hz", pa, AttnFreqA)
	}
	if diff := pb - AttnFreqB; diff < -10 || diff > 10 {
		t.Errorf("attention tone B peak at %.1f Hz, want near %.1f Hz", pb, AttnFreqB)
	}
}

func TestMaxLocationsScenario(t *testing.T) {
	d := &HeaderDescriptor{
		Originator:      "WXR",
		Event:           "TOR",
		NumLocations:    LocationCodesMax,
		ValidTime:       "0615",
		OriginatorTime:  "0011200",
		Callsign:        "WAEB/AM ",
		AttnSigDuration: 8,
	}
	for i := 0; i < LocationCodesMax; i++ {
		if err := d.SetLocation(i, "048484"); err != nil {
			t.Fatalf("SetLocation(%d): %v", i, err)
		}
	}

	var buf [HeaderBytesMax]byte
	n := serializeHeader(&buf, d)
	if n != headerLen(LocationCodesMax) {
		t.Fatalf("n = %d, want %d", n, headerLen(LocationCodesMax))
	}
	if n != HeaderBytesMax {
		t.Fatalf("31-location header length = %d, want HeaderBytesMax = %d", n, HeaderBytesMax)
	}
}

func TestSingleLocationScenario(t *testing.T) {
	d := &HeaderDescriptor{
		Originator:      "WXR",
		Event:           "TOR",
		NumLocations:    1,
		ValidTime:       "0615",
		OriginatorTime:  "0011200",
		Callsign:        "WAEB/AM ",
		AttnSigDuration: 8,
	}
	if err := d.SetLocation(0, "048484"); err != nil {
		t.Fatalf("SetLocation(0): %v", err)
	}

	var buf [HeaderBytesMax]byte
	n := serializeHeader(&buf, d)
	if n != headerLen(1) {
		t.Fatalf("n = %d, want %d", n, headerLen(1))
	}
	if buf[n-1] != '-' {
		t.Errorf("header does not end with a dash following the callsign")
	}
}

func TestPhaseProgressionOrder(t *testing.T) {
	c := newCanonicalContext(t, sine.Libc)

	want := []phase{
		phaseHeader1, phaseSilenceAfterHeader1,
		phaseHeader2, phaseSilenceAfterHeader2,
		phaseHeader3, phaseSilenceAfterHeader3,
		phaseAttention, phaseSilenceAfterAttention,
		phaseEOM1, phaseSilenceAfterEOM1,
		phaseEOM2, phaseSilenceAfterEOM2,
		phaseEOM3, phaseSilenceAfterEOM3,
		phaseDone,
	}

	var got []phase
	got = append(got, c.state)
	last := c.state
	for !c.Done() {
		c.Generate()
		if c.state != last {
			got = append(got, c.state)
			last = c.state
		}
	}

	if len(got) != len(want) {
		t.Fatalf("observed %d phase transitions, want %d: got %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phase transition %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestVariantsAgreeOnSampleCounts checks total output length is independent
// of the sine oracle variant; afsk_test.go's
// TestAFSKVariantParityTransitionTiming checks the stronger per-sample
// MARK/SPACE transition-timing property.
func TestVariantsAgreeOnSampleCounts(t *testing.T) {
	variants := []sine.Variant{sine.Libc, sine.LUT, sine.Taylor}

	var want int
	for i, v := range variants {
		c := newCanonicalContext(t, v)
		all, _ := drain(t, c)
		if i == 0 {
			want = len(all)
			continue
		}
		if len(all) != want {
			t.Errorf("variant %v produced %d samples, want %d", v, len(all), want)
		}
	}
}

func TestAppVariantDelegates(t *testing.T) {
	var calls int
	fn := func(userdata interface{}, t, f float32) int16 {
		calls++
		return 7
	}

	d := canonicalDescriptor(t)
	c, err := NewContext(d, Config{SampleRate: testSampleRate, Variant: sine.App, AppFunc: fn})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	c.Generate()
	if calls == 0 {
		t.Error("App callback was never invoked")
	}
}
