package deltae

import (
	"math"
	"testing"
)

// Expected CMC 1:1 values over the colour pairs of the Sharma, Wu and Dalal
// CIEDE2000 test set, computed with the standard's hue branch selection on
// the angle normalized to [0°, 360°).
var cmcPerceptibilityCases = []diffCase{
	{67.4802, Lab{100.0000, 0.0050, -0.0100}, Lab{0.0000, 0.0000, 0.0000}},
	{1.7387, Lab{50.0000, 2.6772, -79.7751}, Lab{50.0000, 0.0000, -82.7485}},
	{2.4966, Lab{50.0000, 3.1571, -77.2803}, Lab{50.0000, 0.0000, -82.7485}},
	{3.3049, Lab{50.0000, 2.8361, -74.0200}, Lab{50.0000, 0.0000, -82.7485}},
	{0.8574, Lab{50.0000, -1.3802, -84.2814}, Lab{50.0000, 0.0000, -82.7485}},
	{0.8833, Lab{50.0000, -1.1848, -84.8006}, Lab{50.0000, 0.0000, -82.7485}},
	{0.9782, Lab{50.0000, -0.9009, -85.5211}, Lab{50.0000, 0.0000, -82.7485}},
	{3.5048, Lab{50.0000, 0.0000, 0.0000}, Lab{50.0000, -1.0000, 2.0000}},
	{2.8793, Lab{50.0000, -1.0000, 2.0000}, Lab{50.0000, 0.0000, 0.0000}},
	{6.5784, Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0009}},
	{6.5784, Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0010}},
	{6.5784, Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0011}},
	{6.5784, Lab{50.0000, 2.4900, -0.0010}, Lab{50.0000, -2.4900, 0.0012}},
	{6.6749, Lab{50.0000, -0.0010, 2.4900}, Lab{50.0000, 0.0009, -2.4900}},
	{6.6749, Lab{50.0000, -0.0010, 2.4900}, Lab{50.0000, 0.0011, -2.4900}},
	{4.6685, Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 0.0000, -2.5000}},
	{42.1088, Lab{50.0000, 2.5000, 0.0000}, Lab{73.0000, 25.0000, -18.0000}},
	{39.4589, Lab{50.0000, 2.5000, 0.0000}, Lab{61.0000, -5.0000, 29.0000}},
	{38.3601, Lab{50.0000, 2.5000, 0.0000}, Lab{56.0000, -27.0000, -3.0000}},
	{33.9366, Lab{50.0000, 2.5000, 0.0000}, Lab{58.0000, 24.0000, 15.0000}},
	{1.1440, Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.1736, 0.5854}},
	{1.0060, Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.2972, 0.0000}},
	{1.1130, Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 1.8634, 0.5757}},
	{1.0534, Lab{50.0000, 2.5000, 0.0000}, Lab{50.0000, 3.2592, 0.3350}},
	{1.4282, Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}},
	{1.2548, Lab{63.0109, -31.0961, -5.8663}, Lab{62.8187, -29.7946, -4.0864}},
	{1.7684, Lab{61.2901, 3.7196, -5.3901}, Lab{61.4292, 2.2480, -4.9620}},
	{2.0258, Lab{35.0831, -44.1164, 3.7933}, Lab{35.0232, -40.0716, 1.5901}},
	{3.0870, Lab{22.7233, 20.0904, -46.6940}, Lab{23.0331, 14.9730, -42.5619}},
	{1.7489, Lab{36.4612, 47.8580, 18.3852}, Lab{36.2715, 50.5065, 21.2231}},
	{1.9010, Lab{90.8027, -2.0831, 1.4410}, Lab{91.1528, -1.6435, 0.0447}},
	{1.7026, Lab{90.9257, -0.5406, -0.9208}, Lab{88.6381, -0.8985, -0.7239}},
	{1.8032, Lab{6.7747, -0.2908, -2.4247}, Lab{5.8714, -0.0985, -2.2286}},
	{2.4493, Lab{2.0776, 0.0795, -1.1350}, Lab{0.9033, -0.0636, -0.5514}},
}

func TestCMCPerceptibility(t *testing.T) {
	checkDiffTable(t, cmcPerceptibilityCases, func(c1, c2 Lab) float64 {
		return CMC(c1, c2, CMCPerceptibility)
	})
}

func TestCMCReference(t *testing.T) {
	std := Lab{38.972, 58.991, 37.138}
	smp := Lab{54.528, 42.416, 54.497}

	if got := CMC(std, smp, CMCPerceptibility); math.Abs(got-22.751012) > 1e-4 {
		t.Errorf("CMC 1:1 = %.6f, want ≈22.751012", got)
	}
	if got := CMC(std, smp, CMCAcceptability); math.Abs(got-17.743943) > 1e-4 {
		t.Errorf("CMC 2:1 = %.6f, want ≈17.743943", got)
	}
}

// CMC is a quasimetric: the standard colour anchors the scaling terms, so
// swapping the arguments must change the result for non-trivial pairs.
func TestCMCAsymmetry(t *testing.T) {
	std := Lab{38.972, 58.991, 37.138}
	smp := Lab{54.528, 42.416, 54.497}

	forward := CMC(std, smp, CMCAcceptability)
	reverse := CMC(smp, std, CMCAcceptability)
	if math.Abs(forward-reverse) < 1 {
		t.Errorf("CMC(std, smp) = %.6f and CMC(smp, std) = %.6f; expected a clear asymmetry", forward, reverse)
	}
	if math.Abs(reverse-22.447333) > 1e-4 {
		t.Errorf("CMC reversed = %.6f, want ≈22.447333", reverse)
	}
}

// The SL term is defined piecewise with a documented discontinuity at L=16.
// Check both sides of the boundary against the branch-specific closed form.
func TestCMCLightnessBoundary(t *testing.T) {
	sample := Lab{L: 30, A: 12, B: 9}
	for _, l1 := range []float64{15.9999, 16, 16.0001} {
		std := Lab{L: l1, A: 10, B: 10}

		var sl float64
		if l1 < 16 {
			sl = 0.511
		} else {
			sl = 0.040975 * l1 / (1 + 0.01765*l1)
		}
		want := cmcClosedForm(std, sample, CMCAcceptability, sl)

		got := CMC(std, sample, CMCAcceptability)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("CMC at L1=%g = %.9f, want %.9f from its SL branch", l1, got, want)
		}
	}
}

// cmcClosedForm evaluates the CMC formula with SL supplied explicitly, so
// boundary tests can pin which branch the implementation took.
func cmcClosedForm(std, smp Lab, ratio CMCRatio, sl float64) float64 {
	dl, dc, dh, chroma1, _ := deltaLCH(std, smp)
	sc := 0.0638*chroma1/(1+0.0131*chroma1) + 0.638
	c4 := chroma1 * chroma1 * chroma1 * chroma1
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*cmcT(std.Hue()) + 1 - f)
	l := dl / (ratio.L * sl)
	c := dc / (ratio.C * sc)
	h := dh / sh
	return math.Sqrt(l*l + c*c + h*h)
}

func TestCMCProperties(t *testing.T) {
	for _, ratio := range []struct {
		name string
		r    CMCRatio
	}{
		{"1:1", CMCPerceptibility},
		{"2:1", CMCAcceptability},
		{"1:2", CMCRatio{L: 1, C: 2}},
	} {
		t.Run(ratio.name, func(t *testing.T) {
			diff := func(c1, c2 Lab) float64 { return CMC(c1, c2, ratio.r) }
			t.Run("zero", func(t *testing.T) { checkZero(t, diff) })
			t.Run("finite", func(t *testing.T) { checkFinite(t, diff) })
		})
	}
}

func TestNewCMCRatio(t *testing.T) {
	tests := []struct {
		name    string
		l, c    float64
		wantErr bool
	}{
		{"commercial default", 2, 1, false},
		{"perceptibility", 1, 1, false},
		{"zero lightness weight", 0, 1, true},
		{"zero chroma weight", 1, 0, true},
		{"negative weight", -2, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewCMCRatio(tt.l, tt.c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewCMCRatio(%g, %g) succeeded, want error", tt.l, tt.c)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCMCRatio(%g, %g) failed: %v", tt.l, tt.c, err)
			}
			if r.L != tt.l || r.C != tt.c {
				t.Errorf("NewCMCRatio(%g, %g) = %+v", tt.l, tt.c, r)
			}
		})
	}
}
