package deltae

import (
	"fmt"
	"math"
)

// CIE94 application modes. The mode selects the empirically fitted K1 and K2
// weighting constants.
const (
	ApplicationGraphicArts = "graphic-arts"
	ApplicationTextiles    = "textiles"
)

// CIE94Params configures the CIE94 metric. K1 and K2 are the
// application-dependent chroma and hue weighting constants; KL, KC and KH
// are the caller-adjustable overall weights (1 each unless overridden).
type CIE94Params struct {
	K1 float64
	K2 float64
	KL float64
	KC float64
	KH float64
}

// CIE94GraphicArts returns CIE94 parameters for graphic arts
// (K1=0.045, K2=0.015).
func CIE94GraphicArts() CIE94Params {
	return CIE94Params{K1: 0.045, K2: 0.015, KL: 1, KC: 1, KH: 1}
}

// CIE94Textiles returns CIE94 parameters for textiles (K1=0.048, K2=0.014).
// Textile practice also doubles the lightness weight, so KL is 2.
func CIE94Textiles() CIE94Params {
	return CIE94Params{K1: 0.048, K2: 0.014, KL: 2, KC: 1, KH: 1}
}

// ParseCIE94Application returns the CIE94 parameters for a named application
// mode. Unrecognized modes are rejected here, before any metric runs.
func ParseCIE94Application(mode string) (CIE94Params, error) {
	switch mode {
	case ApplicationGraphicArts, "graphic":
		return CIE94GraphicArts(), nil
	case ApplicationTextiles:
		return CIE94Textiles(), nil
	default:
		return CIE94Params{}, fmt.Errorf("unknown CIE94 application mode: %q (valid: %s, %s)",
			mode, ApplicationGraphicArts, ApplicationTextiles)
	}
}

// Validate reports whether the parameters can safely feed the metric.
func (p CIE94Params) Validate() error {
	if p.KL <= 0 || p.KC <= 0 || p.KH <= 0 {
		return fmt.Errorf("CIE94 weights must be positive: KL=%g KC=%g KH=%g", p.KL, p.KC, p.KH)
	}
	if p.K1 < 0 || p.K2 < 0 {
		return fmt.Errorf("CIE94 constants must be non-negative: K1=%g K2=%g", p.K1, p.K2)
	}
	return nil
}

// CIE94 returns the CIE94 colour difference between two colours: a weighted
// Euclidean distance over the lightness, chroma and hue differences. The
// chroma and hue scaling factors grow with the mean chroma of the pair, so
// the metric is symmetric in its colour arguments.
func CIE94(c1, c2 Color, p CIE94Params) float64 {
	dl, dc, dh, chroma1, chroma2 := deltaLCH(c1.Lab(), c2.Lab())
	meanChroma := (chroma1 + chroma2) / 2

	// SL is 1; SC and SH scale with mean chroma.
	sc := 1 + p.K1*meanChroma
	sh := 1 + p.K2*meanChroma

	l := dl / p.KL
	c := dc / (p.KC * sc)
	h := dh / (p.KH * sh)
	return math.Sqrt(l*l + c*c + h*h)
}
