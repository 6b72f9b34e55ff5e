package deltae

import (
	"fmt"
	"math"
)

// CMCRatio is the l:c weight pair of the CMC metric.
type CMCRatio struct {
	L float64
	C float64
}

// Commonly used CMC weight pairs.
var (
	// CMCAcceptability is the 2:1 ratio used for commercial acceptability
	// decisions.
	CMCAcceptability = CMCRatio{L: 2, C: 1}
	// CMCPerceptibility is the 1:1 ratio used when judging perceptibility.
	CMCPerceptibility = CMCRatio{L: 1, C: 1}
)

// NewCMCRatio returns a CMC ratio pair, rejecting non-positive weights which
// would otherwise divide by zero inside the metric.
func NewCMCRatio(l, c float64) (CMCRatio, error) {
	r := CMCRatio{L: l, C: c}
	if err := r.Validate(); err != nil {
		return CMCRatio{}, err
	}
	return r, nil
}

// Validate reports whether the ratio can safely feed the metric.
func (r CMCRatio) Validate() error {
	if r.L <= 0 || r.C <= 0 {
		return fmt.Errorf("CMC ratio weights must be positive: l=%g c=%g", r.L, r.C)
	}
	return nil
}

// CMC returns the CMC l:c colour difference between a standard and a sample.
//
// The metric is asymmetric: the standard colour's lightness, chroma and hue
// anchor all the scaling terms, so CMC(a, b, r) and CMC(b, a, r) generally
// differ. This matches how the metric is used in textile and surface-colour
// matching, where one colour is the agreed standard being matched against.
func CMC(standard, sample Color, ratio CMCRatio) float64 {
	std := standard.Lab()
	dl, dc, dh, chroma1, _ := deltaLCH(std, sample.Lab())

	// The formula's documented discontinuity at L=16.
	var sl float64
	if std.L < 16 {
		sl = 0.511
	} else {
		sl = 0.040975 * std.L / (1 + 0.01765*std.L)
	}
	sc := 0.0638*chroma1/(1+0.0131*chroma1) + 0.638

	// A zero-chroma standard makes f zero, which keeps sh well-defined.
	c4 := chroma1 * chroma1 * chroma1 * chroma1
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*cmcT(std.Hue()) + 1 - f)

	l := dl / (ratio.L * sl)
	c := dc / (ratio.C * sc)
	h := dh / sh
	return math.Sqrt(l*l + c*c + h*h)
}

// cmcT returns the hue-dependent T term for a standard hue angle in degrees
// in [0, 360). The 164°–345° region uses its own piecewise form.
func cmcT(hue float64) float64 {
	if 164 <= hue && hue <= 345 {
		return 0.56 + math.Abs(0.2*math.Cos(rad(hue+168)))
	}
	return 0.36 + math.Abs(0.4*math.Cos(rad(hue+35)))
}
