package deltae

import (
	"fmt"
	"math"
)

// KParams are the k parameters adjusting what effect lightness, chroma and
// hue differences have on the CIEDE2000 distance. The larger a value, the
// smaller the impact of its component.
type KParams struct {
	L float64
	C float64
	H float64
}

// DefaultKParams returns the standard parameters, 1 for each component.
func DefaultKParams() KParams {
	return KParams{L: 1, C: 1, H: 1}
}

// Yang2012 returns the k parameters determined in Yang Yang, Jun Ming,
// Nenghai Yu, 'Color Image Quality Assessment Based on CIEDE2000', Advances
// in Multimedia, 2012. https://doi.org/10.1155/2012/273723.
//
// Included for reference; if in doubt use DefaultKParams.
func Yang2012() KParams {
	return KParams{L: 0.65, C: 1, H: 4}
}

// Validate reports whether the parameters can safely feed the metric. A zero
// weight would make the difference infinite.
func (k KParams) Validate() error {
	if k.L <= 0 || k.C <= 0 || k.H <= 0 {
		return fmt.Errorf("CIEDE2000 weights must be positive: KL=%g KC=%g KH=%g", k.L, k.C, k.H)
	}
	return nil
}

// twentyFiveToSeventh is 25⁷, the constant of the chroma correction terms.
const twentyFiveToSeventh = 6103515625.0

// CIEDE2000 returns the CIEDE2000 colour difference between two colours with
// the default k parameters. The metric is symmetric in its arguments.
func CIEDE2000(c1, c2 Color) float64 {
	return CIEDE2000WithParams(c1, c2, DefaultKParams())
}

// CIEDE2000WithParams returns the CIEDE2000 colour difference between two
// colours using custom k parameters.
//
// CIEDE2000 refines CIE94 with three corrections: a chroma-dependent
// adjustment of the a* axis compensating non-uniformity near the neutral
// axis, hue handling done on the circle (wrapped differences and a circular
// mean), and a rotation term correcting the blue-region non-uniformity.
func CIEDE2000WithParams(c1, c2 Color, k KParams) float64 {
	lab1 := c1.Lab()
	lab2 := c2.Lab()

	meanL := (lab1.L + lab2.L) / 2
	deltaL := lab2.L - lab1.L

	chroma1 := lab1.Chroma()
	chroma2 := lab2.Chroma()

	// G stretches a* based on the mean raw chroma.
	meanChroma7 := math.Pow((chroma1+chroma2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(meanChroma7/(meanChroma7+twentyFiveToSeventh)))
	a1 := lab1.A * (1 + g)
	a2 := lab2.A * (1 + g)

	chroma1p := math.Hypot(a1, lab1.B)
	chroma2p := math.Hypot(a2, lab2.B)
	meanChromaP := (chroma1p + chroma2p) / 2
	deltaChroma := chroma2p - chroma1p

	h1 := huePrime(a1, lab1.B)
	h2 := huePrime(a2, lab2.B)
	deltaHue := 2 * math.Sqrt(chroma1p*chroma2p) *
		math.Sin(rad(deltaHuePrime(chroma1p, chroma2p, h1, h2))/2)
	meanHue := meanHuePrime(chroma1p, chroma2p, h1, h2)

	t := 1 -
		0.17*math.Cos(rad(meanHue-30)) +
		0.24*math.Cos(rad(2*meanHue)) +
		0.32*math.Cos(rad(3*meanHue+6)) -
		0.20*math.Cos(rad(4*meanHue-63))

	// Rotation term for the blue region around 275°.
	theta := 30 * math.Exp(-sq((meanHue-275)/25))
	chromaP7 := math.Pow(meanChromaP, 7)
	rc := 2 * math.Sqrt(chromaP7/(chromaP7+twentyFiveToSeventh))
	rt := -math.Sin(rad(2*theta)) * rc

	sl := 1 + 0.015*sq(meanL-50)/math.Sqrt(20+sq(meanL-50))
	sc := 1 + 0.045*meanChromaP
	sh := 1 + 0.015*meanChromaP*t

	l := deltaL / (k.L * sl)
	c := deltaChroma / (k.C * sc)
	h := deltaHue / (k.H * sh)
	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

func sq(v float64) float64 { return v * v }

// huePrime returns the adjusted hue angle in degrees in [0, 360), with the
// conventional 0 for a colour whose adjusted chroma is zero. The guard keeps
// atan2(0, 0) out of the formula.
func huePrime(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * degPerRad
	if h < 0 {
		h += 360
	}
	return h
}

// deltaHuePrime returns the hue difference h2'−h1' wrapped into
// (-180°, 180°]. If either colour is achromatic the difference is zero.
func deltaHuePrime(chroma1, chroma2, h1, h2 float64) float64 {
	if chroma1 == 0 || chroma2 == 0 {
		return 0
	}
	d := h2 - h1
	switch {
	case d > 180:
		return d - 360
	case d < -180:
		return d + 360
	default:
		return d
	}
}

// meanHuePrime returns the circular mean of the two adjusted hue angles.
// When the hues straddle the 0°/360° seam the naive arithmetic mean points
// at the opposite side of the circle, so 360° is added before halving. If
// either colour is achromatic the sum of the angles is used, per the
// formula's definition.
func meanHuePrime(chroma1, chroma2, h1, h2 float64) float64 {
	switch {
	case chroma1 == 0 || chroma2 == 0:
		return h1 + h2
	case math.Abs(h1-h2) > 180:
		return (h1 + h2 + 360) / 2
	default:
		return (h1 + h2) / 2
	}
}
