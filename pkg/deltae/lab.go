// Package deltae implements perceptual colour-difference metrics based on the
// CIE L*a*b* colour space: CIE76, CIE94, CMC l:c and CIEDE2000.
//
// Every metric is a pure function of its inputs. Colours are supplied as
// anything implementing the Color interface; the package provides
// implementations for L*a*b* values, bare triples and sRGB colours.
package deltae

import "math"

// Lab is a colour in the CIE L*a*b* colour space, relative to the D65
// reference white. L is lightness, nominally in [0, 100]; A and B are the
// opponent-colour axes, unbounded but typically in [-150, 150].
type Lab struct {
	L float64
	A float64
	B float64
}

// Color is any value that can be expressed as a point in L*a*b* space.
// It is the single seam through which new input representations are added:
// implement Color and every metric in this package accepts the new type.
type Color interface {
	// Lab returns the L*, a* and b* coordinates of the colour.
	Lab() Lab
}

// Lab returns the colour itself, making Lab usable wherever a Color is
// expected.
func (c Lab) Lab() Lab { return c }

// Chroma returns the radial magnitude sqrt(a²+b²) of the colour's
// opponent-colour coordinates.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// Hue returns the hue angle atan2(b, a) in degrees, normalized to [0, 360).
// An achromatic colour (a = b = 0) has no defined hue angle; by convention
// this returns 0 for it.
func (c Lab) Hue() float64 {
	if c.A == 0 && c.B == 0 {
		return 0
	}
	h := math.Atan2(c.B, c.A) * degPerRad
	if h < 0 {
		h += 360
	}
	return h
}

// Triple is a bare (L*, a*, b*) triple.
type Triple [3]float64

// Lab returns the triple as a Lab colour.
func (t Triple) Lab() Lab { return Lab{L: t[0], A: t[1], B: t[2]} }

const degPerRad = 180 / math.Pi

// rad converts an angle in degrees to radians.
func rad(deg float64) float64 { return deg * (math.Pi / 180) }

// deltaLCH returns the lightness, chroma and hue differences between two
// colours as used by CIE94 and CMC, together with the first colour's chroma.
//
// The hue difference is derived as sqrt(Δa² + Δb² - ΔC²); rounding can push
// the inner expression slightly negative for near-identical colours, so it
// is clamped at zero before the square root.
func deltaLCH(c1, c2 Lab) (dl, dc, dh, chroma1, chroma2 float64) {
	dl = c1.L - c2.L
	da := c1.A - c2.A
	db := c1.B - c2.B
	chroma1 = c1.Chroma()
	chroma2 = c2.Chroma()
	dc = chroma1 - chroma2
	dh = math.Sqrt(math.Max(0, da*da+db*db-dc*dc))
	return dl, dc, dh, chroma1, chroma2
}
