package deltae

import "math"

// D65 reference-white tristimulus values.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE constants for the XYZ to L*a*b* nonlinearity.
// epsilon = (6/29)³, kappa = (29/3)³.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// RGB is an sRGB colour with 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Lab converts the colour to L*a*b* relative to the D65 reference white.
func (c RGB) Lab() Lab {
	return srgbToLab(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// RGBF is an sRGB colour with normalized floating-point channels in [0, 1].
//
// Channel values outside [0, 1] are clamped before conversion rather than
// extrapolated, so the conversion stays total and never produces NaN.
type RGBF struct {
	R float64
	G float64
	B float64
}

// Lab converts the colour to L*a*b* relative to the D65 reference white.
func (c RGBF) Lab() Lab {
	return srgbToLab(clamp01(c.R), clamp01(c.G), clamp01(c.B))
}

// Grey is a grey sRGB colour given by a single 8-bit channel, equivalent to
// RGB{v, v, v}. Converting a Grey is faster and more precise than converting
// the equivalent RGB because a* and b* are known to be zero.
type Grey uint8

// Lab converts the grey value to L*a*b*. The a* and b* components are
// always zero.
func (g Grey) Lab() Lab {
	return Lab{L: greyLightness(uint8(g))}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// srgbToLab converts normalized sRGB channels to L*a*b* in three steps:
// inverse sRGB companding, the linear-RGB to XYZ matrix for the sRGB
// primaries with D65 white point, and the CIE XYZ to L*a*b* nonlinearity.
func srgbToLab(r, g, b float64) Lab {
	rl := srgbLinearize(r)
	gl := srgbLinearize(g)
	bl := srgbLinearize(b)

	x := rl*0.4124564390896922 + gl*0.357576077643909 + bl*0.18043748326639894
	y := rl*0.21267285140562253 + gl*0.715152155287818 + bl*0.07217499330655958
	z := rl*0.019333895582329317 + gl*0.11919202588130297 + bl*0.9503040785363677

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// srgbLinearize applies inverse sRGB companding to a normalized channel.
func srgbLinearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// labF is the forward XYZ to L*a*b* nonlinearity applied to a tristimulus
// ratio.
func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

// greyLightness returns L* for a grey colour with the given sRGB channel.
//
// For r == g == b the XYZ coordinates collapse onto the white axis, so L*
// depends on the companded channel alone and the conversion reduces to one
// of three closed forms depending on which branch of the companding and of
// the L*a*b* nonlinearity the value falls in. The branch thresholds are
// 0.04045*255 ≈ 10.3 for the companding and the channel whose linear value
// equals epsilon, ≈ 23.4, for the nonlinearity.
func greyLightness(grey uint8) float64 {
	v := float64(grey) / 255
	switch {
	case grey <= 10:
		// Linear companding segment, linear L* branch:
		// L = kappa * v / 12.92.
		return cieKappa * v / 12.92
	case grey <= 23:
		// Power-law companding, linear L* branch: L = kappa * y.
		return cieKappa * math.Pow((v+0.055)/1.055, 2.4)
	default:
		// Power-law companding, cube-root L* branch:
		// L = 116 * y^(1/3) - 16 with y = ((v+0.055)/1.055)^2.4.
		return 116*math.Pow((v+0.055)/1.055, 2.4/3) - 16
	}
}
