package lab

import "math"

// RGB is an 8-bit sRGB color. Immutable once placed in a candidate pool.
type RGB struct {
	R, G, B uint8
}

// Lab is a CIELAB coordinate (D65 reference white).
// L is lightness in [0,100]; A and B are the chromatic axes.
type Lab struct {
	L, A, B float64
}

// Pipeline constants. Cutoffs and divisors follow the CIE definitions for
// sRGB under a D65 illuminant; they are part of the observable contract
// (fitness values and canonical ordering depend on them), so do not "fix"
// them to higher-precision variants.
const (
	gammaCutoff = 0.04045 // sRGB companding threshold
	gammaSlope  = 12.92   // linear-segment divisor below the threshold

	refX = 95.047  // D65 reference white, X
	refY = 100.0   // D65 reference white, Y
	refZ = 108.883 // D65 reference white, Z

	fCutoff = 0.008856 // ƒ(t) cube-root threshold (≈ (6/29)³)
	fSlope  = 7.787    // ƒ(t) linear-segment slope (≈ (29/6)²/3)
	fOffset = 16.0 / 116.0
)

// RGBToLab converts an 8-bit sRGB color to its CIELAB coordinate.
//
// Stages:
//  1. Normalize channels to [0,1].
//  2. Gamma-expand: linear below gammaCutoff, power-law 2.4 above.
//  3. Apply the sRGB→XYZ primaries matrix, scaled ×100.
//  4. Divide by the D65 reference white.
//  5. Apply the piecewise cube-root ƒ(t).
//  6. Combine into L, a, b.
//
// Deterministic and idempotent: the same RGB always yields the same Lab.
func RGBToLab(c RGB) Lab {
	r := gammaExpand(float64(c.R) / 255)
	g := gammaExpand(float64(c.G) / 255)
	b := gammaExpand(float64(c.B) / 255)

	// sRGB primaries → XYZ tristimulus, scaled to the 0..100 range.
	x := (r*0.4124 + g*0.3576 + b*0.1805) * 100
	y := (r*0.2126 + g*0.7152 + b*0.0722) * 100
	z := (r*0.0193 + g*0.1192 + b*0.9505) * 100

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// DeltaE returns the CIE76 color difference between two Lab coordinates:
// the Euclidean distance over (L, a, b). Symmetric; zero iff a == b.
func DeltaE(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B

	return math.Sqrt(dl*dl + da*da + db*db)
}

// gammaExpand inverts sRGB companding for one normalized channel.
func gammaExpand(v float64) float64 {
	if v > gammaCutoff {
		return math.Pow((v+0.055)/1.055, 2.4)
	}

	return v / gammaSlope
}

// labF is the piecewise cube-root nonlinearity of the XYZ→Lab step.
func labF(t float64) float64 {
	if t > fCutoff {
		return math.Cbrt(t)
	}

	return fSlope*t + fOffset
}
