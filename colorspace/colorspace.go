// SPDX-License-Identifier: Unlicense OR MIT

// Package colorspace implements the color math behind wide gamut
// rendering: RGB working spaces derived from their chromaticity
// coordinates, gamut conversion matrices through CIE XYZ, transfer
// function lookup tables and a fixed point pixel transform.
//
// All spaces here share the D65 white point except DCI-P3, so gamut
// conversions between the D65 spaces need no chromatic adaptation.
package colorspace

// Chromaticities are the CIE xy coordinates of a space's RGB
// primaries and white point.
type Chromaticities struct {
	RedX, RedY     float64
	GreenX, GreenY float64
	BlueX, BlueY   float64
	WhiteX, WhiteY float64
}

// Space is an RGB color space with its derived connection matrices.
// The zero value is not a valid space; use New or a package variable.
type Space struct {
	Name     string
	RGBToXYZ Mat3
	XYZToRGB Mat3
}

var (
	SRGB      = New("sRGB", Chromaticities{0.640, 0.330, 0.300, 0.600, 0.150, 0.060, 0.3127, 0.3290})
	DisplayP3 = New("Display-P3", Chromaticities{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3127, 0.3290})
	DCIP3     = New("DCI-P3", Chromaticities{0.680, 0.320, 0.265, 0.690, 0.150, 0.060, 0.3140, 0.3510})
	BT2020    = New("BT.2020", Chromaticities{0.708, 0.292, 0.170, 0.797, 0.131, 0.046, 0.3127, 0.3290})
	AdobeRGB  = New("Adobe RGB", Chromaticities{0.640, 0.330, 0.210, 0.710, 0.150, 0.060, 0.3127, 0.3290})
)

// New derives a space's RGB to XYZ matrix from its chromaticities.
// Each primary is scaled so that the white point maps to XYZ of the
// white chromaticity with Y = 1.
func New(name string, c Chromaticities) Space {
	toXYZ := func(x, y float64) [3]float64 {
		return [3]float64{x / y, 1, (1 - x - y) / y}
	}
	r := toXYZ(c.RedX, c.RedY)
	g := toXYZ(c.GreenX, c.GreenY)
	b := toXYZ(c.BlueX, c.BlueY)
	w := toXYZ(c.WhiteX, c.WhiteY)

	primaries := [3][3]float64{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	s := mulVec64(inverse64(primaries), w)
	var m [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = primaries[row][col] * s[col]
		}
	}
	return Space{
		Name:     name,
		RGBToXYZ: mat3From64(m),
		XYZToRGB: mat3From64(inverse64(m)),
	}
}

// Connect returns the matrix converting linear RGB in src to linear
// RGB in dst, passing through XYZ.
func Connect(src, dst Space) Mat3 {
	return dst.XYZToRGB.Mul(src.RGBToXYZ)
}

func inverse64(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	inv := 1 / det
	return [3][3]float64{
		{(e*i - f*h) * inv, (c*h - b*i) * inv, (b*f - c*e) * inv},
		{(f*g - d*i) * inv, (a*i - c*g) * inv, (c*d - a*f) * inv},
		{(d*h - e*g) * inv, (b*g - a*h) * inv, (a*e - b*d) * inv},
	}
}

func mulVec64(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func mat3From64(m [3][3]float64) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = float32(m[row][col])
		}
	}
	return out
}
