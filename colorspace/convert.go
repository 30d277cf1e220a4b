// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

import (
	"image"

	"golang.org/x/image/draw"
)

// DefaultGamma is the display transfer exponent assumed for 8-bit
// imagery without an embedded transfer function.
const DefaultGamma = 2.2

// Converter performs a gamut conversion on display referred 8-bit
// pixels: decode to linear light, matrix transform, re-encode. Build
// one per (src, dst) pair and reuse it; construction bakes the lookup
// tables.
type Converter struct {
	decode Table
	encode Table
	m      Mat3
}

// NewConverter returns a converter from src to dst assuming
// DefaultGamma encoding on both sides.
func NewConverter(src, dst Space) *Converter {
	return &Converter{
		decode: DecodeTable(DefaultGamma),
		encode: EncodeTable(1 / DefaultGamma),
		m:      Connect(src, dst),
	}
}

// Pixel converts a single display referred RGB triple.
func (c *Converter) Pixel(r, g, b uint8) (uint8, uint8, uint8) {
	r, g, b = c.decode[r], c.decode[g], c.decode[b]
	r, g, b = c.m.TransformRGB(r, g, b)
	return c.encode[r], c.encode[g], c.encode[b]
}

// Image converts src into the destination gamut. Alpha passes
// through untouched.
func (c *Converter) Image(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = c.Pixel(dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
	}
	return dst
}

// Fit scales src to fit within width x height preserving aspect
// ratio, using Catmull-Rom resampling. Intended for sizing a frame to
// the realized render target.
func Fit(src image.Image, width, height int) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	sx := float64(width) / float64(b.Dx())
	sy := float64(height) / float64(b.Dy())
	scale := sx
	if sy < sx {
		scale = sy
	}
	dw := int(float64(b.Dx())*scale + 0.5)
	dh := int(float64(b.Dy())*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
