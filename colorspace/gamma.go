// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

import (
	"fmt"
	"math"
)

// Table maps an 8-bit channel value through a transfer function.
type Table [256]uint8

const maxPixel = 255

// EncodeTable builds the lookup table applying the sRGB style OETF
//
//	encoded = 12.92 * linear                      linear < 0.0031308
//	encoded = 1.055 * pow(linear, gamma) - 0.055  otherwise
//
// for 8-bit channels. Encoding compresses linear light, so gamma must
// be below 1 (a programming error otherwise, since tables are only
// built from fixed constants).
func EncodeTable(gamma float64) Table {
	if gamma >= 1 {
		panic(fmt.Sprintf("colorspace: encode gamma %v not below 1", gamma))
	}
	var t Table
	linearMax := 0.0031308 * float64(maxPixel)
	breakpoint := uint32(linearMax)
	for i := uint32(0); i < breakpoint; i++ {
		t[i] = uint8(float64(i)*12.92 + 0.5)
	}
	for i := breakpoint; i <= maxPixel; i++ {
		v := 1.055*math.Pow(float64(i)/maxPixel, gamma) - 0.055
		t[i] = clipChannel(v*maxPixel + 0.5)
	}
	return t
}

// DecodeTable builds the inverse lookup table recovering linear light
//
//	linear = encoded / 12.92                       encoded < 0.04045
//	linear = pow((encoded + 0.055)/1.055, gamma)   otherwise
//
// for 8-bit channels. Gamma must be above 1.
func DecodeTable(gamma float64) Table {
	if gamma <= 1 {
		panic(fmt.Sprintf("colorspace: decode gamma %v not above 1", gamma))
	}
	var t Table
	linearMax := 0.04045 * float64(maxPixel)
	breakpoint := uint32(linearMax)
	for i := uint32(0); i < breakpoint; i++ {
		t[i] = uint8(float64(i)/12.92 + 0.5)
	}
	for i := breakpoint; i <= maxPixel; i++ {
		v := math.Pow((float64(i)/maxPixel+0.055)/1.055, gamma)
		t[i] = clipChannel(v*maxPixel + 0.5)
	}
	return t
}

func clipChannel(v float64) uint8 {
	if v > maxPixel {
		return maxPixel
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}
