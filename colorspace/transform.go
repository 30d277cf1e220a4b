// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

// TransformRGB applies m to an 8-bit RGB triple using 10-bit fixed
// point arithmetic. Coefficients are quantized with round(c * 1024),
// each channel is a rounded dot product, and results clamp to
// [0, 255]. This keeps the per pixel path free of floating point
// while retaining about three decimal digits of matrix precision.
func (m Mat3) TransformRGB(r, g, b uint8) (uint8, uint8, uint8) {
	m00, m01, m02 := fixed10(m[0][0]), fixed10(m[0][1]), fixed10(m[0][2])
	m10, m11, m12 := fixed10(m[1][0]), fixed10(m[1][1]), fixed10(m[1][2])
	m20, m21, m22 := fixed10(m[2][0]), fixed10(m[2][1]), fixed10(m[2][2])

	sr, sg, sb := int32(r), int32(g), int32(b)
	or := (m00*sr + m01*sg + m02*sb + 512) >> 10
	og := (m10*sr + m11*sg + m12*sb + 512) >> 10
	ob := (m20*sr + m21*sg + m22*sb + 512) >> 10
	return clamp8(or), clamp8(og), clamp8(ob)
}

func fixed10(c float32) int32 {
	return int32(c*1024 + 0.5)
}

func clamp8(v int32) uint8 {
	if v > 255 {
		return 255
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}
