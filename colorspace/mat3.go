// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

// Mat3 is a row major 3x3 matrix.
type Mat3 [3][3]float32

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = m[row][0]*n[0][col] + m[row][1]*n[1][col] + m[row][2]*n[2][col]
		}
	}
	return out
}

// MulVec returns m * v.
func (m Mat3) MulVec(v [3]float32) [3]float32 {
	return [3]float32{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Inverse returns the matrix inverse. The determinant must be
// non-zero; gamut matrices always are.
func (m Mat3) Inverse() Mat3 {
	var in [3][3]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			in[row][col] = float64(m[row][col])
		}
	}
	return mat3From64(inverse64(in))
}
