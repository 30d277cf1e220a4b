// SPDX-License-Identifier: Unlicense OR MIT

package colorspace

import "testing"

func TestTransformRGBIdentity(t *testing.T) {
	id := Identity()
	for v := 0; v <= 255; v++ {
		r, g, b := uint8(v), uint8(255-v), uint8(v/2)
		or, og, ob := id.TransformRGB(r, g, b)
		if or != r || og != g || ob != b {
			t.Fatalf("identity(%d, %d, %d) = (%d, %d, %d)", r, g, b, or, og, ob)
		}
	}
}

func TestTransformRGBClamps(t *testing.T) {
	saturate := Mat3{
		{4, 4, 4},
		{4, 4, 4},
		{4, 4, 4},
	}
	negate := Mat3{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
	}
	for _, v := range []uint8{0, 1, 127, 254, 255} {
		r, g, b := saturate.TransformRGB(v, v, v)
		if v > 21 && (r != 255 || g != 255 || b != 255) {
			t.Errorf("saturate(%d) = (%d, %d, %d), want 255s", v, r, g, b)
		}
		r, g, b = negate.TransformRGB(v, v, v)
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("negate(%d) = (%d, %d, %d), want 0s", v, r, g, b)
		}
	}
}

func TestTransformRGBRounding(t *testing.T) {
	// A coefficient of 0.5 quantizes to 512; 512*v+512 >> 10 is
	// round-to-nearest of v/2.
	half := Mat3{
		{0.5, 0, 0},
		{0, 0.5, 0},
		{0, 0, 0.5},
	}
	r, _, _ := half.TransformRGB(3, 0, 0)
	if r != 2 {
		t.Errorf("half(3) = %d, want 2", r)
	}
	r, _, _ = half.TransformRGB(4, 0, 0)
	if r != 2 {
		t.Errorf("half(4) = %d, want 2", r)
	}
}

func TestTransformRGBGamutPair(t *testing.T) {
	// A white pixel stays white across any pair of D65 spaces.
	pairs := [][2]Space{
		{SRGB, DisplayP3},
		{DisplayP3, SRGB},
		{SRGB, BT2020},
		{BT2020, DisplayP3},
	}
	for _, p := range pairs {
		m := Connect(p[0], p[1])
		r, g, b := m.TransformRGB(255, 255, 255)
		if r != 255 || g != 255 || b != 255 {
			t.Errorf("%s -> %s white = (%d, %d, %d)", p[0].Name, p[1].Name, r, g, b)
		}
		r, g, b = m.TransformRGB(0, 0, 0)
		if r != 0 || g != 0 || b != 0 {
			t.Errorf("%s -> %s black = (%d, %d, %d)", p[0].Name, p[1].Name, r, g, b)
		}
	}
}

var pixelSink [3]uint8

func BenchmarkTransformRGB(b *testing.B) {
	m := Connect(SRGB, DisplayP3)
	for i := 0; i < b.N; i++ {
		r, g, bl := m.TransformRGB(byte(i), byte(i>>8), byte(i>>16))
		pixelSink = [3]uint8{r, g, bl}
	}
}
