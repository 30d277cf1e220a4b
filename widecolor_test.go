// SPDX-License-Identifier: Unlicense OR MIT

package widecolor

import (
	"testing"

	"github.com/imageview/widecolor/internal/egl"
)

func TestModeTables(t *testing.T) {
	tests := []struct {
		mode   Mode
		space  ColorSpace
		format PixelFormat
		native egl.Int
		depths [4]egl.Int
	}{
		{ModeP3PassthroughRGBA8888, ColorSpaceDisplayP3Passthrough, PixelFormatRGBA8888, egl.GLColorSpaceDisplayP3Passthrough, [4]egl.Int{8, 8, 8, 8}},
		{ModeP3PassthroughRGBA1010102, ColorSpaceDisplayP3Passthrough, PixelFormatRGBA1010102, egl.GLColorSpaceDisplayP3Passthrough, [4]egl.Int{10, 10, 10, 2}},
		{ModeP3PassthroughFP16, ColorSpaceDisplayP3Passthrough, PixelFormatRGBAF16, egl.GLColorSpaceDisplayP3Passthrough, [4]egl.Int{16, 16, 16, 16}},
		{ModeP3RGBA8888, ColorSpaceDisplayP3, PixelFormatRGBA8888, egl.GLColorSpaceDisplayP3, [4]egl.Int{8, 8, 8, 8}},
		{ModeP3RGBA1010102, ColorSpaceDisplayP3, PixelFormatRGBA1010102, egl.GLColorSpaceDisplayP3, [4]egl.Int{10, 10, 10, 2}},
		{ModeP3FP16, ColorSpaceDisplayP3, PixelFormatRGBAF16, egl.GLColorSpaceDisplayP3, [4]egl.Int{16, 16, 16, 16}},
		{ModeSRGBRGBA8888, ColorSpaceSRGB, PixelFormatRGBA8888, egl.GLColorSpaceSRGB, [4]egl.Int{8, 8, 8, 8}},
	}
	for _, tt := range tests {
		if got := tt.mode.ColorSpace(); got != tt.space {
			t.Errorf("%v.ColorSpace() = %v, want %v", tt.mode, got, tt.space)
		}
		if got := tt.mode.PixelFormat(); got != tt.format {
			t.Errorf("%v.PixelFormat() = %v, want %v", tt.mode, got, tt.format)
		}
		native := nativeModeCfg[tt.mode]
		if native.space != tt.native {
			t.Errorf("%v native colorspace = 0x%x, want 0x%x", tt.mode, native.space, tt.native)
		}
		if got := [4]egl.Int{native.r, native.g, native.b, native.a}; got != tt.depths {
			t.Errorf("%v channel depths = %v, want %v", tt.mode, got, tt.depths)
		}
	}
}

func TestTablesParallel(t *testing.T) {
	if len(appModeCfg) != len(nativeModeCfg) {
		t.Fatalf("table lengths differ: %d vs %d", len(appModeCfg), len(nativeModeCfg))
	}
	for m := Mode(0); m.valid(); m++ {
		// Only half-float modes carry 16-bit channels.
		wide := nativeModeCfg[m].r == 16
		if wide != (m.PixelFormat() == PixelFormatRGBAF16) {
			t.Errorf("%v: 16-bit channels and float format disagree", m)
		}
	}
}

func TestZeroValuesAreSentinels(t *testing.T) {
	if ColorSpace(0) != ColorSpaceUnspecified {
		t.Error("zero ColorSpace is not unspecified")
	}
	if PixelFormat(0) != PixelFormatUnspecified {
		t.Error("zero PixelFormat is not unspecified")
	}
}

func TestModeStrings(t *testing.T) {
	for m := Mode(0); m.valid(); m++ {
		if m.String() == "invalid" {
			t.Errorf("mode %d has no name", int(m))
		}
	}
	if Mode(-1).String() != "invalid" {
		t.Error("invalid mode must stringify as invalid")
	}
}
