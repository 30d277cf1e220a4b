// SPDX-License-Identifier: Unlicense OR MIT

// Package widecolor negotiates a wide color gamut EGL rendering
// context for an Android image viewer. Given a ranked list of
// candidate (pixel format, colorspace) combinations it selects the
// best one the display driver supports, creates a matching context
// and window surface, and falls back down the list until a guaranteed
// legacy sRGB mode remains.
//
// The package is a library with no event loop of its own; the
// application shell owns the native window and calls Create and
// Destroy at the right lifecycle moments, from the thread that owns
// the window.
package widecolor

import "github.com/imageview/widecolor/internal/egl"

// Mode identifies one candidate combination of surface colorspace and
// pixel format, in descending preference order.
type Mode int

const (
	ModeP3PassthroughRGBA8888 Mode = iota
	ModeP3PassthroughRGBA1010102
	ModeP3PassthroughFP16
	ModeP3RGBA8888
	ModeP3RGBA1010102
	ModeP3FP16
	ModeSRGBRGBA8888
)

// ColorSpace classifies the colorspace of a live surface for
// downstream rendering code. The zero value means no surface is live.
type ColorSpace uint8

const (
	ColorSpaceUnspecified ColorSpace = iota
	ColorSpaceSRGB
	ColorSpaceDisplayP3
	// ColorSpaceDisplayP3Passthrough is Display-P3 with display side
	// encoding disabled; pixel data must already be OETF encoded.
	ColorSpaceDisplayP3Passthrough
)

// PixelFormat classifies the channel layout of a live surface. The
// zero value means no surface is live.
type PixelFormat uint8

const (
	PixelFormatUnspecified PixelFormat = iota
	PixelFormatRGBA8888
	PixelFormatRGBA1010102
	PixelFormatRGBAF16
)

// appModeConfig is the application facing classification recorded
// after a mode's surface is created.
type appModeConfig struct {
	space  ColorSpace
	format PixelFormat
}

// nativeModeConfig holds the EGL attributes requested when matching a
// config for a mode.
type nativeModeConfig struct {
	space      egl.Int
	r, g, b, a egl.Int
}

// The two tables are parallel, indexed by Mode, and never mutated.
var appModeCfg = [...]appModeConfig{
	ModeP3PassthroughRGBA8888:    {ColorSpaceDisplayP3Passthrough, PixelFormatRGBA8888},
	ModeP3PassthroughRGBA1010102: {ColorSpaceDisplayP3Passthrough, PixelFormatRGBA1010102},
	ModeP3PassthroughFP16:        {ColorSpaceDisplayP3Passthrough, PixelFormatRGBAF16},
	ModeP3RGBA8888:               {ColorSpaceDisplayP3, PixelFormatRGBA8888},
	ModeP3RGBA1010102:            {ColorSpaceDisplayP3, PixelFormatRGBA1010102},
	ModeP3FP16:                   {ColorSpaceDisplayP3, PixelFormatRGBAF16},
	ModeSRGBRGBA8888:             {ColorSpaceSRGB, PixelFormatRGBA8888},
}

var nativeModeCfg = [...]nativeModeConfig{
	ModeP3PassthroughRGBA8888:    {egl.GLColorSpaceDisplayP3Passthrough, 8, 8, 8, 8},
	ModeP3PassthroughRGBA1010102: {egl.GLColorSpaceDisplayP3Passthrough, 10, 10, 10, 2},
	ModeP3PassthroughFP16:        {egl.GLColorSpaceDisplayP3Passthrough, 16, 16, 16, 16},
	ModeP3RGBA8888:               {egl.GLColorSpaceDisplayP3, 8, 8, 8, 8},
	ModeP3RGBA1010102:            {egl.GLColorSpaceDisplayP3, 10, 10, 10, 2},
	ModeP3FP16:                   {egl.GLColorSpaceDisplayP3, 16, 16, 16, 16},
	ModeSRGBRGBA8888:             {egl.GLColorSpaceSRGB, 8, 8, 8, 8},
}

func (m Mode) valid() bool {
	return m >= 0 && int(m) < len(appModeCfg)
}

// ColorSpace returns the colorspace rendering code should assume for
// surfaces created in this mode.
func (m Mode) ColorSpace() ColorSpace {
	return appModeCfg[m].space
}

// PixelFormat returns the channel layout of surfaces created in this
// mode.
func (m Mode) PixelFormat() PixelFormat {
	return appModeCfg[m].format
}

func (m Mode) String() string {
	switch m {
	case ModeP3PassthroughRGBA8888:
		return "p3-passthrough-rgba8888"
	case ModeP3PassthroughRGBA1010102:
		return "p3-passthrough-rgba1010102"
	case ModeP3PassthroughFP16:
		return "p3-passthrough-fp16"
	case ModeP3RGBA8888:
		return "p3-rgba8888"
	case ModeP3RGBA1010102:
		return "p3-rgba1010102"
	case ModeP3FP16:
		return "p3-fp16"
	case ModeSRGBRGBA8888:
		return "srgb-rgba8888"
	}
	return "invalid"
}

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceDisplayP3:
		return "Display-P3"
	case ColorSpaceDisplayP3Passthrough:
		return "Display-P3 passthrough"
	}
	return "unspecified"
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8888:
		return "RGBA8888"
	case PixelFormatRGBA1010102:
		return "RGBA1010102"
	case PixelFormatRGBAF16:
		return "RGBAF16"
	}
	return "unspecified"
}
