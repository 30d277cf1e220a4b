// SPDX-License-Identifier: Unlicense OR MIT

// Package egl exposes the subset of EGL used for wide color gamut
// context negotiation. Handles are raw driver pointers; the zero value
// of every handle type is the EGL_NO_* sentinel.
package egl

import "unsafe"

type (
	Display uintptr
	Config  uintptr
	Context uintptr
	Surface uintptr

	NativeDisplayType uintptr
	NativeWindowType  unsafe.Pointer

	// Int is EGLint, the element type of attribute lists.
	Int int32
)

const (
	NoDisplay Display = 0
	NoContext Context = 0
	NoSurface Surface = 0

	DefaultDisplay NativeDisplayType = 0
)

// Attribute and token values from EGL/egl.h and EGL/eglext.h.
const (
	AlphaSize            Int = 0x3021
	BlueSize             Int = 0x3022
	GreenSize            Int = 0x3023
	RedSize              Int = 0x3024
	None                 Int = 0x3038
	SurfaceType          Int = 0x3033
	WindowBit            Int = 0x0004
	RenderableType       Int = 0x3040
	OpenGLES3Bit         Int = 0x0040
	NativeVisualID       Int = 0x302e
	Vendor               Int = 0x3053
	Version              Int = 0x3054
	Extensions           Int = 0x3055
	Height               Int = 0x3056
	Width                Int = 0x3057
	ContextClientVersion Int = 0x3098

	GLColorSpace                     Int = 0x309d
	GLColorSpaceSRGB                 Int = 0x3089
	GLColorSpaceDisplayP3            Int = 0x3363
	GLColorSpaceDisplayP3Passthrough Int = 0x3490
	ColorComponentType               Int = 0x3339
	ColorComponentTypeFixed          Int = 0x333a
	ColorComponentTypeFloat          Int = 0x333b
)

// API is the set of EGL entry points the context negotiator calls.
// The production implementation binds libEGL at runtime; tests provide
// a scripted fake.
type API interface {
	GetDisplay(disp NativeDisplayType) Display
	Initialize(disp Display) (major, minor int, ok bool)
	Terminate(disp Display) bool
	ReleaseThread() bool
	QueryString(disp Display, name Int) string
	// ChooseConfig requests at most one config matching attribs and
	// reports the number of matches the driver found.
	ChooseConfig(disp Display, attribs []Int) (Config, int, bool)
	GetConfigAttrib(disp Display, cfg Config, attrib Int) (Int, bool)
	CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context
	DestroyContext(disp Display, ctx Context) bool
	CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface
	DestroySurface(disp Display, surf Surface) bool
	QuerySurface(disp Display, surf Surface, attrib Int) (Int, bool)
	MakeCurrent(disp Display, draw, read Surface, ctx Context) bool
	SwapBuffers(disp Display, surf Surface) bool
	SwapInterval(disp Display, interval Int) bool
	GetError() Int
}
