// SPDX-License-Identifier: Unlicense OR MIT

//go:build android || linux || freebsd

package egl

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// lib binds the EGL entry points from the system driver. EGLBoolean is
// an unsigned int on every ABI purego supports.
type lib struct {
	getDisplay          func(uintptr) uintptr
	initialize          func(uintptr, *int32, *int32) uint32
	terminate           func(uintptr) uint32
	releaseThread       func() uint32
	queryString         func(uintptr, int32) *byte
	chooseConfig        func(uintptr, *int32, *uintptr, int32, *int32) uint32
	getConfigAttrib     func(uintptr, uintptr, int32, *int32) uint32
	createContext       func(uintptr, uintptr, uintptr, *int32) uintptr
	destroyContext      func(uintptr, uintptr) uint32
	createWindowSurface func(uintptr, uintptr, uintptr, *int32) uintptr
	destroySurface      func(uintptr, uintptr) uint32
	querySurface        func(uintptr, uintptr, int32, *int32) uint32
	makeCurrent         func(uintptr, uintptr, uintptr, uintptr) uint32
	swapBuffers         func(uintptr, uintptr) uint32
	swapInterval        func(uintptr, int32) uint32
	getError            func() int32
}

// Load opens the system EGL library and binds the entry points.
func Load() (API, error) {
	var handle uintptr
	var err error
	for _, name := range []string{"libEGL.so", "libEGL.so.1"} {
		handle, err = purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("egl: dlopen libEGL failed: %w", err)
	}
	register := func(dst interface{}, name string) {
		purego.RegisterLibFunc(dst, handle, name)
	}
	l := &lib{}
	register(&l.getDisplay, "eglGetDisplay")
	register(&l.initialize, "eglInitialize")
	register(&l.terminate, "eglTerminate")
	register(&l.releaseThread, "eglReleaseThread")
	register(&l.queryString, "eglQueryString")
	register(&l.chooseConfig, "eglChooseConfig")
	register(&l.getConfigAttrib, "eglGetConfigAttrib")
	register(&l.createContext, "eglCreateContext")
	register(&l.destroyContext, "eglDestroyContext")
	register(&l.createWindowSurface, "eglCreateWindowSurface")
	register(&l.destroySurface, "eglDestroySurface")
	register(&l.querySurface, "eglQuerySurface")
	register(&l.makeCurrent, "eglMakeCurrent")
	register(&l.swapBuffers, "eglSwapBuffers")
	register(&l.swapInterval, "eglSwapInterval")
	register(&l.getError, "eglGetError")
	return l, nil
}

func (l *lib) GetDisplay(disp NativeDisplayType) Display {
	return Display(l.getDisplay(uintptr(disp)))
}

func (l *lib) Initialize(disp Display) (major, minor int, ok bool) {
	var maj, min int32
	ret := l.initialize(uintptr(disp), &maj, &min)
	return int(maj), int(min), ret != 0
}

func (l *lib) Terminate(disp Display) bool {
	return l.terminate(uintptr(disp)) != 0
}

func (l *lib) ReleaseThread() bool {
	return l.releaseThread() != 0
}

func (l *lib) QueryString(disp Display, name Int) string {
	return goString(l.queryString(uintptr(disp), int32(name)))
}

func (l *lib) ChooseConfig(disp Display, attribs []Int) (Config, int, bool) {
	var cfg uintptr
	count := int32(0)
	ret := l.chooseConfig(uintptr(disp), attribPtr(attribs), &cfg, 1, &count)
	return Config(cfg), int(count), ret != 0
}

func (l *lib) GetConfigAttrib(disp Display, cfg Config, attrib Int) (Int, bool) {
	var value int32
	ret := l.getConfigAttrib(uintptr(disp), uintptr(cfg), int32(attrib), &value)
	return Int(value), ret != 0
}

func (l *lib) CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context {
	return Context(l.createContext(uintptr(disp), uintptr(cfg), uintptr(share), attribPtr(attribs)))
}

func (l *lib) DestroyContext(disp Display, ctx Context) bool {
	return l.destroyContext(uintptr(disp), uintptr(ctx)) != 0
}

func (l *lib) CreateWindowSurface(disp Display, cfg Config, win NativeWindowType, attribs []Int) Surface {
	return Surface(l.createWindowSurface(uintptr(disp), uintptr(cfg), uintptr(unsafe.Pointer(win)), attribPtr(attribs)))
}

func (l *lib) DestroySurface(disp Display, surf Surface) bool {
	return l.destroySurface(uintptr(disp), uintptr(surf)) != 0
}

func (l *lib) QuerySurface(disp Display, surf Surface, attrib Int) (Int, bool) {
	var value int32
	ret := l.querySurface(uintptr(disp), uintptr(surf), int32(attrib), &value)
	return Int(value), ret != 0
}

func (l *lib) MakeCurrent(disp Display, draw, read Surface, ctx Context) bool {
	return l.makeCurrent(uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx)) != 0
}

func (l *lib) SwapBuffers(disp Display, surf Surface) bool {
	return l.swapBuffers(uintptr(disp), uintptr(surf)) != 0
}

func (l *lib) SwapInterval(disp Display, interval Int) bool {
	return l.swapInterval(uintptr(disp), int32(interval)) != 0
}

func (l *lib) GetError() Int {
	return Int(l.getError())
}

func attribPtr(attribs []Int) *int32 {
	if len(attribs) == 0 {
		return nil
	}
	return (*int32)(unsafe.Pointer(&attribs[0]))
}

func goString(c *byte) string {
	if c == nil {
		return ""
	}
	var n int
	for p := unsafe.Pointer(c); *(*byte)(p) != 0; p = unsafe.Add(p, 1) {
		n++
	}
	return string(unsafe.Slice(c, n))
}
