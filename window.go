// SPDX-License-Identifier: Unlicense OR MIT

package widecolor

import (
	"unsafe"

	"github.com/imageview/widecolor/internal/anative"
	"github.com/imageview/widecolor/internal/egl"
)

// Window is the native window the application shell owns. The engine
// reads the handle and retargets the buffer format; it never acquires
// or releases the window.
type Window interface {
	// NativeWindow returns the EGL native window handle.
	NativeWindow() egl.NativeWindowType
	// SetBuffersGeometry applies a config's native visual format to
	// the window buffers.
	SetBuffersGeometry(format int32) error
}

// AndroidWindow adapts a raw ANativeWindow pointer, as delivered by
// the activity lifecycle, into a Window.
func AndroidWindow(win unsafe.Pointer) Window {
	return androidWindow{win: win}
}

type androidWindow struct {
	win unsafe.Pointer
}

func (w androidWindow) NativeWindow() egl.NativeWindowType {
	return egl.NativeWindowType(w.win)
}

func (w androidWindow) SetBuffersGeometry(format int32) error {
	return anative.SetBuffersGeometry(w.win, 0, 0, format)
}
