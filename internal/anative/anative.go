// SPDX-License-Identifier: Unlicense OR MIT

// Package anative binds the small part of the Android NDK window API
// needed to retarget a window's buffer format. The window handle is
// owned by the application shell; this package never acquires or
// releases it.
package anative

import "unsafe"

// SetBuffersGeometry changes the size and format of the window
// buffers. Width and height of 0 request the window's natural size.
func SetBuffersGeometry(win unsafe.Pointer, width, height, format int32) error {
	return setBuffersGeometry(win, width, height, format)
}
