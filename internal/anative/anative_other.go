// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package anative

import (
	"errors"
	"unsafe"
)

func setBuffersGeometry(win unsafe.Pointer, width, height, format int32) error {
	return errors.New("anative: not supported on this platform")
}
