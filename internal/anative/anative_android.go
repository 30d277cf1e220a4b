// SPDX-License-Identifier: Unlicense OR MIT

package anative

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	loadOnce sync.Once
	loadErr  error

	windowSetBuffersGeometry func(uintptr, int32, int32, int32) int32
)

func load() error {
	loadOnce.Do(func() {
		handle, err := purego.Dlopen("libandroid.so", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("anative: dlopen libandroid failed: %w", err)
			return
		}
		purego.RegisterLibFunc(&windowSetBuffersGeometry, handle, "ANativeWindow_setBuffersGeometry")
	})
	return loadErr
}

func setBuffersGeometry(win unsafe.Pointer, width, height, format int32) error {
	if err := load(); err != nil {
		return err
	}
	if res := windowSetBuffersGeometry(uintptr(win), width, height, format); res < 0 {
		return fmt.Errorf("anative: ANativeWindow_setBuffersGeometry failed (%d)", res)
	}
	return nil
}
