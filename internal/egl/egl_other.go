// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !linux && !freebsd

package egl

import "errors"

// Load reports that no EGL driver binding exists for this platform.
func Load() (API, error) {
	return nil, errors.New("egl: not supported on this platform")
}
