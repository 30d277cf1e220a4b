// SPDX-License-Identifier: Unlicense OR MIT

// Package alog routes diagnostics to logcat on Android and to the
// standard log package elsewhere. All output is fire and forget.
package alog

import "fmt"

// Tag is the logcat tag for every line this module writes.
const Tag = "widecolor"

// Android log priorities from android/log.h.
type priority int32

const (
	prioInfo  priority = 4
	prioWarn  priority = 5
	prioError priority = 6
)

func Infof(format string, args ...interface{}) {
	write(prioInfo, fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) {
	write(prioWarn, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) {
	write(prioError, fmt.Sprintf(format, args...))
}
