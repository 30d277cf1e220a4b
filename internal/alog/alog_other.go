// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package alog

import "log"

func write(prio priority, msg string) {
	switch prio {
	case prioWarn:
		log.Printf("W/%s: %s", Tag, msg)
	case prioError:
		log.Printf("E/%s: %s", Tag, msg)
	default:
		log.Printf("I/%s: %s", Tag, msg)
	}
}
