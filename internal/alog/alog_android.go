// SPDX-License-Identifier: Unlicense OR MIT

package alog

import (
	"bufio"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

var (
	loadOnce sync.Once
	logWrite func(prio int32, tag, msg string) int32
)

func loadLiblog() func(prio int32, tag, msg string) int32 {
	loadOnce.Do(func() {
		handle, err := purego.Dlopen("liblog.so", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			return
		}
		purego.RegisterLibFunc(&logWrite, handle, "__android_log_write")
	})
	return logWrite
}

func write(prio priority, msg string) {
	if w := loadLiblog(); w != nil {
		w(int32(prio), Tag, msg)
		return
	}
	log.Print(msg)
}

// Stray prints from dependencies should show up alongside module
// output, so stdout and stderr are routed into logcat.
func init() {
	// logcat already includes timestamps.
	log.SetFlags(log.Flags() &^ log.LstdFlags)
	logFd(os.Stdout.Fd())
	logFd(os.Stderr.Fd())
}

func logFd(fd uintptr) {
	w := loadLiblog()
	if w == nil {
		return
	}
	r, pw, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	if err := unix.Dup3(int(pw.Fd()), int(fd), unix.O_CLOEXEC); err != nil {
		panic(err)
	}
	go func() {
		// 1024 is the truncation limit from android/log.h, plus a \n.
		lineBuf := bufio.NewReaderSize(r, 1024)
		for {
			line, _, err := lineBuf.ReadLine()
			if err != nil {
				break
			}
			w(int32(prioInfo), Tag, string(line))
		}
		// pw's fd was dup'ed. Avoid finalizing pw, and thereby avoid
		// its finalizer closing the fd.
		runtime.KeepAlive(pw)
	}()
}
