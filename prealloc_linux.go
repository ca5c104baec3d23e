// prealloc_linux.go - advisory destination preallocation, linux
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

//go:build linux

package copyfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// errors are ignored; fallocate is not supported on all filesystems
func preallocate(fd *os.File, sz int64) {
	if sz > 0 {
		_ = unix.Fallocate(int(fd.Fd()), 0, 0, sz)
	}
}
