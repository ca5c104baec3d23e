// prealloc_darwin.go - advisory destination preallocation, macOS
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

//go:build darwin

package copyfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// F_PREALLOCATE helps Xsan/HFS volumes lay the file out
// contiguously; errors are ignored, this is merely advisory.
func preallocate(fd *os.File, sz int64) {
	if sz <= 0 {
		return
	}

	fst := unix.Fstore_t{
		Flags:   0,
		Posmode: unix.F_PEOFPOSMODE,
		Offset:  0,
		Length:  sz,
	}
	_, _ = unix.FcntlFstore(fd.Fd(), unix.F_PREALLOCATE, &fst)
}
