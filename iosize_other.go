// iosize_other.go - unixes without a usable statfs iosize
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

//go:build unix && !linux && !darwin && !freebsd

package copyfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// force the caller onto the stat blocksize fallback
func iosize(_ *os.File) (int64, error) {
	return 0, unix.ENOSYS
}
