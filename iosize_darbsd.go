// iosize_darbsd.go - preferred filesystem I/O size, darwin/freebsd
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

//go:build darwin || freebsd

package copyfile

import (
	"os"

	"golang.org/x/sys/unix"
)

func iosize(fd *os.File) (int64, error) {
	var sfs unix.Statfs_t

	if err := unix.Fstatfs(int(fd.Fd()), &sfs); err != nil {
		return 0, err
	}
	return int64(sfs.Iosize), nil
}
