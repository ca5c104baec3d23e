// chflags_darbsd.go - propagate BSD file flags
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

// A filesystem without flag support (NFS, typically) only matters
// when the source actually had flags to carry over.
func applyFlags(_ *State, fd *os.File, fi *Info) error {
	err := unix.Fchflags(int(fd.Fd()), int(fi.Flg))
	if err != nil && fi.Flg == 0 && errAny(err, unix.EOPNOTSUPP) {
		return nil
	}
	return err
}
