// meta.go - the metadata application stage
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

package copyfile

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// an applier propagates one attribute from the source snapshot to
// the destination descriptor
type applier func(s *State, fd *os.File, fi *Info) error

// each attribute is applied independently; one failing doesn't
// block the rest
var statAppliers = []struct {
	name string
	fp   applier
}{
	{"flags", applyFlags},
	{"owner", applyOwner},
	{"mode", applyMode},
	{"times", applyTimes},
}

// copyStat pushes the cached source stat info onto the destination
// descriptor. The stage is advisory: individual failures are
// warnings, never a hard error.
func (s *State) copyStat() error {
	for i := range statAppliers {
		a := &statAppliers[i]
		if err := a.fp(s, s.dfd.file, &s.sb); err != nil {
			s.warn("%s: set %s: %s", s.dst, a.name, err)
		}
	}
	return nil
}

func applyOwner(_ *State, fd *os.File, fi *Info) error {
	return fd.Chown(int(fi.Uid), int(fi.Gid))
}

func applyMode(_ *State, fd *os.File, fi *Info) error {
	return fd.Chmod(fi.Mode() & permAll)
}

// timestamps travel with whole-second precision only
func applyTimes(_ *State, fd *os.File, fi *Info) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(fi.Atim.Unix() * int64(time.Second)),
		unix.NsecToTimeval(fi.Mtim.Unix() * int64(time.Second)),
	}
	return unix.Futimes(int(fd.Fd()), tv)
}
