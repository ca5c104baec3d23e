// open.go - turn the state's paths into ready descriptors
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
	"errors"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// openEntries resolves the stored paths into descriptors; slots the
// caller already populated are left alone. Both descriptors must be
// open when this returns.
func (s *State) openEntries() error {
	if s.src != "" && s.sfd.owner == fdUnset {
		if err := s.openSource(); err != nil {
			return err
		}
	}

	if s.dst != "" && s.dfd.owner == fdUnset {
		if err := s.openDest(); err != nil {
			return err
		}
	}

	if !s.sfd.open() || !s.dfd.open() {
		s.debugf(1, "descriptors not open (src: %v, dst: %v)",
			s.sfd.open(), s.dfd.open())
		return &CopyError{"open", s.src, s.dst, unix.EINVAL}
	}
	return nil
}

// stat the source, filter out entry types the engine can't copy and
// open it read-only. Under NOFOLLOW_SRC the source is lstat'ed and
// opened with O_NOFOLLOW; a source that is itself a symlink is then
// rejected - there is no byte stream behind an unfollowed link.
func (s *State) openSource() error {
	var err error
	if s.flags&NOFOLLOW_SRC != 0 {
		err = Lstatm(s.src, &s.sb)
	} else {
		err = Statm(s.src, &s.sb)
	}
	if err != nil {
		return &CopyError{"stat-src", s.src, s.dst, err}
	}
	s.haveSb = true

	if m := s.sb.Mode(); !m.IsRegular() && !m.IsDir() {
		s.debugf(1, "unsupported source type %s (%s)", m, s.src)
		return &CopyError{"open-src", s.src, s.dst, unix.ENOTSUP}
	}

	oflag := os.O_RDONLY
	if s.flags&NOFOLLOW_SRC != 0 {
		oflag |= unix.O_NOFOLLOW
	}

	fd, err := os.OpenFile(s.src, oflag, 0)
	if err != nil {
		return &CopyError{"open-src", s.src, s.dst, err}
	}
	s.sfd = fdesc{file: fd, owner: fdOwned}
	s.debugf(2, "open successful on source (%s)", s.src)
	return nil
}

// create or open the destination per the flag policy. The retry
// ladder below is bounded: each errno branch either revises the open
// flags once and retries or gives up.
func (s *State) openDest() error {
	// UNLINK: pre-remove the destination; a missing entry is fine
	if s.flags&UNLINK != 0 {
		if err := os.Remove(s.dst); err != nil && !os.IsNotExist(err) {
			return &CopyError{"remove-dst", s.src, s.dst, err}
		}
	}

	nofollow := 0
	if s.flags&NOFOLLOW_DST != 0 {
		nofollow = unix.O_NOFOLLOW
	}

	perm := s.sb.Mode() & permAll

	if s.sb.IsDir() {
		if err := os.Mkdir(s.dst, perm); err != nil {
			if !errors.Is(err, fs.ErrExist) || s.flags&EXCL != 0 {
				return &CopyError{"mkdir-dst", s.src, s.dst, err}
			}
		}
		fd, err := os.OpenFile(s.dst, os.O_RDONLY|nofollow, 0)
		if err != nil {
			return &CopyError{"open-dst", s.src, s.dst, err}
		}
		s.dfd = fdesc{file: fd, owner: fdOwned}
		s.debugf(2, "open successful on destination dir (%s)", s.dst)
		return nil
	}

	// regular file: try an exclusive create first and unwind the
	// failure causes one by one. We ask for owner write even if the
	// source lacked it so the data stage can proceed; STAT puts the
	// real mode back later.
	oflag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	triedChmod := false

	for {
		fd, err := os.OpenFile(s.dst, oflag|nofollow, perm|0200)
		if err == nil {
			s.dfd = fdesc{file: fd, owner: fdOwned}
			s.debugf(2, "open successful on destination (%s)", s.dst)
			return nil
		}

		switch {
		case errors.Is(err, fs.ErrExist):
			s.debugf(3, "open failed, retrying (%s)", s.dst)
			if s.flags&EXCL != 0 || oflag&os.O_CREATE == 0 {
				return &CopyError{"open-dst", s.src, s.dst, err}
			}
			oflag &^= os.O_CREATE | os.O_EXCL
			continue

		case errors.Is(err, fs.ErrPermission):
			if !triedChmod {
				triedChmod = true
				if cerr := os.Chmod(s.dst, perm|0200); cerr == nil {
					continue
				}
			}
			return &CopyError{"open-dst", s.src, s.dst, err}

		case errors.Is(err, unix.EISDIR):
			s.debugf(3, "open failed; destination is a directory (%s)", s.dst)
			if s.flags&EXCL != 0 || s.flags&DATA != 0 {
				return &CopyError{"open-dst", s.src, s.dst, err}
			}
			oflag = os.O_RDONLY
			continue

		default:
			return &CopyError{"open-dst", s.src, s.dst, err}
		}
	}
}
