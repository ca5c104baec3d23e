// copyfile.go - copy a single file system entry with optional metadata
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

// Package copyfile copies one file system entry - a regular file, a
// directory entry or a symlink - from a source to a destination,
// optionally propagating the POSIX metadata (owner, mode, flags,
// timestamps) of the source. The semantics follow the classic
// copyfile(3) model: callers pick the stages to run via a flag bitset
// and may carry an explicit State across calls to reuse paths or
// descriptors.
//
// The package is unix-only.
package copyfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Copy copies the entry at 'src' to 'dst'. The stages that run are
// selected by 'flags' (DATA, STAT etc). 'state' may be nil - in that
// case a State is created for this call and released before Copy
// returns. A caller supplied state keeps its descriptors and paths
// across calls; see State.SetPath for the reuse rules.
//
// An empty 'src' or 'dst' keeps the path already stored in the state.
func Copy(dst, src string, state *State, flags Flags) error {
	if src == "" && dst == "" && state == nil {
		return &CopyError{"copy", src, dst, unix.EINVAL}
	}

	s := state
	if s == nil {
		s = NewState()
	}

	s.preamble(flags)

	var err error
	if src != "" {
		err = s.SetPath(FieldSrcPath, src)
	}
	if err == nil && dst != "" {
		err = s.SetPath(FieldDstPath, dst)
	}

	if err == nil {
		if err = s.openEntries(); err == nil {
			err = s.runStages()
		}
	}

	if state == nil {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// CopyFd copies the already open entry 'src' to the already open
// 'dst'. The caller owns both descriptors and remains responsible
// for closing them; the state only borrows them. CopyFd lets a
// caller do its own path resolution and security checks before
// handing over the descriptors.
func CopyFd(dst, src *os.File, state *State, flags Flags) error {
	if src == nil || dst == nil {
		return &CopyError{"copyfd", "", "", unix.EINVAL}
	}

	s := state
	if s == nil {
		s = NewState()
	}

	s.preamble(flags)

	if s.sfd.owner == fdUnset {
		s.debugf(2, "adopting caller source fd %d", int(src.Fd()))
		s.sfd = fdesc{file: src, owner: fdBorrowed}
	}
	if s.dfd.owner == fdUnset {
		s.debugf(2, "adopting caller destination fd %d", int(dst.Fd()))
		s.dfd = fdesc{file: dst, owner: fdBorrowed}
	}

	err := s.fcopy()

	if state == nil {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// CopyEntry is a one-shot convenience wrapper around Copy; it uses a
// private state for the duration of the call.
func CopyEntry(dst, src string, flags Flags) error {
	return Copy(dst, src, nil, flags)
}

// shared prelude of Copy and CopyFd: record the flag set and resolve
// the debug verbosity. The environment is consulted only when the
// caller asked for DEBUG but never supplied a level via SetDebug.
func (s *State) preamble(flags Flags) {
	s.flags = flags
	if flags&DEBUG != 0 && s.debug == 0 {
		s.debug = DebugFromEnv()
	}
	s.debugf(2, "flags set to %s", flags)
}

// descriptor half of CopyFd: validate the source type, widen the
// destination perms so the later stages can write to it and restore
// them when no metadata copy was requested.
func (s *State) fcopy() error {
	if err := Fstatm(s.sfd.file, &s.sb); err != nil {
		return &CopyError{"fstat-src", s.src, s.dst, err}
	}
	s.haveSb = true

	if !supportedType(s.sb.Mode()) {
		return &CopyError{"fstat-src", s.src, s.dst, unix.ENOTSUP}
	}

	var dsb Info
	havePerm := false
	if err := Fstatm(s.dfd.file, &dsb); err != nil {
		s.warn("fstat on destination fd: %s", err)
	} else {
		havePerm = true
		// owner must be able to write the data and the metadata,
		// whatever the destination mode ends up being
		if err = s.dfd.file.Chmod(dsb.Mode()&permAll | 0600); err != nil {
			s.warn("chmod on destination fd: %s", err)
		}
	}

	err := s.runStages()

	if err == nil && s.flags&STAT == 0 && havePerm {
		if cerr := s.dfd.file.Chmod(dsb.Mode() & permAll); cerr != nil {
			s.warn("restoring destination mode: %s", cerr)
		}
	}
	return err
}

// runStages dispatches the data and metadata stages once both
// descriptors are ready. A data stage failure removes the (partial)
// destination when its path is known; a metadata failure keeps
// whatever data was already transferred.
func (s *State) runStages() error {
	if !s.sfd.open() || !s.dfd.open() {
		s.debugf(1, "descriptors not open (src: %v, dst: %v)",
			s.sfd.open(), s.dfd.open())
		return &CopyError{"copy", s.src, s.dst, unix.EINVAL}
	}

	if s.flags&DATA != 0 {
		if err := s.copyData(); err != nil {
			s.warn("%s: data copy: %s", s.dst, err)
			if s.dst != "" {
				if rmerr := os.Remove(s.dst); rmerr != nil {
					s.warn("%s: remove: %s", s.dst, rmerr)
				}
			}
			return err
		}
	}

	if s.flags&STAT != 0 {
		if err := s.copyStat(); err != nil {
			s.warn("%s: set stat info: %s", s.dst, err)
			return err
		}
	}
	return nil
}
