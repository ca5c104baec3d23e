// state.go - lifecycle of an in-flight copy
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
	"io/fs"
	"os"

	"github.com/opencoff/go-logger"
	"golang.org/x/sys/unix"
)

// ownership of a descriptor held by a State
type fdOwner int

const (
	fdUnset    fdOwner = iota // never opened for this state
	fdBorrowed                // supplied by the caller; caller closes it
	fdOwned                   // opened by the state; state closes it
)

// fdesc pairs a descriptor with its ownership; the zero value is
// the unset state.
type fdesc struct {
	file  *os.File
	owner fdOwner
}

func (d *fdesc) open() bool {
	return d.owner != fdUnset && d.file != nil
}

// reset closes an internally owned descriptor and marks the slot
// unset. Borrowed descriptors are left for the caller to close.
func (d *fdesc) reset() error {
	var err error
	if d.owner == fdOwned && d.file != nil {
		err = d.file.Close()
	}
	d.file = nil
	d.owner = fdUnset
	return err
}

// Field names one of the state slots reachable via Get and Set.
type Field int

const (
	FieldSrcFd Field = iota
	FieldDstFd
	FieldSrcPath
	FieldDstPath
)

// State tracks both sides of one copy operation: the paths, the
// descriptors and their ownership, the cached stat info of the
// source and the flag set of the current call. A State is NOT safe
// for concurrent use; callers wanting parallel copies use one State
// per in-flight copy.
type State struct {
	src string
	dst string

	sfd fdesc
	dfd fdesc

	// stat snapshot of the source; filled by the validation step
	// and reused by the metadata stage
	sb     Info
	haveSb bool

	flags Flags
	debug uint32

	log logger.Logger
}

// NewState returns a fresh State with both descriptor slots unset.
func NewState() *State {
	return &State{}
}

// Close releases the state: internally opened descriptors are
// closed, stored paths are dropped. A failure to close the
// destination descriptor is reported, but the state is fully
// cleared regardless. Close on a nil state is a no-op and it is
// safe to call Close more than once.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	// a source close failure is not actionable this late
	if err := s.sfd.reset(); err != nil {
		s.warn("%s: close source: %s", s.src, err)
	}
	err := s.dfd.reset()

	dst := s.dst
	s.src, s.dst = "", ""
	s.haveSb = false

	if err != nil {
		return &CopyError{"close", "", dst, err}
	}
	return nil
}

// SetPath stores a new source or destination path. Setting a path
// that differs from the stored one closes any descriptor the state
// opened for that side - this is what makes re-using one State for
// several copies safe. Setting the identical path leaves the
// descriptor alone, and an empty value just clears the stored path.
func (s *State) SetPath(f Field, val string) error {
	var p *string
	var d *fdesc

	switch f {
	case FieldSrcPath:
		p, d = &s.src, &s.sfd
	case FieldDstPath:
		p, d = &s.dst, &s.dfd
	default:
		return &CopyError{"set-path", s.src, s.dst, unix.EINVAL}
	}

	if val == "" {
		*p = ""
		return nil
	}

	if *p == val {
		return nil
	}

	if *p != "" && d.owner == fdOwned {
		s.debugf(4, "closing fd for %s; path now %s", *p, val)
		if err := d.reset(); err != nil {
			s.warn("%s: close on path change: %s", val, err)
		}
	}

	*p = val
	return nil
}

// Get reads one of the state slots. The returned value is a string
// for the path fields and an *os.File for the descriptor fields
// (nil when the slot is unset).
func (s *State) Get(f Field) (any, error) {
	switch f {
	case FieldSrcFd:
		return s.sfd.file, nil
	case FieldDstFd:
		return s.dfd.file, nil
	case FieldSrcPath:
		return s.src, nil
	case FieldDstPath:
		return s.dst, nil
	}
	return nil, &CopyError{"get", s.src, s.dst, unix.EINVAL}
}

// Set writes one of the state slots. Descriptors stored this way are
// borrowed - the caller keeps the obligation to close them. Paths go
// through the SetPath rules.
func (s *State) Set(f Field, v any) error {
	switch f {
	case FieldSrcFd, FieldDstFd:
		fd, ok := v.(*os.File)
		if !ok || fd == nil {
			return &CopyError{"set", s.src, s.dst, unix.EINVAL}
		}
		d := &s.sfd
		if f == FieldDstFd {
			d = &s.dfd
		}
		*d = fdesc{file: fd, owner: fdBorrowed}
		return nil

	case FieldSrcPath, FieldDstPath:
		nm, ok := v.(string)
		if !ok {
			return &CopyError{"set", s.src, s.dst, unix.EINVAL}
		}
		return s.SetPath(f, nm)
	}
	return &CopyError{"set", s.src, s.dst, unix.EINVAL}
}

// SetLogger attaches a logger for warnings and debug traces. Without
// one the state is silent.
func (s *State) SetLogger(log logger.Logger) {
	s.log = log
}

// SetDebug sets the debug verbosity; higher means chattier. The
// level is only consulted when the DEBUG flag is passed to a copy.
func (s *State) SetDebug(lvl uint32) {
	s.debug = lvl
}

// SourceInfo returns a snapshot of the source stat info cached by
// the last copy, or nil if no copy validated a source yet.
func (s *State) SourceInfo() *Info {
	if !s.haveSb {
		return nil
	}
	ii := s.sb
	return &ii
}

// the mode bits that chmod may carry over; everything but the type
const permAll = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

func supportedType(m fs.FileMode) bool {
	return m.IsRegular() || m.IsDir() || m&fs.ModeSymlink != 0
}
