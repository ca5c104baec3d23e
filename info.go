// info.go - stat snapshot of a file system entry
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
	"fmt"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Info is a stat(2) snapshot of one file system entry. It carries
// everything the metadata stage propagates - ownership, mode, the
// BSD flags word, timestamps - plus the size and preferred block
// size the data stage consumes.
type Info struct {
	Nam   string
	Ino   uint64
	Nlink uint64

	Mod fs.FileMode
	Uid uint32
	Gid uint32

	// BSD st_flags; zero on platforms without the concept
	Flg uint32

	Siz    int64
	Blksiz int64
	Dev    uint64
	Rdev   uint64

	Atim time.Time
	Mtim time.Time
	Ctim time.Time
}

var _ fs.FileInfo = &Info{}

// Stat is like os.Stat() but returns the full snapshot
func Stat(nm string) (*Info, error) {
	var ii Info
	if err := Statm(nm, &ii); err != nil {
		return nil, err
	}
	return &ii, nil
}

// Statm is like Stat above - except it uses caller
// supplied memory for the stat(2) info
func Statm(nm string, fi *Info) error {
	var st unix.Stat_t

	if err := unix.Stat(nm, &st); err != nil {
		return err
	}

	makeInfo(fi, nm, &st)
	return nil
}

// Lstat is like os.Lstat() but returns the full snapshot
func Lstat(nm string) (*Info, error) {
	var ii Info
	if err := Lstatm(nm, &ii); err != nil {
		return nil, err
	}
	return &ii, nil
}

// Lstatm is like Lstat except it uses the caller's
// supplied memory.
func Lstatm(nm string, fi *Info) error {
	var st unix.Stat_t

	if err := unix.Lstat(nm, &st); err != nil {
		return err
	}

	makeInfo(fi, nm, &st)
	return nil
}

// Fstatm snapshots an already open descriptor into 'fi'.
func Fstatm(fd *os.File, fi *Info) error {
	var st unix.Stat_t

	if err := unix.Fstat(int(fd.Fd()), &st); err != nil {
		return err
	}

	makeInfo(fi, fd.Name(), &st)
	return nil
}

func (ii *Info) String() string {
	return fmt.Sprintf("%s: %d; %s", ii.Name(), ii.Siz, ii.Mode().String())
}

// fs.FileInfo methods of Info
func (ii *Info) Name() string {
	return ii.Nam
}

func (ii *Info) Size() int64 {
	return ii.Siz
}

func (ii *Info) Mode() fs.FileMode {
	return ii.Mod
}

func (ii *Info) ModTime() time.Time {
	return ii.Mtim
}

func (ii *Info) IsDir() bool {
	m := ii.Mode()
	return m.IsDir()
}

func (ii *Info) Sys() any {
	return ii
}

func ts2time(a unix.Timespec) time.Time {
	return time.Unix(int64(a.Sec), int64(a.Nsec))
}
