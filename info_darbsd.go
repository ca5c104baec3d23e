// info_darbsd.go - unix.Stat_t to Info for darwin and freebsd
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
	"io/fs"

	"golang.org/x/sys/unix"
)

func makeInfo(fi *Info, nm string, st *unix.Stat_t) {
	*fi = Info{
		Nam:   nm,
		Ino:   st.Ino,
		Nlink: uint64(st.Nlink),

		Mod: fs.FileMode(st.Mode & 0777),
		Uid: st.Uid,
		Gid: st.Gid,

		Flg: st.Flags,

		Siz:    st.Size,
		Blksiz: int64(st.Blksize),
		Dev:    uint64(st.Dev),
		Rdev:   uint64(st.Rdev),

		Atim: ts2time(st.Atim),
		Mtim: ts2time(st.Mtim),
		Ctim: ts2time(st.Ctim),
	}

	switch st.Mode & unix.S_IFMT {
	case unix.S_IFBLK:
		fi.Mod |= fs.ModeDevice
	case unix.S_IFCHR:
		fi.Mod |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		fi.Mod |= fs.ModeDir
	case unix.S_IFIFO:
		fi.Mod |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		fi.Mod |= fs.ModeSymlink
	case unix.S_IFREG:
		// nothing to do
	case unix.S_IFSOCK:
		fi.Mod |= fs.ModeSocket
	}
	if st.Mode&unix.S_ISGID != 0 {
		fi.Mod |= fs.ModeSetgid
	}
	if st.Mode&unix.S_ISUID != 0 {
		fi.Mod |= fs.ModeSetuid
	}
	if st.Mode&unix.S_ISVTX != 0 {
		fi.Mod |= fs.ModeSticky
	}
}
