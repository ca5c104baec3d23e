// stat_test.go - test harness for the stat snapshot
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
	"path/filepath"
	"testing"
)

func TestStat(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fp := filepath.Join(tmpdir, "a")
	_, err := createFile(fp, 4096)
	assert(err == nil, "create: %s", err)

	st, err := os.Stat(fp)
	assert(err == nil, "os.stat: %s", err)

	fi, err := Stat(fp)
	assert(err == nil, "stat: %s", err)

	err = statEq(st, fi)
	assert(err == nil, "%s", err)
	assert(fi.Blksiz > 0, "blksize: saw %d", fi.Blksiz)
}

func TestFstatm(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	fp := filepath.Join(tmpdir, "a")
	_, err := createFile(fp, 1024)
	assert(err == nil, "create: %s", err)

	fd, err := os.Open(fp)
	assert(err == nil, "open: %s", err)
	defer fd.Close()

	var fi Info
	err = Fstatm(fd, &fi)
	assert(err == nil, "fstat: %s", err)

	st, err := os.Stat(fp)
	assert(err == nil, "os.stat: %s", err)

	err = statEq(st, &fi)
	assert(err == nil, "%s", err)
}

func TestLstatSymlink(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := getTmpdir(t)

	targ := filepath.Join(tmpdir, "a")
	lnk := filepath.Join(tmpdir, "l")

	_, err := createFile(targ, 256)
	assert(err == nil, "create: %s", err)

	err = os.Symlink(targ, lnk)
	assert(err == nil, "symlink: %s", err)

	fi, err := Lstat(lnk)
	assert(err == nil, "lstat: %s", err)
	assert(fi.Mode()&fs.ModeSymlink != 0, "lstat followed the link: %s", fi.Mode())

	fi, err = Stat(lnk)
	assert(err == nil, "stat: %s", err)
	assert(fi.Mode().IsRegular(), "stat didn't follow the link: %s", fi.Mode())
}

func statEq(st os.FileInfo, fi *Info) error {
	if st.Size() != fi.Size() {
		return fmt.Errorf("size: exp %d, saw %d", st.Size(), fi.Size())
	}
	if st.Mode() != fi.Mode() {
		return fmt.Errorf("mode: exp %#b, saw %#b", st.Mode(), fi.Mode())
	}
	if !st.ModTime().Equal(fi.ModTime()) {
		return fmt.Errorf("mtime: exp %s, saw %s", st.ModTime(), fi.ModTime())
	}
	return nil
}
