// data.go - the block transfer stage
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
	"io"

	"golang.org/x/sys/unix"
)

// used when neither the destination fs nor the source stat yield a
// usable block size
const _defBlockSize = 64 * 1024

// writes of zero bytes tolerated back-to-back before the
// destination is declared stalled
const _maxStall = 5

// copyData streams the source to the destination one block at a
// time and then trims the destination to the exact source size, so
// a pre-existing larger destination does not keep stale tail bytes.
func (s *State) copyData() error {
	blen := s.blockSize()
	s.debugf(3, "copying with block size %d", blen)

	// advisory; a filesystem that can't preallocate just ignores us
	preallocate(s.dfd.file, s.sb.Siz)

	buf := make([]byte, blen)
	if err := transferData(s.dfd.file, s.sfd.file, buf); err != nil {
		return &CopyError{"data", s.src, s.dst, err}
	}

	if err := s.dfd.file.Truncate(s.sb.Siz); err != nil {
		return &CopyError{"truncate", s.src, s.dst, err}
	}
	return nil
}

// blockSize picks the destination filesystem's preferred I/O size,
// falling back to the source's stat block size.
func (s *State) blockSize() int {
	if n, err := iosize(s.dfd.file); err == nil && n > 0 {
		return int(n)
	}
	if s.sb.Blksiz > 0 {
		return int(s.sb.Blksiz)
	}
	return _defBlockSize
}

// transferData reads up to one block from src and flushes it fully
// to dst before the next read. A zero byte read ends the transfer.
func transferData(dst io.Writer, src io.Reader, buf []byte) error {
	for {
		nread, err := src.Read(buf)
		if nread > 0 {
			if werr := fullWrite(dst, buf[:nread]); werr != nil {
				return werr
			}
		}

		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		case nread == 0:
			return nil
		}
	}
}

// fullWrite pushes all of 'b' into 'w', tracking what is left after
// each partial write. Too many consecutive zero byte writes means
// the descriptor is wedged and we give up.
func fullWrite(w io.Writer, b []byte) error {
	stall := 0
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			stall++
			if stall >= _maxStall {
				return fmt.Errorf("%d zero sized writes: %w", stall, unix.EAGAIN)
			}
			continue
		}
		stall = 0
		b = b[n:]
	}
	return nil
}
