// verify.go - post-copy content verification
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

package main

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/opencoff/go-mmap"
)

// verifyCopy compares the contents of 'src' and 'dst' via their
// checksums.
func verifyCopy(src, dst string) error {
	a, err := fileCksum(src)
	if err != nil {
		return err
	}

	b, err := fileCksum(dst)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(a, b) != 1 {
		return fmt.Errorf("%s: content differs from %s", dst, src)
	}
	return nil
}

func fileCksum(nm string) ([]byte, error) {
	fd, err := os.Open(nm)
	if err != nil {
		return nil, err
	}

	defer fd.Close()

	h := sha256.New()
	_, err = mmap.Reader(fd, func(b []byte) error {
		h.Write(b)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%s: cksum: %w", nm, err)
	}

	return h.Sum(nil), nil
}
