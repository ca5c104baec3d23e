// prealloc_other.go - platforms without preallocation support
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

//go:build unix && !linux && !darwin

package copyfile

import (
	"os"
)

func preallocate(_ *os.File, _ int64) {
}
