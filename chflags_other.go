// chflags_other.go - platforms without chflags(2)
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

//go:build unix && !darwin && !freebsd

package copyfile

import (
	"os"
)

// no flags word to propagate on these platforms
func applyFlags(_ *State, _ *os.File, _ *Info) error {
	return nil
}
