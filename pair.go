// pair.go -- a concurrency safe map of copy results
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
	"github.com/puzpuzpuz/xsync/v3"
)

// Pair holds the stat snapshots of the two sides of one completed
// copy.
type Pair struct {
	Src, Dst *Info
}

// PairMap is a concurrency safe map of destination path to the
// corresponding Pair. Concurrent callers (one State per in-flight
// copy) can record their results here without extra locking.
type PairMap = xsync.MapOf[string, Pair]

// NewPairMap makes a new concurrent map of name to a Pair
func NewPairMap() *PairMap {
	return xsync.NewMapOf[string, Pair]()
}
