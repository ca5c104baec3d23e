// flags.go - the copy flag bitset
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
	"strings"
)

// Flags select the stages a copy runs and how destination conflicts
// are resolved. The individual bits combine freely.
type Flags uint32

const (
	// stage selection
	ACL   Flags = 1 << iota // accepted for compatibility; no effect
	STAT                    // copy ownership, mode, flags, timestamps
	XATTR                   // accepted for compatibility; no effect
	DATA                    // copy file contents

	// accepted for compatibility; no effect
	SECURITY
)

const (
	// destination conflict policy
	EXCL         Flags = 1 << 17 // destination must not exist
	NOFOLLOW_SRC Flags = 1 << 18 // don't follow a symlinked source
	NOFOLLOW_DST Flags = 1 << 19 // don't follow a symlinked destination
	UNLINK       Flags = 1 << 21 // remove destination before creating it

	// verbose tracing via the state's logger
	DEBUG Flags = 1 << 31
)

// composites mirroring the classic option table
const (
	NOFOLLOW = NOFOLLOW_SRC | NOFOLLOW_DST
	METADATA = STAT | XATTR | ACL | SECURITY
	ALL      = METADATA | DATA
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{DATA, "data"},
	{STAT, "stat"},
	{XATTR, "xattr"},
	{ACL, "acl"},
	{SECURITY, "security"},
	{EXCL, "excl"},
	{UNLINK, "unlink"},
	{NOFOLLOW_SRC, "nofollow_src"},
	{NOFOLLOW_DST, "nofollow_dst"},
	{DEBUG, "debug"},
}

// String returns the comma separated names of the bits set in f.
func (f Flags) String() string {
	var v []string

	for i := range flagNames {
		fl := &flagNames[i]
		if f&fl.flag != 0 {
			v = append(v, fl.name)
		}
	}
	return strings.Join(v, ",")
}

// ParseFlag maps a single case-insensitive flag name to its bit.
// The composite names "nofollow", "metadata" and "all" are accepted
// as well.
func ParseFlag(nm string) (Flags, error) {
	switch strings.ToLower(strings.TrimSpace(nm)) {
	case "nofollow":
		return NOFOLLOW, nil
	case "metadata":
		return METADATA, nil
	case "all":
		return ALL, nil
	}

	for i := range flagNames {
		fl := &flagNames[i]
		if strings.EqualFold(nm, fl.name) {
			return fl.flag, nil
		}
	}
	return 0, fmt.Errorf("copyfile: unknown flag %q", nm)
}

// ParseFlags parses a comma separated list of flag names into a
// combined bitset.
func ParseFlags(s string) (Flags, error) {
	var f Flags

	for _, nm := range strings.Split(s, ",") {
		if nm = strings.TrimSpace(nm); nm == "" {
			continue
		}
		fl, err := ParseFlag(nm)
		if err != nil {
			return 0, err
		}
		f |= fl
	}
	return f, nil
}
