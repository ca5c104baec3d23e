// flags_test.go - flag parsing and debug env tests
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
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	assert := newAsserter(t)

	f, err := ParseFlags("data,stat,excl")
	assert(err == nil, "parse: %s", err)
	assert(f == DATA|STAT|EXCL, "parse: exp %#x, saw %#x", DATA|STAT|EXCL, f)

	// names are case insensitive; blanks are tolerated
	f, err = ParseFlags(" Data , UNLINK ")
	assert(err == nil, "parse: %s", err)
	assert(f == DATA|UNLINK, "parse: exp %#x, saw %#x", DATA|UNLINK, f)

	f, err = ParseFlags("all")
	assert(err == nil, "parse: %s", err)
	assert(f == ALL, "parse: exp %#x, saw %#x", ALL, f)
	assert(f&DATA != 0 && f&STAT != 0, "all misses data or stat")

	f, err = ParseFlags("nofollow")
	assert(err == nil, "parse: %s", err)
	assert(f == NOFOLLOW_SRC|NOFOLLOW_DST, "nofollow: saw %#x", f)

	_, err = ParseFlags("data,bogus")
	assert(err != nil, "bogus flag accepted")
}

func TestFlagsString(t *testing.T) {
	assert := newAsserter(t)

	s := (DATA | STAT | EXCL).String()
	for _, nm := range []string{"data", "stat", "excl"} {
		assert(strings.Contains(s, nm), "%q missing %s", s, nm)
	}

	assert(Flags(0).String() == "", "zero flags: saw %q", Flags(0).String())

	// String and ParseFlags are inverses for single bits
	for _, nm := range []string{"data", "stat", "unlink", "debug"} {
		f, err := ParseFlag(nm)
		assert(err == nil, "parse %s: %s", nm, err)
		assert(f.String() == nm, "roundtrip %s: saw %q", nm, f.String())
	}
}

func TestDebugFromEnv(t *testing.T) {
	assert := newAsserter(t)

	t.Setenv(DebugEnv, "3")
	assert(DebugFromEnv() == 3, "exp 3, saw %d", DebugFromEnv())

	t.Setenv(DebugEnv, "0x10")
	assert(DebugFromEnv() == 16, "exp 16, saw %d", DebugFromEnv())

	// unparsable values clamp to 1 instead of silently disabling
	t.Setenv(DebugEnv, "bogus")
	assert(DebugFromEnv() == 1, "exp 1, saw %d", DebugFromEnv())

	t.Setenv(DebugEnv, "0")
	assert(DebugFromEnv() == 0, "exp 0, saw %d", DebugFromEnv())

	t.Setenv(DebugEnv, "")
	assert(DebugFromEnv() == 0, "exp 0, saw %d", DebugFromEnv())
}
