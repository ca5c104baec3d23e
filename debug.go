// debug.go - debug verbosity and diagnostic output
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
	"os"
	"strconv"
)

// DebugEnv is the environment variable holding the debug verbosity
// for callers that drive it from the process environment.
const DebugEnv = "COPYFILE_DEBUG"

// DebugFromEnv parses the DebugEnv variable into a verbosity level.
// A value that fails to parse yields level 1 rather than 0, so a
// malformed setting doesn't silently disable the output the caller
// asked for. Intended for the program startup path; the library
// itself only reads the environment when the DEBUG flag is set and
// no level was given via SetDebug.
func DebugFromEnv() uint32 {
	e := os.Getenv(DebugEnv)
	if e == "" {
		return 0
	}

	v, err := strconv.ParseUint(e, 0, 32)
	if err != nil && v == 0 {
		return 1
	}
	return uint32(v)
}

// nil-safe tracing helpers; without a logger the state is silent

func (s *State) debugf(lvl uint32, format string, args ...any) {
	if s.log != nil && s.flags&DEBUG != 0 && lvl <= s.debug {
		s.log.Debug(format, args...)
	}
}

func (s *State) warn(format string, args ...any) {
	if s.log != nil {
		s.log.Warn(format, args...)
	}
}
