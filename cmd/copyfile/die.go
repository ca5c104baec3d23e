// die.go -- print a message and exit
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
	"fmt"
	"os"
)

func Die(s string, v ...interface{}) {
	m := fmt.Sprintf("%s: %s", Z, fmt.Sprintf(s, v...))
	if n := len(m); n > 0 && m[n-1] != '\n' {
		m += "\n"
	}
	os.Stderr.WriteString(m)
	os.Exit(1)
}
