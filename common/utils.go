package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Assertions cover internal invariants and documented API preconditions
// whose violation is a programming error (a file table constructed with no
// root paths, a nil plan root). Conditions that can legitimately arise at
// runtime (an unregistered table name, a non-filesystem scan source) return
// a QPMLError instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
