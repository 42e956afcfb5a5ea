package common

import "fmt"

type QPMLErrorCode int

const (
	// DuplicateObjectError indicates an attempt to register a table source
	// under a name that is already taken.
	DuplicateObjectError QPMLErrorCode = iota
	// NoSuchObjectError indicates a lookup for a table source that was
	// never registered.
	NoSuchObjectError
	// UnexpectedSourceError indicates a scan node whose table source is not
	// the filesystem-backed kind the diagram builder requires.
	UnexpectedSourceError
)

func (ec QPMLErrorCode) String() string {
	switch ec {
	case DuplicateObjectError:
		return "DuplicateObjectError"
	case NoSuchObjectError:
		return "NoSuchObjectError"
	case UnexpectedSourceError:
		return "UnexpectedSourceError"
	}
	return "unknown"
}

// QPMLError is the custom error type for the library.
// It wraps a specific QPMLErrorCode with a detailed message.
//
// By implementing the built-in 'error' interface, it integrates seamlessly
// with Go's error handling while carrying enough metadata for callers to
// tell registry misuse apart from builder assumption violations.
type QPMLError struct {
	Code      QPMLErrorCode
	ErrString string
}

func (e QPMLError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}
