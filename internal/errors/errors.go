// Package errors defines the error kinds shared by the scanner, the editor
// and the application shell. Every filesystem failure surfaces as an *Error
// carrying the operation and path it happened on.
package errors

import (
	"errors"
	"fmt"
)

// Standard library helpers re-exported so callers need a single import.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// Kind classifies an Error.
type Kind int

const (
	Unknown Kind = iota
	// IO covers read, write and directory enumeration failures.
	IO
	// NotADirectory is returned when a workspace target is not a directory.
	NotADirectory
	// Encoding is returned when file content is not valid UTF-8 text.
	Encoding
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "io error"
	case NotADirectory:
		return "not a directory"
	case Encoding:
		return "encoding error"
	default:
		return "unknown error"
	}
}

// Error is the application error type.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: IO})
// works without comparing paths.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Path == "" || t.Path == e.Path)
}

// NewIOError wraps a filesystem failure.
func NewIOError(op, path string, err error) *Error {
	return &Error{Kind: IO, Op: op, Path: path, Err: err}
}

// NewNotADirectoryError reports that path exists but is not a directory.
func NewNotADirectoryError(path string) *Error {
	return &Error{Kind: NotADirectory, Op: "not a directory:", Path: path}
}

// NewEncodingError reports that path does not hold UTF-8 text. detail
// describes what was found instead, e.g. a MIME type.
func NewEncodingError(path, detail string) *Error {
	var err error
	if detail != "" {
		err = fmt.Errorf("content is %s, not UTF-8 text", detail)
	}
	return &Error{Kind: Encoding, Op: "cannot decode", Path: path, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// IsIO reports whether err is an IO error.
func IsIO(err error) bool { return KindOf(err) == IO }

// IsNotADirectory reports whether err is a NotADirectory error.
func IsNotADirectory(err error) bool { return KindOf(err) == NotADirectory }

// IsEncoding reports whether err is an Encoding error.
func IsEncoding(err error) bool { return KindOf(err) == Encoding }
