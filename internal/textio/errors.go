// SPDX-License-Identifier: MPL-2.0

package textio

import (
	"errors"
	"io/fs"
)

var (
	// ErrOpen is the sentinel error wrapped by OpenError.
	ErrOpen = errors.New("cannot open input")
	// ErrRead is the sentinel error wrapped by ReadError.
	ErrRead = errors.New("cannot read input")
	// ErrIsDirectory is the cause reported when a token names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

type (
	// OpenError reports a token that could not be turned into a stream.
	// It is per-file and non-fatal for utilities that take several inputs.
	OpenError struct {
		// Name is the token as the user supplied it.
		Name string
		// Err is the underlying cause.
		Err error
	}

	// ReadError reports an I/O failure after a stream was opened.
	// Whatever was read from the stream before the failure must be discarded.
	ReadError struct {
		Name string
		Err  error
	}
)

// Error renders "<name>: <cause>". The *fs.PathError layer is dropped because
// the name already identifies the path.
func (e *OpenError) Error() string {
	return e.Name + ": " + causeText(e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpenError) Unwrap() []error { return []error{ErrOpen, e.Err} }

// Error renders "<name>: <cause>".
func (e *ReadError) Error() string {
	if e.Name == "" || e.Name == StdinName {
		return causeText(e.Err)
	}
	return e.Name + ": " + causeText(e.Err)
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() []error { return []error{ErrRead, e.Err} }

func causeText(err error) string {
	if err == nil {
		return "unknown error"
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
