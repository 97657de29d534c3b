// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package textfile

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies the failure behind an *Error.
type Kind int

// Error kinds.
const (
	// NotFound means the source could not be opened for reading or the
	// destination could not be created for writing.
	NotFound Kind = 1 + iota
	// ReadFailure means the file was opened but its contents could not be
	// read in full or were not valid UTF-8.
	ReadFailure
	// WriteFailure means the destination was created but the bytes could not
	// be written in full.
	WriteFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ReadFailure:
		return "read failure"
	case WriteFailure:
		return "write failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by the functions in this package.
type Error struct {
	Op   string // "read" or "write"
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) && pathErr.Path == e.Path {
		// Op and path are already in the message.
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, cause)
}

// Unwrap returns the underlying error, typically an *fs.PathError.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (_ Kind, ok bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
