// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package textfile reads and writes whole UTF-8 text files.
//
// Every function returns an *Error on failure so that callers can tell a
// missing file apart from a failed read or write and decide for themselves
// whether to retry, propagate, or give up. No function returns a partial
// result alongside an error.
package textfile

import (
	"io"
	"os"
	"strings"

	"github.com/yourbase/textutil/textutil"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ReadString returns the entire contents of the file at path. The contents
// must be valid UTF-8.
func ReadString(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &Error{Op: "read", Path: path, Kind: NotFound, Err: err}
	}
	defer f.Close()

	sb := new(strings.Builder)
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		sb.Grow(int(info.Size()))
	}
	if _, err := io.Copy(sb, transform.NewReader(f, encoding.UTF8Validator)); err != nil {
		return "", &Error{Op: "read", Path: path, Kind: ReadFailure, Err: err}
	}
	return sb.String(), nil
}

// ReadLines returns the contents of the file at path split on "\n".
// See textutil.SplitLines for details.
func ReadLines(path string) ([]string, error) {
	s, err := ReadString(path)
	if err != nil {
		return nil, err
	}
	return textutil.SplitLines(s), nil
}

// ReadChars returns the contents of the file at path split into code points,
// preceded by an empty fragment. See textutil.SplitChars for details.
func ReadChars(path string) ([]string, error) {
	s, err := ReadString(path)
	if err != nil {
		return nil, err
	}
	return textutil.SplitChars(s), nil
}

// Write creates or truncates the file at path and writes content to it.
// Write does not create missing parent directories.
func Write(content, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "write", Path: path, Kind: NotFound, Err: err}
	}
	_, err = io.WriteString(f, content)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return &Error{Op: "write", Path: path, Kind: WriteFailure, Err: err}
	}
	return nil
}
