// Copyright (c) 2026 The Monetarium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segwit

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidTx indicates a serialized transaction that is too short
	// to contain the version and segwit marker region.
	ErrInvalidTx = ErrorKind("ErrInvalidTx")

	// ErrOutOfBounds indicates a field read that would run past the end
	// of the serialized transaction, meaning the input is truncated or
	// otherwise corrupt.
	ErrOutOfBounds = ErrorKind("ErrOutOfBounds")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a failure while parsing or rewriting a serialized
// transaction.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error kind via the Err field.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// txError creates an Error given a set of arguments.
func txError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
