package ir

import "errors"

var (
	errInternal = errors.New("internal error")

	// ErrKeyConflict reports a key redefinition the grammar forbids.
	ErrKeyConflict = errors.New("key conflict")
)
