package services

import "errors"

var (
	// ErrInvalidID means the caller supplied a malformed identifier to an
	// id-keyed lookup.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrNotFound means the lookup matched no record.
	ErrNotFound = errors.New("record not found")
)
