package store

import "errors"

var (
	// ErrSourceUnavailable means a load source could not be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrParse means a load source exists but is not well-formed.
	ErrParse = errors.New("parse failure")
	// ErrSectionNotFound means an operation named a section the store does
	// not have.
	ErrSectionNotFound = errors.New("section not found")
	// ErrDestinationUnwritable means Persist could not write its destination.
	ErrDestinationUnwritable = errors.New("destination unwritable")
	// ErrUnexpected covers every other failure.
	ErrUnexpected = errors.New("unexpected failure")
)
