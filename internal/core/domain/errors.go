package domain

import "errors"

// Domain errors represent calendar processing failures.
// These are distinct from infrastructure errors.
var (
	// ErrParse indicates an input source does not conform to the calendar
	// grammar. Always fatal: the run aborts with no partial output.
	ErrParse = errors.New("calendar parse failed")

	// ErrMissingUID indicates an event carries no UID and therefore no
	// identity key. Non-fatal: the event is dropped with a warning.
	ErrMissingUID = errors.New("event missing UID")

	// ErrInvalidInput indicates malformed or invalid input to a core
	// operation (nil calendar, empty processor name, ...).
	ErrInvalidInput = errors.New("invalid input")
)
