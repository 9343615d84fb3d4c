package ot

import "errors"

// Apply reports exactly these two domain error kinds. Compose and Transform
// are total over canonical operations and never return an error; malformed
// raw constructor input is a programmer error and panics instead (see
// serde.go).
var (
	// ErrRetainTooLong is returned when a Retain component extends past the
	// end of the document being applied to.
	ErrRetainTooLong = errors.New("ot: retain extends past end of document")

	// ErrDeleteMismatch is returned when a Delete component could not
	// consume its declared length from the remaining document.
	ErrDeleteMismatch = errors.New("ot: delete could not consume requested length")
)
