package iter

import "errors"

// Sentinel errors returned by the ...OrFail convenience forms.
var (
	// ErrNoMatch is returned by FindOrFail when no element satisfies the
	// predicate.
	ErrNoMatch = errors.New("iter: no element matches the given predicate")

	// ErrOutOfRange is returned by GetOrFail when the position is
	// negative or past the end of the source.
	ErrOutOfRange = errors.New("iter: position out of range")
)
