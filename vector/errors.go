package vector

import "errors"

// Sentinel errors returned by Vector and Collection operations.
//
// Callers should use errors.Is for comparisons:
//
//	v, err := vector.Parse(input)
//	if errors.Is(err, vector.ErrFormat) {
//	    // ask the user again
//	}
var (
	// ErrFormat is returned when a textual vector is not exactly two
	// comma-separated finite numbers.
	ErrFormat = errors.New("vector: malformed vector text")

	// ErrDecode is returned when a JSON payload has the wrong shape, is
	// missing the "x" or "y" key, holds a non-numeric value, or is truncated.
	ErrDecode = errors.New("vector: malformed vector JSON")

	// ErrEncode is returned when a vector with a NaN or infinite component is
	// marshalled. JSON has no representation for those values.
	ErrEncode = errors.New("vector: vector is not encodable as JSON")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrTypeMismatch is returned by [Collection.AddValue] when the value is
	// not a Vector.
	ErrTypeMismatch = errors.New("vector: value is not a Vector")
)
