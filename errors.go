package pie3d

import "errors"

// Sentinel errors for the pie3d package.
var (
	// ErrZeroTotal is returned when the slice magnitudes sum to zero.
	// No draw request is issued in that case.
	ErrZeroTotal = errors.New("pie3d: total magnitude is zero")

	// ErrNegativeValue is returned for a negative, NaN or infinite magnitude.
	ErrNegativeValue = errors.New("pie3d: magnitude must be a finite non-negative number")

	// ErrNoRoom is returned when margins, title and legend leave no area for the pie.
	ErrNoRoom = errors.New("pie3d: no room left for the pie")

	// ErrMalformedColor is returned by ParseHex for anything but 6 hex digits.
	ErrMalformedColor = errors.New("pie3d: malformed color")

	// ErrInvalidConfig is wrapped by Config.Validate with the offending field.
	ErrInvalidConfig = errors.New("pie3d: invalid config")
)
