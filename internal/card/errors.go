package card

import "errors"

// Validation failures are exposed as sentinels so callers can branch with
// errors.Is. Every setter validates before it assigns: a failed call leaves
// the embed exactly as it was.
var (
	// ErrWidthOutOfRange is returned when a requested column width is not
	// strictly between 2 and 47.
	ErrWidthOutOfRange = errors.New("width out of range")

	// ErrEmptyDescription is returned by SetDescription for empty input.
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrFooterTooLong is returned when a footer exceeds MaxFooterLen bytes.
	ErrFooterTooLong = errors.New("footer too long")

	// ErrBlankField is returned when a field name or value is empty after
	// trimming.
	ErrBlankField = errors.New("field name and value must be non-empty")

	// ErrInvalidFieldShape is returned by NormalizeFields for values that are
	// not a Field or a (nested) slice of Fields.
	ErrInvalidFieldShape = errors.New("unsupported field collection shape")
)
