package frame

import "errors"

var (
	// ErrNoSuchColumn is returned if frame has no column with the
	// given name.
	ErrNoSuchColumn = errors.New("no such column")

	// ErrLengthMismatch is returned if a new column has a length
	// different from columns which are already in the frame.
	ErrLengthMismatch = errors.New("column length mismatch")

	// ErrDuplicateColumn is returned if CSV header has the same name
	// twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrEmptyColumnName is returned for columns without names.
	ErrEmptyColumnName = errors.New("empty column name")
)
