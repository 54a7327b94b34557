package geolib

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is matched by errors.Is for any UnknownFieldError.
	ErrUnknownField = errors.New("invalid geo column name")

	// ErrNoFields is returned if a batch is requested without any field
	// to project.
	ErrNoFields = errors.New("no geo columns requested")

	// ErrReaderIsNil is returned if batch is started without a reader.
	ErrReaderIsNil = errors.New("reader is not set")

	// ErrReaderUnusable wraps an error returned by Reader.Ready.
	ErrReaderUnusable = errors.New("reader is unusable")

	// ErrInvalidChunkSize is returned for parallel batches with
	// non-positive chunk size.
	ErrInvalidChunkSize = errors.New("chunk size should be positive")

	// ErrResolverShutdown is returned if resolver was shutdown before.
	ErrResolverShutdown = errors.New("resolver instance was shutdown")
)

// UnknownFieldError is returned if caller asks for a field which is
// not known to the projector. It is a call-level error: no row is
// processed if any requested name is unknown.
type UnknownFieldError struct {
	Name string
}

func (u *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownField.Error(), u.Name)
}

func (u *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
