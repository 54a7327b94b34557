package readers

import "errors"

var (
	// ErrDatabaseIsNotReadyYet is returned if you are trying to access
	// a reader which was closed.
	ErrDatabaseIsNotReadyYet = errors.New("database is not initialized yet")

	// ErrReaderOpenFailure wraps all errors which happen when a
	// database is opened: missing file, permission problems, corrupt
	// or unsupported format.
	ErrReaderOpenFailure = errors.New("cannot open a database")

	// ErrUnknownMode is returned if mode name is neither ModeMemory
	// nor ModeMmap.
	ErrUnknownMode = errors.New("unknown reader mode")

	// ErrIncorrectIP is returned by inspection if given string is not
	// an IP address.
	ErrIncorrectIP = errors.New("incorrect ip address")
)
