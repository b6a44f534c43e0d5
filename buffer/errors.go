package buffer

import "errors"

var (
	// ErrOutOfRange is returned when a row index does not address a line.
	ErrOutOfRange = errors.New("buffer: row out of range")
	// ErrLineTerminator is returned when a single-line mutation receives
	// text containing '\n'.
	ErrLineTerminator = errors.New("buffer: text contains a line terminator")
	// ErrEmpty is returned by mutations that would leave no lines.
	ErrEmpty = errors.New("buffer: a buffer keeps at least one line")
)
