package editor

import "errors"

var (
	// ErrInvalidMask is returned for a mask rune that cannot stand in for
	// one character cell.
	ErrInvalidMask = errors.New("editor: mask must be a printable single-width rune")
	// ErrInvalidFill is returned for an unused-space rune that is not a
	// printable single-width rune.
	ErrInvalidFill = errors.New("editor: fill must be a printable single-width rune")
	// ErrInvalidMaxLineLength is returned when the line-length ceiling is
	// negative or shorter than a line of the initial text.
	ErrInvalidMaxLineLength = errors.New("editor: invalid max line length")

	errDispatchPanic = errors.New("editor: key dispatch panicked")
)
