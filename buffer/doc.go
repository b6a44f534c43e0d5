// Package buffer implements the line store behind a text box.
//
// Coordinates are 0-based (Row, Col) with Col counted in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// Every structural mutation notifies registered listeners and, when a
// Recorder is attached, records one reversible Piece.
package buffer
