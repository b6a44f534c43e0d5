// Package glyph measures text in terminal cells.
//
// Character indexes are rune indexes. Display columns are terminal cells.
package glyph

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the number of cells r occupies.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// Width returns the display width of s in cells: the sum of the widths of
// its runes, the same measure ColumnIndex and CharIndex use.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// EachCluster calls fn for every grapheme cluster of s in order, with the
// cluster's width under Width. A cluster led by a combining mark with no
// base has width 0.
func EachCluster(s string, fn func(cluster string, width int)) {
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		fn(c, Width(c))
	}
}

// IsDoubleWidth reports whether r is drawn across two cells (CJK, wide
// emoji).
func IsDoubleWidth(r rune) bool {
	return RuneWidth(r) == 2
}

// IsControl reports whether r is an ISO control character (C0, DEL, C1).
func IsControl(r rune) bool {
	return unicode.IsControl(r)
}

// IsSpace reports whether r separates words.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// ColumnIndex returns the display column where the character at charIndex
// starts. charIndex is clamped into [0, len(runes)].
func ColumnIndex(s string, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	col := 0
	i := 0
	for _, r := range s {
		if i >= charIndex {
			break
		}
		col += RuneWidth(r)
		i++
	}
	return col
}

// CharIndex returns the index of the character covering the display column.
//
// A column in the second cell of a double-width glyph maps to that glyph.
// A column at or past the width of s maps to the rune length of s.
func CharIndex(s string, column int) int {
	if column <= 0 {
		return 0
	}
	col := 0
	i := 0
	for _, r := range s {
		w := RuneWidth(r)
		if column < col+w {
			return i
		}
		col += w
		i++
	}
	return i
}

// Fit returns the longest prefix of s that fits in width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	col := 0
	for i, r := range s {
		w := RuneWidth(r)
		if col+w > width {
			return s[:i]
		}
		col += w
	}
	return s
}

// Len returns the length of s in characters.
func Len(s string) int {
	return len([]rune(s))
}
