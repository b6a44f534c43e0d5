package buffer

import (
	"cmp"
	"fmt"
)

// Pos addresses a caret slot: Row is the line, Col the number of runes
// before the slot on that line. Both are 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Range spans [Start, End) in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

// ComparePos orders positions row-major and returns -1, 0 or +1.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// NormalizeRange swaps the ends of r when End comes before Start.
func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// ClampPos moves p to the nearest slot that exists in a document of
// rowCount lines, where lineLen reports each line's rune count. A
// rowCount below 1 is treated as 1 and a nil lineLen as all lines empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := min(max(p.Row, 0), max(rowCount, 1)-1)
	limit := 0
	if lineLen != nil {
		limit = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: min(max(p.Col, 0), limit)}
}

// ClampRange clamps both ends of r. It does not normalize.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
