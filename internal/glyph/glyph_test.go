package glyph

import "testing"

func TestWidth_WideAndNarrow(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii", text: "hello", want: 5},
		{name: "cjk", text: "界面", want: 4},
		{name: "mixed", text: "a界b", want: 4},
		{name: "emoji", text: "🙂", want: 2},
	}

	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("%s: Width(%q): got %d, want %d", tc.name, tc.text, got, tc.want)
		}
	}
}

func TestColumnIndex_CountsCellsBeforeCharacter(t *testing.T) {
	s := "a界b"
	want := []int{0, 1, 3, 4}
	for i, w := range want {
		if got := ColumnIndex(s, i); got != w {
			t.Fatalf("ColumnIndex(%q, %d): got %d, want %d", s, i, got, w)
		}
	}
	if got := ColumnIndex(s, 99); got != 4 {
		t.Fatalf("ColumnIndex past end: got %d, want %d", got, 4)
	}
	if got := ColumnIndex(s, -3); got != 0 {
		t.Fatalf("ColumnIndex negative: got %d, want %d", got, 0)
	}
}

func TestCharIndex_MapsCellsBackToCharacters(t *testing.T) {
	s := "a界b"
	cases := []struct {
		column int
		want   int
	}{
		{column: -1, want: 0},
		{column: 0, want: 0},
		{column: 1, want: 1},
		{column: 2, want: 1}, // second half of 界
		{column: 3, want: 2},
		{column: 4, want: 3},
		{column: 10, want: 3},
	}
	for _, tc := range cases {
		if got := CharIndex(s, tc.column); got != tc.want {
			t.Fatalf("CharIndex(%q, %d): got %d, want %d", s, tc.column, got, tc.want)
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsDoubleWidth('界') {
		t.Fatalf("界 should be double width")
	}
	if IsDoubleWidth('a') {
		t.Fatalf("a should not be double width")
	}
	for _, r := range []rune{'\t', '\r', '\n', 0x7f, 0x85} {
		if !IsControl(r) {
			t.Fatalf("%U should be a control character", r)
		}
	}
	if IsControl('x') {
		t.Fatalf("x should not be a control character")
	}
}

func TestFit_StopsBeforeSplittingWideGlyph(t *testing.T) {
	if got, want := Fit("ab界c", 3), "ab"; got != want {
		t.Fatalf("Fit: got %q, want %q", got, want)
	}
	if got, want := Fit("ab界c", 4), "ab界"; got != want {
		t.Fatalf("Fit: got %q, want %q", got, want)
	}
	if got := Fit("abc", 0); got != "" {
		t.Fatalf("Fit zero width: got %q, want empty", got)
	}
}

func TestWidth_MatchesColumnIndexAtEnd(t *testing.T) {
	for _, s := range []string{
		"",
		"hello",
		"a界b",
		"e\u0301x",
		"\U0001F468\u200d\U0001F469\u200d\U0001F467\U0001F468\u200d\U0001F469\u200d\U0001F467",
	} {
		if got, want := Width(s), ColumnIndex(s, Len(s)); got != want {
			t.Fatalf("Width(%q): got %d, want %d", s, got, want)
		}
	}
	if got := Width("e\u0301"); got != 1 {
		t.Fatalf("Width with combining mark: got %d, want %d", got, 1)
	}
}

func TestEachCluster_KeepsMarksWithBase(t *testing.T) {
	type step struct {
		text  string
		width int
	}
	var got []step
	EachCluster("\u0301e\u0301界", func(c string, w int) {
		got = append(got, step{c, w})
	})
	want := []step{{"\u0301", 0}, {"e\u0301", 1}, {"界", 2}}
	if len(got) != len(want) {
		t.Fatalf("clusters: got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cluster %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
