package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arqmanager/arqedit/buffer"
)

func unitsFor(s string) []wrapUnit {
	units := make([]wrapUnit, 0, len(s))
	for _, r := range s {
		units = append(units, wrapUnit{width: 1, isWhitespace: r == ' '})
	}
	return units
}

func TestWrapSegments_Grapheme_RespectsWidth(t *testing.T) {
	segs := wrapSegments(unitsFor("abcdef"), WrapGrapheme, 2)
	want := []wrappedSegment{
		{start: 0, end: 2, cells: 2},
		{start: 2, end: 4, cells: 2},
		{start: 4, end: 6, cells: 2},
	}
	if len(segs) != len(want) {
		t.Fatalf("segment count: got %d, want %d", len(segs), len(want))
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Fatalf("segment %d: got %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestWrapSegments_Word_BreaksAfterWhitespace(t *testing.T) {
	segs := wrapSegments(unitsFor("hello world"), WrapWord, 8)
	if len(segs) != 2 {
		t.Fatalf("segment count: got %d, want %d", len(segs), 2)
	}
	if got, want := segs[0], (wrappedSegment{start: 0, end: 6, cells: 6}); got != want {
		t.Fatalf("segment 0: got %+v, want %+v", got, want)
	}
	if got, want := segs[1], (wrappedSegment{start: 6, end: 11, cells: 5}); got != want {
		t.Fatalf("segment 1: got %+v, want %+v", got, want)
	}

	long := wrapSegments(unitsFor("abcdefghij"), WrapWord, 4)
	if len(long) != 3 {
		t.Fatalf("long word segment count: got %d, want %d", len(long), 3)
	}
	if got := long[len(long)-1].end; got != 10 {
		t.Fatalf("long word final end: got %d, want %d", got, 10)
	}
}

func TestWrapSegments_EmptyAndUnbounded(t *testing.T) {
	if got := wrapSegments(nil, WrapWord, 4); len(got) != 1 || got[0] != (wrappedSegment{}) {
		t.Fatalf("empty line: got %+v, want one empty segment", got)
	}
	if got := wrapSegments(unitsFor("abcdef"), WrapWord, 0); len(got) != 1 || got[0].end != 6 {
		t.Fatalf("zero width: got %+v, want one full segment", got)
	}
}

func asciiStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Text:        r.NewStyle(),
		Selection:   r.NewStyle(),
		Cursor:      r.NewStyle().Reverse(true),
		Placeholder: r.NewStyle(),
		ListMarker:  r.NewStyle(),
	}
}

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestView_LongLineWrapsAndKeepsCursorVisible(t *testing.T) {
	text := strings.Repeat("a", 10) + strings.Repeat("b", 10) + strings.Repeat("c", 10) + "dddd"

	m := New(Config{Style: asciiStyle(), HideToolbar: true}).SetSize(10, 2)
	m = typeText(m, text)

	got := viewLines(m)
	want := []string{"cccccccccc", "dddd"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	st := testStyle()
	m = New(Config{Style: st, HideToolbar: true}).SetSize(10, 2)
	m = typeText(m, text)
	rows := strings.Split(m.renderContent(), "\n")
	if len(rows) != 4 {
		t.Fatalf("rendered rows: got %d, want %d", len(rows), 4)
	}
	if !strings.HasSuffix(rows[3], st.Cursor.Render(" ")) {
		t.Fatalf("last row should end with the cursor cell: %q", rows[3])
	}
	if got := m.viewport.YOffset; got != 2 {
		t.Fatalf("y offset: got %d, want %d", got, 2)
	}
}

func TestView_WordWrapAndListIndent(t *testing.T) {
	m := New(Config{Markup: "hello world", Style: asciiStyle(), HideToolbar: true}).Blur().SetSize(8, 2)
	if got, want := viewLines(m), []string{"hello", "world"}; got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	m = New(Config{Markup: "<ol><li>hello world</li></ol>", Style: asciiStyle(), HideToolbar: true}).Blur().SetSize(9, 2)
	if got, want := viewLines(m), []string{"1. hello", "   world"}; got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("list view: got %q, want %q", got, want)
	}
}

func TestMouse_ClickOnWrappedRow(t *testing.T) {
	m := New(Config{Markup: "hello world", HideToolbar: true}).SetSize(8, 3)

	m = click(m, 2, 1)
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 8}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	m = click(m, 7, 0)
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 5}); got != want {
		t.Fatalf("cursor past wrapped row end: got %v, want %v", got, want)
	}
}
