package editor

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arqmanager/arqedit/buffer"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	return Style{
		Text:        r.NewStyle(),
		Selection:   r.NewStyle().Background(lipgloss.Color("#333333")),
		Cursor:      r.NewStyle().Reverse(true),
		Placeholder: r.NewStyle().Faint(true),
		ListMarker:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

func TestRender_BoldCellsAndCursorAtEOL(t *testing.T) {
	st := testStyle()
	m := New(Config{Markup: "<b>ab</b>", Style: st})
	m.buf.SetCursor(buffer.Pos{Row: 0, Col: 2})

	bold := st.Text.Bold(true).TabWidth(defaultTabWidth)
	want := bold.Render("a") + bold.Render("b") + st.Cursor.Render(" ")
	if got := m.renderContent(); got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SelectionAndCursorCell(t *testing.T) {
	st := testStyle()
	m := New(Config{Markup: "abc", Style: st})
	m.buf.SetCursor(buffer.Pos{Row: 0, Col: 2})
	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 0}, End: buffer.Pos{Row: 0, Col: 2}})

	sel := st.Selection.TabWidth(defaultTabWidth)
	want := sel.Render("a") + sel.Render("b") + st.Cursor.TabWidth(defaultTabWidth).Render("c")
	if got := m.renderContent(); got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_BlurredHidesCursor(t *testing.T) {
	st := testStyle()
	m := New(Config{Markup: "<i>a</i>", Style: st}).Blur()

	want := st.Text.Italic(true).TabWidth(defaultTabWidth).Render("a")
	if got := m.renderContent(); got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_OrderedListMarkers(t *testing.T) {
	st := testStyle()
	m := New(Config{Markup: "<ol><li>a</li><li>b</li></ol>", Style: st}).Blur()

	text := st.Text.TabWidth(defaultTabWidth)
	want := st.ListMarker.Render("1. ") + text.Render("a") + "\n" +
		st.ListMarker.Render("2. ") + text.Render("b")
	if got := m.renderContent(); got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_Placeholder(t *testing.T) {
	st := testStyle()
	m := New(Config{Placeholder: "Write a note", Style: st})

	want := st.Cursor.Render(" ") + st.Placeholder.Render("Write a note")
	if got := m.renderContent(); got != want {
		t.Fatalf("focused placeholder:\n got: %q\nwant: %q", got, want)
	}

	m = m.Blur()
	if got, want := m.renderContent(), st.Placeholder.Render("Write a note"); got != want {
		t.Fatalf("blurred placeholder:\n got: %q\nwant: %q", got, want)
	}
}

func TestListPrefixes_NumberPerRun(t *testing.T) {
	lines := []buffer.Line{
		{Kind: buffer.BlockOrdered},
		{Kind: buffer.BlockOrdered},
		{Kind: buffer.BlockParagraph},
		{Kind: buffer.BlockOrdered},
		{Kind: buffer.BlockBullet},
	}
	got := listPrefixes(lines)
	want := []string{"1. ", "2. ", "", "1. ", "• "}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("prefix %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
