package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arqmanager/arqedit/buffer"
)

func TestMouse_ClickPlacesCursorBelowToolbar(t *testing.T) {
	m := New(Config{Markup: "hello<br>world"}).SetSize(20, 5)

	m = click(m, 2, 2)
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}

	m = click(m, 50, 1)
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 5}); got != want {
		t.Fatalf("cursor past EOL: got %v, want %v", got, want)
	}
}

func TestMouse_ClickSkipsListMarker(t *testing.T) {
	m := New(Config{Markup: "<ol><li>abc</li></ol>"}).SetSize(20, 5)

	m = click(m, 4, 1)
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestMouse_DragSelects(t *testing.T) {
	m := New(Config{Markup: "hello"}).SetSize(20, 5)

	m = click(m, 1, 1)
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := m.Buffer().SelectedText(); got != "ell" {
		t.Fatalf("selected text: got %q, want %q", got, "ell")
	}

	// Motion after release does not extend the selection.
	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionMotion})
	if got := m.Buffer().SelectedText(); got != "ell" {
		t.Fatalf("selected text after release: got %q, want %q", got, "ell")
	}
}

func TestMouse_ShiftClickExtends(t *testing.T) {
	m := New(Config{Markup: "hello"}).SetSize(20, 5)

	m = click(m, 1, 1)
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 1, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Buffer().SelectedText(); got != "el" {
		t.Fatalf("selected text: got %q, want %q", got, "el")
	}
}

func TestMouse_ContentIgnoredWhenBlurred(t *testing.T) {
	m := New(Config{Markup: "hello"}).SetSize(20, 5).Blur()

	m = click(m, 3, 1)
	if got := m.Buffer().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor: got %v, want (0,0)", got)
	}
}
