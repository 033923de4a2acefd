package editor

import (
	"testing"

	"github.com/arqmanager/arqedit/buffer"
)

func buttonFor(t *testing.T, m Model, cmd Command) toolbarButton {
	t.Helper()
	for _, b := range m.toolbarButtons() {
		if b.cmd == cmd {
			return b
		}
	}
	t.Fatalf("no toolbar button for %v", cmd)
	return toolbarButton{}
}

func hitFor(t *testing.T, m Model, cmd Command) toolbarHit {
	t.Helper()
	_, hits := m.layoutToolbar()
	for _, h := range hits {
		if h.cmd == cmd {
			return h
		}
	}
	t.Fatalf("no toolbar hit for %v", cmd)
	return toolbarHit{}
}

func TestToolbar_UndoRedoEnabledState(t *testing.T) {
	m := New(Config{})
	if buttonFor(t, m, CommandUndo).enabled || buttonFor(t, m, CommandRedo).enabled {
		t.Fatalf("fresh editor: undo/redo buttons should be disabled")
	}

	m = typeText(m, "a")
	if !buttonFor(t, m, CommandUndo).enabled {
		t.Fatalf("undo button should be enabled after an edit")
	}

	m, _ = m.Undo()
	if buttonFor(t, m, CommandUndo).enabled || !buttonFor(t, m, CommandRedo).enabled {
		t.Fatalf("after undo: want undo disabled, redo enabled")
	}
}

func TestToolbar_DisabledEditorDisablesAllButtons(t *testing.T) {
	m := New(Config{Markup: "a", Disabled: true})
	for _, b := range m.toolbarButtons() {
		if b.enabled {
			t.Fatalf("button %q enabled on a disabled editor", b.label)
		}
	}
}

func TestToolbar_ActiveStateFollowsCursor(t *testing.T) {
	m := New(Config{Markup: "<b>ab</b>c"})
	m.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 1})
	if !buttonFor(t, m, CommandBold).active {
		t.Fatalf("bold button should be active inside bold text")
	}
	m.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 3})
	if buttonFor(t, m, CommandBold).active {
		t.Fatalf("bold button should be inactive after plain text")
	}

	m = New(Config{Markup: "<ul><li>x</li></ul>"})
	if !buttonFor(t, m, CommandBulletList).active {
		t.Fatalf("bullet button should be active in a bullet item")
	}
}

func TestToolbar_ClickDispatchesCommand(t *testing.T) {
	m := New(Config{Markup: "hi"}).SetSize(40, 4)
	m.Buffer().SelectAll()

	m = click(m, hitFor(t, m, CommandBold).start, 0)
	if got := m.Content(); got != "<b>hi</b>" {
		t.Fatalf("after bold click: got %q, want %q", got, "<b>hi</b>")
	}

	h := hitFor(t, m, CommandUndo)
	m = click(m, h.end-1, 0)
	if got := m.Content(); got != "hi" {
		t.Fatalf("after undo click: got %q, want %q", got, "hi")
	}

	// Redo is now enabled; undo is not, so clicking it does nothing.
	m = click(m, hitFor(t, m, CommandUndo).start, 0)
	if got := m.Content(); got != "hi" {
		t.Fatalf("click on disabled undo: got %q, want %q", got, "hi")
	}
}

func TestToolbar_HiddenToolbarTakesNoRow(t *testing.T) {
	m := New(Config{Markup: "hello", HideToolbar: true}).SetSize(20, 2)
	m = click(m, 2, 0)
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor: got %v, want (0,2)", got)
	}
}
