package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arqmanager/arqedit/buffer"
)

type eventLog struct {
	events []ChangeEvent
}

func (l *eventLog) record(ev ChangeEvent) { l.events = append(l.events, ev) }

func (l *eventLog) last() ChangeEvent {
	if len(l.events) == 0 {
		return ChangeEvent{}
	}
	return l.events[len(l.events)-1]
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

type noFormatter struct{}

func (noFormatter) ApplyInlineStyle(buffer.Style) bool   { return false }
func (noFormatter) ToggleListStyle(buffer.BlockKind) bool { return false }

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.err }

func (c *fakeClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}
