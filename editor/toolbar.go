package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arqmanager/arqedit/buffer"
)

type toolbarButton struct {
	cmd     Command
	label   string
	enabled bool
	active  bool
}

// toolbarHit is the cell span [start, end) a button occupies on the toolbar row.
type toolbarHit struct {
	cmd        Command
	start, end int
	enabled    bool
}

func (m Model) toolbarRows() int {
	if m.cfg.HideToolbar {
		return 0
	}
	return 1
}

func (m Model) toolbarButtons() []toolbarButton {
	editable := !m.cfg.Disabled
	cur := m.buf.Cursor()
	style := m.buf.StyleAt(cur)
	if r, ok := m.buf.Selection(); ok {
		style = m.buf.StyleAt(buffer.Pos{Row: r.Start.Row, Col: r.Start.Col + 1})
	}
	kind := buffer.BlockParagraph
	if l, ok := m.buf.Line(cur.Row); ok {
		kind = l.Kind
	}

	return []toolbarButton{
		{cmd: CommandBold, label: "B", enabled: editable, active: style.Has(buffer.StyleBold)},
		{cmd: CommandItalic, label: "I", enabled: editable, active: style.Has(buffer.StyleItalic)},
		{cmd: CommandBulletList, label: "•", enabled: editable, active: kind == buffer.BlockBullet},
		{cmd: CommandOrderedList, label: "1.", enabled: editable, active: kind == buffer.BlockOrdered},
		{cmd: CommandUndo, label: "↶", enabled: editable && m.hist.CanUndo()},
		{cmd: CommandRedo, label: "↷", enabled: editable && m.hist.CanRedo()},
	}
}

func (m Model) buttonStyle(b toolbarButton) lipgloss.Style {
	switch {
	case !b.enabled:
		return m.cfg.Style.ButtonDisabled
	case b.active:
		return m.cfg.Style.ButtonActive
	default:
		return m.cfg.Style.Button
	}
}

func (m Model) layoutToolbar() (string, []toolbarHit) {
	buttons := m.toolbarButtons()
	hits := make([]toolbarHit, 0, len(buttons))
	var sb strings.Builder
	x := 0
	for i, b := range buttons {
		if i > 0 {
			sb.WriteByte(' ')
			x++
		}
		rendered := m.buttonStyle(b).Render(" " + b.label + " ")
		w := lipgloss.Width(rendered)
		hits = append(hits, toolbarHit{cmd: b.cmd, start: x, end: x + w, enabled: b.enabled})
		sb.WriteString(rendered)
		x += w
	}
	return sb.String(), hits
}

func (m Model) renderToolbar() string {
	s, _ := m.layoutToolbar()
	return s
}

// toolbarCommandAt returns the enabled command under column x.
func (m Model) toolbarCommandAt(x int) (Command, bool) {
	_, hits := m.layoutToolbar()
	for _, h := range hits {
		if x >= h.start && x < h.end {
			return h.cmd, h.enabled
		}
	}
	return 0, false
}
