package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arqmanager/arqedit/buffer"
	"github.com/arqmanager/arqedit/internal/grapheme"
)

// listPrefixes returns the marker drawn before each line. Ordered items are
// numbered per consecutive run.
func listPrefixes(lines []buffer.Line) []string {
	out := make([]string, len(lines))
	n := 0
	for i, l := range lines {
		switch l.Kind {
		case buffer.BlockBullet:
			n = 0
			out[i] = "• "
		case buffer.BlockOrdered:
			n++
			out[i] = strconv.Itoa(n) + ". "
		default:
			n = 0
		}
	}
	return out
}

func (m Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	cursor := m.buf.Cursor()

	if m.buf.IsEmpty() && m.cfg.Placeholder != "" {
		var sb strings.Builder
		if m.focused {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		sb.WriteString(m.cfg.Style.Placeholder.Render(m.cfg.Placeholder))
		return sb.String()
	}

	sel, selOK := m.buf.Selection()
	lines := m.buf.Lines()
	prefixes := listPrefixes(lines)

	rows := m.layoutRows()
	out := make([]string, 0, len(rows))
	for _, vr := range rows {
		var sb strings.Builder
		if p := prefixes[vr.row]; p != "" {
			if vr.first {
				sb.WriteString(m.cfg.Style.ListMarker.Render(p))
			} else {
				sb.WriteString(strings.Repeat(" ", lipgloss.Width(p)))
			}
		}
		cells := lines[vr.row].Cells
		for col := vr.start; col < vr.end; col++ {
			p := buffer.Pos{Row: vr.row, Col: col}
			isCursor := m.focused && p == cursor
			inSel := selOK && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0
			sb.WriteString(m.cellStyle(cells[col].Style, isCursor, inSel).Render(cells[col].Text))
		}
		if vr.last && m.focused && cursor.Row == vr.row && cursor.Col == len(cells) {
			sb.WriteString(m.cfg.Style.Cursor.Render(" "))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) cellStyle(s buffer.Style, isCursor, inSel bool) lipgloss.Style {
	st := m.cfg.Style.Text
	switch {
	case isCursor:
		st = m.cfg.Style.Cursor
	case inSel:
		st = m.cfg.Style.Selection
	}
	if s.Has(buffer.StyleBold) {
		st = st.Bold(true)
	}
	if s.Has(buffer.StyleItalic) {
		st = st.Italic(true)
	}
	return st.TabWidth(m.cfg.TabWidth)
}

// screenToDocPos maps a content-area cell to a document position.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	rows := m.layoutRows()
	i := min(max(y-m.toolbarRows()+m.viewport.YOffset, 0), len(rows)-1)
	vr := rows[i]

	lines := m.buf.Lines()
	x -= lipgloss.Width(listPrefixes(lines)[vr.row])
	cells := lines[vr.row].Cells
	cellX := 0
	for col := vr.start; col < vr.end; col++ {
		w := grapheme.Width(cells[col].Text, m.cfg.TabWidth)
		if x < cellX+w {
			return buffer.Pos{Row: vr.row, Col: col}
		}
		cellX += w
	}
	if vr.last {
		return buffer.Pos{Row: vr.row, Col: vr.end}
	}
	// Past the end of a wrapped row: stay on that row.
	return buffer.Pos{Row: vr.row, Col: max(vr.end-1, vr.start)}
}
