package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arqmanager/arqedit/internal/grapheme"
)

// WrapMode controls how lines wider than the editor are broken into rows.
type WrapMode int

const (
	// WrapWord breaks after whitespace and falls back to cell breaks for
	// words longer than a row.
	WrapWord WrapMode = iota
	// WrapGrapheme breaks at the last cell that fits.
	WrapGrapheme
)

// wrappedSegment is the unit range [start, end) shown on one row.
type wrappedSegment struct {
	start, end int
	cells      int
}

type wrapUnit struct {
	width        int
	isWhitespace bool
}

// wrapSegments breaks units into rows no wider than width. Width <= 0
// disables wrapping. There is always at least one segment.
func wrapSegments(units []wrapUnit, mode WrapMode, width int) []wrappedSegment {
	if width <= 0 || len(units) == 0 {
		return []wrappedSegment{{start: 0, end: len(units), cells: unitsWidth(units)}}
	}

	segments := make([]wrappedSegment, 0, 1+len(units)/width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := max(units[overflow].width, 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			}
		}

		segments = append(segments, wrappedSegment{start: start, end: end, cells: unitsWidth(units[start:end])})
		start = end
	}
	return segments
}

// findWordWrapBreak returns the unit index just past the last whitespace run
// in [start, overflow).
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	lastBreak := -1
	for i := start; i < overflow; {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}
	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

func unitsWidth(units []wrapUnit) int {
	n := 0
	for _, u := range units {
		n += u.width
	}
	return n
}

// visualRow is one rendered row: the cells [start, end) of logical line row.
type visualRow struct {
	row         int
	start, end  int
	first, last bool
}

// layoutRows wraps every line to the viewport width. The focused cursor line
// reserves one cell past its end so an end-of-line cursor stays on screen.
func (m Model) layoutRows() []visualRow {
	lines := m.buf.Lines()
	prefixes := listPrefixes(lines)
	cursor := m.buf.Cursor()

	out := make([]visualRow, 0, len(lines))
	for row, l := range lines {
		units := make([]wrapUnit, 0, len(l.Cells)+1)
		for _, c := range l.Cells {
			units = append(units, wrapUnit{
				width:        grapheme.Width(c.Text, m.cfg.TabWidth),
				isWhitespace: grapheme.IsSpace(c.Text),
			})
		}
		if m.focused && cursor.Row == row {
			units = append(units, wrapUnit{width: 1})
		}

		width := 0
		if m.viewport.Width > 0 {
			width = max(m.viewport.Width-lipgloss.Width(prefixes[row]), 1)
		}
		segs := wrapSegments(units, m.cfg.WrapMode, width)
		for i, s := range segs {
			out = append(out, visualRow{
				row:   row,
				start: min(s.start, len(l.Cells)),
				end:   min(s.end, len(l.Cells)),
				first: i == 0,
				last:  i == len(segs)-1,
			})
		}
	}
	return out
}

// cursorRowIndex returns the index in rows of the row holding the cursor.
func (m Model) cursorRowIndex(rows []visualRow) int {
	c := m.buf.Cursor()
	for i, vr := range rows {
		if vr.row != c.Row {
			continue
		}
		if c.Col < vr.end || vr.last {
			return i
		}
	}
	return 0
}
