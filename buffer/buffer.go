package buffer

import (
	"strings"

	"github.com/arqmanager/arqedit/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: lines, cursor, and selection.
type Buffer struct {
	lines []Line

	// version bumps on any observable change; revision only on content.
	version  uint64
	revision uint64

	cursor Pos
	sel    selectionState
}

// New returns a buffer holding text as unstyled paragraphs.
func New(text string) *Buffer {
	return NewFromLines(PlainLines(text))
}

// NewFromLines returns a buffer holding a copy of lines.
func NewFromLines(lines []Line) *Buffer {
	return &Buffer{lines: normalizeLines(lines)}
}

// PlainLines splits text on '\n' into unstyled paragraph lines.
func PlainLines(text string) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, Line{Kind: BlockParagraph, Cells: cellsFor(p, StyleNone)})
	}
	return lines
}

func cellsFor(text string, style Style) []Cell {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Cell, len(clusters))
	for i, c := range clusters {
		out[i] = Cell{Text: c, Style: style}
	}
	return out
}

func normalizeLines(lines []Line) []Line {
	if len(lines) == 0 {
		return []Line{{Kind: BlockParagraph}}
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.clone()
	}
	return out
}

// Text returns the plain text of the document, lines joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text())
	}
	return sb.String()
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []Line {
	return normalizeLines(b.lines)
}

// LineCount returns the number of lines (always at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns a copy of the line at row.
func (b *Buffer) Line(row int) (Line, bool) {
	if row < 0 || row >= len(b.lines) {
		return Line{}, false
	}
	return b.lines[row].clone(), true
}

// IsEmpty reports whether the document is a single empty paragraph.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0].Cells) == 0 && b.lines[0].Kind == BlockParagraph
}

// SetLines replaces the whole document. The cursor is clamped into the new
// content and the selection is cleared. It reports whether content changed.
func (b *Buffer) SetLines(lines []Line) bool {
	next := normalizeLines(lines)
	if linesEqual(next, b.lines) {
		return false
	}
	b.lines = next
	b.cursor = b.clampPos(b.cursor)
	b.sel = selectionState{}
	b.version++
	b.revision++
	return true
}

func (b *Buffer) Version() uint64 { return b.version }

// Revision counts content changes only.
func (b *Buffer) Revision() uint64 { return b.revision }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// StyleAt returns the style new text typed at p would take: the style of the
// cell before p, or of the cell at p when p is at the start of a line.
func (b *Buffer) StyleAt(p Pos) Style {
	p = b.clampPos(p)
	line := b.lines[p.Row]
	if p.Col > 0 {
		return line.Cells[p.Col-1].Style
	}
	if len(line.Cells) > 0 {
		return line.Cells[0].Style
	}
	return StyleNone
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior) while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SelectedText returns the plain text of the current selection, rows joined
// with "\n".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		cells := b.lines[row].Cells
		from, to := 0, len(cells)
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		for _, c := range cells[from:to] {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	if selectionStateEqual(b.sel, next) {
		return
	}
	b.sel = next
	b.version++
}

// SelectAll selects the whole document and moves the cursor to its end.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	end := Pos{Row: last, Col: len(b.lines[last].Cells)}
	b.SetCursor(end)
	b.SetSelection(Range{Start: Pos{}, End: end})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// LineLen returns the number of cells on row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row].Cells)
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// touch records a content mutation.
func (b *Buffer) touch() {
	b.version++
	b.revision++
}
