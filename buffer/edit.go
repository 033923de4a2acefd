package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
// CRLF and bare CR count as line breaks. New cells take the style at the
// insertion point. Lines created by a break continue the block kind of the
// line they were split from.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		b.DeleteSelection()
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}

	nextCursor, changed := b.replaceRange(r, s, b.StyleAt(r.Start))
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.touch()
}

// InsertNewline splits the line at the cursor, or replaces the active
// selection with a line break. Enter on an empty list item ends the list
// instead: the item becomes a paragraph.
func (b *Buffer) InsertNewline() {
	if _, ok := b.Selection(); !ok {
		line := b.lines[b.cursor.Row]
		if line.Kind != BlockParagraph && len(line.Cells) == 0 {
			b.setKind(b.cursor.Row, b.cursor.Row, BlockParagraph)
			return
		}
	}
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a list item the
// item is turned into a paragraph before any join happens.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	if col == 0 && b.lines[row].Kind != BlockParagraph {
		b.setKind(row, row, BlockParagraph)
		return
	}
	if row == 0 && col == 0 {
		return
	}

	start := Pos{Row: row, Col: col - 1}
	if col == 0 {
		// Join with previous line (delete the newline).
		start = Pos{Row: row - 1, Col: len(b.lines[row-1].Cells)}
	}
	b.deleteRange(Range{Start: start, End: b.cursor})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow].Cells) {
		return
	}

	end := Pos{Row: row, Col: col + 1}
	if col == len(b.lines[row].Cells) {
		// Join with next line (delete the newline).
		end = Pos{Row: row + 1, Col: 0}
	}
	b.deleteRange(Range{Start: b.cursor, End: end})
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) {
	nextCursor, changed := b.replaceRange(r, "", StyleNone)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.touch()
}

func (b *Buffer) replaceRange(r Range, text string, style Style) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col
	kind := b.lines[startRow].Kind

	prefix := append([]Cell(nil), b.lines[startRow].Cells[:startCol]...)
	suffix := append([]Cell(nil), b.lines[endRow].Cells[endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([]Line, 0, len(parts))
	for i, p := range parts {
		cells := cellsFor(p, style)
		var line []Cell
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, cells...)
		if i == len(parts)-1 {
			nextCursor = Pos{Row: startRow + i, Col: len(line)}
			line = append(line, suffix...)
		}
		repl = append(repl, Line{Kind: kind, Cells: line})
	}

	out := make([]Line, 0, len(b.lines)-(endRow-startRow)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	if linesEqual(out, b.lines) {
		return b.cursor, false
	}
	b.lines = out
	return nextCursor, true
}
