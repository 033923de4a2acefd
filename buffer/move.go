package buffer

import "github.com/arqmanager/arqedit/internal/grapheme"

type MoveUnit int

const (
	MoveCell MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

// Move describes one cursor motion.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // grow the selection instead of clearing it
}

// Move moves the cursor. Movement never changes content, so it bumps Version
// but not Revision.
func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.target(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) target(p Pos, m Move) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1
	rowLen := len(b.lines[row].Cells)

	switch m.Dir {
	case DirUp, DirDown:
		if m.Unit == MoveDoc {
			break
		}
		nr := row - 1
		if m.Dir == DirDown {
			nr = row + 1
		}
		if nr < 0 || nr > lastRow {
			return p
		}
		return Pos{Row: nr, Col: min(col, len(b.lines[nr].Cells))}
	case DirHome:
		if m.Unit == MoveDoc {
			break
		}
		return Pos{Row: row}
	case DirEnd:
		if m.Unit == MoveDoc {
			break
		}
		return Pos{Row: row, Col: rowLen}
	}

	switch m.Unit {
	case MoveCell:
		switch m.Dir {
		case DirLeft:
			if col > 0 {
				return Pos{Row: row, Col: col - 1}
			}
			if row > 0 {
				return Pos{Row: row - 1, Col: len(b.lines[row-1].Cells)}
			}
		case DirRight:
			if col < rowLen {
				return Pos{Row: row, Col: col + 1}
			}
			if row < lastRow {
				return Pos{Row: row + 1}
			}
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return Pos{Row: row, Col: prevWordBoundary(b.lines[row].Cells, col)}
		case DirRight:
			return Pos{Row: row, Col: nextWordBoundary(b.lines[row].Cells, col)}
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return Pos{}
		case DirEnd, DirDown:
			return Pos{Row: lastRow, Col: len(b.lines[lastRow].Cells)}
		}
	}
	return p
}

// Word boundaries skip whitespace, then non-whitespace, and stop at the line
// edge.
func prevWordBoundary(line []Cell, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1].Text) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1].Text) {
		i--
	}
	return i
}

func nextWordBoundary(line []Cell, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i].Text) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i].Text) {
		i++
	}
	return i
}
