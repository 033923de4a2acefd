package buffer

// ApplyInlineStyle toggles style over the active selection. When every cell
// in the selection already carries style it is removed, otherwise it is added.
// It reports whether any cell changed; without a selection it does nothing.
func (b *Buffer) ApplyInlineStyle(style Style) bool {
	if style == StyleNone {
		return false
	}
	r, ok := b.Selection()
	if !ok {
		return false
	}

	all, seen := true, false
	b.eachCell(r, func(c *Cell) {
		seen = true
		if !c.Style.Has(style) {
			all = false
		}
	})
	if !seen {
		return false
	}

	changed := false
	b.eachCell(r, func(c *Cell) {
		next := c.Style | style
		if all {
			next = c.Style &^ style
		}
		if next != c.Style {
			c.Style = next
			changed = true
		}
	})
	if changed {
		b.touch()
	}
	return changed
}

// ToggleListStyle switches the lines covered by the selection, or the cursor
// line, to kind. When all of them already are kind they become paragraphs.
func (b *Buffer) ToggleListStyle(kind BlockKind) bool {
	if kind != BlockBullet && kind != BlockOrdered {
		return false
	}
	first, last := b.cursor.Row, b.cursor.Row
	if r, ok := b.Selection(); ok {
		first, last = r.Start.Row, r.End.Row
		// A selection ending at column 0 does not touch that line.
		if last > first && r.End.Col == 0 {
			last--
		}
	}

	next := kind
	if b.allKind(first, last, kind) {
		next = BlockParagraph
	}
	return b.setKind(first, last, next)
}

func (b *Buffer) allKind(first, last int, kind BlockKind) bool {
	for row := first; row <= last; row++ {
		if b.lines[row].Kind != kind {
			return false
		}
	}
	return true
}

func (b *Buffer) setKind(first, last int, kind BlockKind) bool {
	changed := false
	for row := first; row <= last; row++ {
		if b.lines[row].Kind == kind {
			continue
		}
		b.lines[row] = Line{Kind: kind, Cells: b.lines[row].Cells}
		changed = true
	}
	if changed {
		b.touch()
	}
	return changed
}

// eachCell visits the cells inside r in document order.
func (b *Buffer) eachCell(r Range, fn func(c *Cell)) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	for row := r.Start.Row; row <= r.End.Row; row++ {
		cells := b.lines[row].Cells
		start, end := 0, len(cells)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		for i := start; i < end; i++ {
			fn(&cells[i])
		}
	}
}
