package buffer

// Pos points into the document by (row, col) in grapheme cells.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// Style is the set of inline styles carried by a cell.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic

	StyleNone Style = 0
)

func (s Style) Has(o Style) bool { return o != 0 && s&o == o }

// BlockKind identifies how a line is laid out.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockBullet
	BlockOrdered
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockBullet:
		return "bullet"
	case BlockOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Cell is one grapheme cluster with its inline style.
type Cell struct {
	Text  string
	Style Style
}

// Line is one logical line of the document.
type Line struct {
	Kind  BlockKind
	Cells []Cell
}

// Text returns the plain text of the line.
func (l Line) Text() string {
	n := 0
	for _, c := range l.Cells {
		n += len(c.Text)
	}
	buf := make([]byte, 0, n)
	for _, c := range l.Cells {
		buf = append(buf, c.Text...)
	}
	return string(buf)
}

func (l Line) clone() Line {
	return Line{Kind: l.Kind, Cells: append([]Cell(nil), l.Cells...)}
}

func linesEqual(a, b []Line) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || len(a[i].Cells) != len(b[i].Cells) {
			return false
		}
		for j := range a[i].Cells {
			if a[i].Cells[j] != b[i].Cells[j] {
				return false
			}
		}
	}
	return true
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
