package markup

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/arqmanager/arqedit/buffer"
	"github.com/arqmanager/arqedit/internal/grapheme"
)

// Render serializes lines to canonical markup. A document made of one empty
// paragraph renders as "".
func Render(lines []buffer.Line) string {
	if len(lines) == 0 || (len(lines) == 1 && lines[0].Kind == buffer.BlockParagraph && len(lines[0].Cells) == 0) {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(lines); {
		kind := lines[i].Kind
		j := i
		for j < len(lines) && lines[j].Kind == kind {
			j++
		}
		run := lines[i:j]
		i = j

		switch kind {
		case buffer.BlockBullet, buffer.BlockOrdered:
			tag := "ul"
			if kind == buffer.BlockOrdered {
				tag = "ol"
			}
			sb.WriteString("<" + tag + ">")
			for _, l := range run {
				sb.WriteString("<li>")
				writeInline(&sb, l.Cells)
				sb.WriteString("</li>")
			}
			sb.WriteString("</" + tag + ">")
		default:
			for k, l := range run {
				writeInline(&sb, l.Cells)
				// An empty line needs its <br> to exist at all.
				if k < len(run)-1 || len(l.Cells) == 0 {
					sb.WriteString("<br>")
				}
			}
		}
	}
	return sb.String()
}

func writeInline(sb *strings.Builder, cells []buffer.Cell) {
	for i := 0; i < len(cells); {
		st := cells[i].Style
		var text strings.Builder
		for i < len(cells) && cells[i].Style == st {
			text.WriteString(cells[i].Text)
			i++
		}
		if st.Has(buffer.StyleBold) {
			sb.WriteString("<b>")
		}
		if st.Has(buffer.StyleItalic) {
			sb.WriteString("<i>")
		}
		sb.WriteString(html.EscapeString(text.String()))
		if st.Has(buffer.StyleItalic) {
			sb.WriteString("</i>")
		}
		if st.Has(buffer.StyleBold) {
			sb.WriteString("</b>")
		}
	}
}

// Normalize returns the canonical form of s.
func Normalize(s string) (string, error) {
	lines, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Render(lines), nil
}

// Parse reads markup into document lines. The result always holds at least
// one line.
func Parse(s string) ([]buffer.Line, error) {
	p := &parser{}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return p.result(), nil
		case html.TextToken:
			p.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			p.start(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			p.end(string(name))
		}
	}
}

type parser struct {
	lines []buffer.Line
	open  bool

	bold, italic int
	lists        []buffer.BlockKind
}

func (p *parser) kind() buffer.BlockKind {
	if len(p.lists) == 0 {
		return buffer.BlockParagraph
	}
	return p.lists[len(p.lists)-1]
}

func (p *parser) style() buffer.Style {
	st := buffer.StyleNone
	if p.bold > 0 {
		st |= buffer.StyleBold
	}
	if p.italic > 0 {
		st |= buffer.StyleItalic
	}
	return st
}

func (p *parser) newLine(kind buffer.BlockKind) {
	p.lines = append(p.lines, buffer.Line{Kind: kind})
	p.open = true
}

func (p *parser) text(s string) {
	if !p.open && strings.TrimSpace(s) == "" && strings.Contains(s, "\n") {
		// Indentation between block tags.
		return
	}
	st := p.style()
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			p.lineBreak()
		}
		if part == "" {
			continue
		}
		if !p.open {
			p.newLine(p.kind())
		}
		last := &p.lines[len(p.lines)-1]
		for _, c := range grapheme.Split(part) {
			last.Cells = append(last.Cells, buffer.Cell{Text: c, Style: st})
		}
	}
}

// lineBreak terminates the current line, creating it empty if none is open.
func (p *parser) lineBreak() {
	if !p.open {
		p.newLine(p.kind())
	}
	p.open = false
}

func (p *parser) start(name string) {
	switch name {
	case "b", "strong":
		p.bold++
	case "i", "em":
		p.italic++
	case "ul":
		p.lists = append(p.lists, buffer.BlockBullet)
		p.open = false
	case "ol":
		p.lists = append(p.lists, buffer.BlockOrdered)
		p.open = false
	case "li":
		kind := p.kind()
		if kind == buffer.BlockParagraph {
			kind = buffer.BlockBullet
		}
		p.newLine(kind)
	case "br":
		p.lineBreak()
	case "p", "div":
		p.open = false
	}
}

func (p *parser) end(name string) {
	switch name {
	case "b", "strong":
		if p.bold > 0 {
			p.bold--
		}
	case "i", "em":
		if p.italic > 0 {
			p.italic--
		}
	case "ul", "ol":
		if len(p.lists) > 0 {
			p.lists = p.lists[:len(p.lists)-1]
		}
		p.open = false
	case "li", "p", "div":
		p.open = false
	}
}

func (p *parser) result() []buffer.Line {
	if len(p.lines) == 0 {
		return []buffer.Line{{Kind: buffer.BlockParagraph}}
	}
	return p.lines
}

// PlainText returns the text content of s with lines joined by '\n'.
func PlainText(s string) (string, error) {
	lines, err := Parse(s)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l.Text())
	}
	return buf.String(), nil
}
