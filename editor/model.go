package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arqmanager/arqedit/buffer"
	"github.com/arqmanager/arqedit/history"
	"github.com/arqmanager/arqedit/markup"
)

// Model is a Bubble Tea component that renders and edits rich text.
//
// The buffer and history are shared by copies of a Model; keep using the
// Model returned by the latest call.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	hist *history.History
	fmtr Formatter

	focused bool

	viewport      viewport.Model
	width, height int

	lastRevision   uint64
	lastBufVersion uint64

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.NewFromLines(parseOrPlain(cfg.Markup, cfg)),
		hist:     history.New(cfg.HistoryLimit),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.fmtr = m.buf
	if cfg.NewFormatter != nil {
		if f := cfg.NewFormatter(m.buf); f != nil {
			m.fmtr = f
		}
	}
	m.hist.Reset(m.Content())
	m.lastRevision = m.buf.Revision()
	m.syncView(true)
	return m
}

func parseOrPlain(s string, cfg Config) []buffer.Line {
	lines, err := markup.Parse(s)
	if err != nil {
		cfg.Logger.Warn("editor: markup rejected, loading as plain text", "error", err)
		return buffer.PlainLines(s)
	}
	return lines
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Content returns the current content as canonical markup.
func (m Model) Content() string { return markup.Render(m.buf.Lines()) }

// SetContent replaces the content from outside the editor. It is refused while
// the user is editing, and replacing content with the same markup does
// nothing. An accepted update becomes an undo step but does not fire OnChange.
func (m Model) SetContent(s string) (Model, bool) {
	if m.isEditing() {
		m.cfg.Logger.Debug("editor: external content update skipped while editing")
		return m, false
	}
	lines := parseOrPlain(s, m.cfg)
	next := markup.Render(lines)
	if next == m.Content() {
		return m, false
	}
	m.buf.SetLines(lines)
	m.lastRevision = m.buf.Revision()
	m.hist.Record(next)
	m.syncView(true)
	return m, true
}

func (m Model) Disabled() bool { return m.cfg.Disabled }

// SetDisabled toggles edit suppression.
func (m Model) SetDisabled(v bool) Model {
	m.cfg.Disabled = v
	m.syncView(false)
	return m
}

func (m Model) isEditing() bool {
	if m.cfg.IsEditing != nil {
		return m.cfg.IsEditing()
	}
	return m.focused
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.toolbarRows(), 0)
	m.syncView(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.syncView(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.syncView(true)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Update handles input. Mouse coordinates are relative to the component's
// top-left corner; hosts that place it elsewhere translate before forwarding.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Hosts may also mutate the buffer directly between updates.
	m.commit(CauseEdit)
	m.syncView(false)
	return m, cmd
}

func (m Model) View() string {
	if m.cfg.HideToolbar {
		return m.viewport.View()
	}
	return m.renderToolbar() + "\n" + m.viewport.View()
}

// commit records a content change in the history and notifies the host.
func (m *Model) commit(cause ChangeCause) bool {
	if m.buf.Revision() == m.lastRevision {
		return false
	}
	m.lastRevision = m.buf.Revision()
	next := m.Content()
	if cur, ok := m.hist.Current(); ok && cur == next {
		return false
	}
	m.hist.Record(next)
	m.notify(cause, next)
	return true
}

// restore loads a history snapshot without recording it.
func (m *Model) restore(s string) {
	m.buf.SetLines(parseOrPlain(s, m.cfg))
	m.lastRevision = m.buf.Revision()
	m.syncView(true)
}

// syncView rebuilds the viewport content when the buffer changed since the
// last render, and keeps the cursor visible.
func (m *Model) syncView(force bool) {
	ver := m.buf.Version()
	if !force && ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	m.viewport.SetContent(m.renderContent())
	m.followCursor()
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.cursorRowIndex(m.layoutRows())
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
