package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arqmanager/arqedit/editor"
)

// noteState is shared with the editor's OnChange callback.
type noteState struct {
	dirty   bool
	changes int
	last    editor.ChangeEvent
}

func (s *noteState) handleChange(ev editor.ChangeEvent) {
	s.dirty = true
	s.changes++
	s.last = ev
}

// osc52Clipboard copies through the terminal (OSC 52) and pastes what was
// last copied inside the program.
type osc52Clipboard struct {
	text string
}

func (c *osc52Clipboard) ReadText() (string, error) { return c.text, nil }

func (c *osc52Clipboard) WriteText(s string) error {
	c.text = s
	termenv.Copy(s)
	return nil
}

type model struct {
	editor editor.Model
	note   *noteState
	path   string
	status string
	logger *slog.Logger

	statusStyle lipgloss.Style
}

func newModel(cfg config, markup string, logger *slog.Logger) model {
	note := &noteState{}
	ed := editor.New(editor.Config{
		Markup:       markup,
		Placeholder:  cfg.Placeholder,
		Disabled:     cfg.Disabled,
		HistoryLimit: cfg.HistoryLimit,
		OnChange:     note.handleChange,
		Clipboard:    &osc52Clipboard{},
		Style:        editor.DefaultStyle(),
		Logger:       logger,
	})
	return model{
		editor:      ed,
		note:        note,
		path:        cfg.File,
		logger:      logger,
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			return m.save(), nil
		case "ctrl+r":
			return m.reload(), nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) save() model {
	content := m.editor.Content()
	if err := writeNote(m.path, content); err != nil {
		m.logger.Error("save failed", "error", err)
		m.status = err.Error()
		return m
	}
	m.note.dirty = false
	m.status = "saved"
	m.logger.Info("note saved", "file", m.path, "bytes", len(content))
	return m
}

// reload replaces the content with the file on disk. The editor refuses
// external updates while focused, so it is blurred for the swap.
func (m model) reload() model {
	s, err := readNote(m.path)
	if err != nil {
		m.logger.Error("reload failed", "error", err)
		m.status = err.Error()
		return m
	}
	focused := m.editor.Focused()
	m.editor = m.editor.Blur()
	var ok bool
	m.editor, ok = m.editor.SetContent(s)
	if focused {
		m.editor = m.editor.Focus()
	}
	if ok {
		m.note.dirty = false
		m.status = "reloaded"
	} else {
		m.status = "unchanged on disk"
	}
	return m
}

func (m model) View() string {
	parts := []string{m.path}
	if m.note.dirty {
		parts = append(parts, "modified")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.note.changes > 0 {
		parts = append(parts, fmt.Sprintf("%d changes, last %s", m.note.changes, m.note.last.Cause))
	}
	parts = append(parts, "ctrl+s save  ctrl+r reload  ctrl+q quit")
	return m.editor.View() + "\n" + m.statusStyle.Render(strings.Join(parts, " • "))
}
