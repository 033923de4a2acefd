package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, markup string) (model, string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.html")
	logs := &bytes.Buffer{}
	cfg := config{File: path, Placeholder: "empty"}
	return newModel(cfg, markup, newLogger(logs, slog.LevelDebug)), path, logs
}

func send(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func TestModel_EditAndSave(t *testing.T) {
	m, path, logs := newTestModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hi")})
	assert.True(t, m.note.dirty)
	assert.Equal(t, 1, m.note.changes)
	assert.Contains(t, m.View(), "modified")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.note.dirty)
	assert.Equal(t, "saved", m.status)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hi", string(b))
	assert.Contains(t, logs.String(), "note saved")
}

func TestModel_ReloadReplacesContent(t *testing.T) {
	m, path, _ := newTestModel(t, "old")
	require.NoError(t, os.WriteFile(path, []byte("<b>new</b>"), 0o644))

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "<b>new</b>", m.editor.Content())
	assert.Equal(t, "reloaded", m.status)
	assert.True(t, m.editor.Focused())
	assert.Equal(t, 0, m.note.changes)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "unchanged on disk", m.status)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReadNote_MissingFileIsEmpty(t *testing.T) {
	s, err := readNote(filepath.Join(t.TempDir(), "none.html"))
	require.NoError(t, err)
	assert.Empty(t, s)
}
