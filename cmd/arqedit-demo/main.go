// Command arqedit-demo is a notes page hosting the editor: it loads a markup
// file, saves it on ctrl+s and reloads it from disk on ctrl+r.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "arqedit-demo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closeLog()

	if !cfg.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	note, err := readNote(cfg.File)
	if err != nil {
		return err
	}
	logger.Info("note loaded", "file", cfg.File, "bytes", len(note))

	p := tea.NewProgram(newModel(cfg, note, logger), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// openLogger logs to path, or discards when path is empty. The terminal
// belongs to the UI.
func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return newLogger(f, level), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readNote returns the file's markup; a missing file is an empty note.
func readNote(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read note %s: %w", path, err)
	}
	return string(b), nil
}

func writeNote(path, markup string) error {
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write note %s: %w", path, err)
	}
	return nil
}
