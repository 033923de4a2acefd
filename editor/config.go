package editor

import (
	"log/slog"

	"github.com/arqmanager/arqedit/buffer"
)

const defaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial content as markup. Parsed once in New.
	Markup string

	// Shown in place of the content while the document is empty.
	Placeholder string

	// Disabled suppresses every edit, format command, undo and redo.
	// Cursor movement and selection still work.
	Disabled bool

	// OnChange receives the content after every accepted mutation.
	OnChange func(ChangeEvent)

	// IsEditing reports whether the user is mid-edit. SetContent is refused
	// while it returns true. Defaults to the model's focus state.
	IsEditing func() bool

	// NewFormatter builds the formatting capability for the internal buffer.
	// Defaults to the buffer itself.
	NewFormatter func(*buffer.Buffer) Formatter

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// WrapMode selects how long lines wrap to the editor width.
	WrapMode WrapMode

	HideToolbar bool
	Style       Style
	KeyMap      KeyMap
	TabWidth    int

	// HistoryLimit caps undo entries; <= 0 keeps every entry.
	HistoryLimit int

	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
