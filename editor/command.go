package editor

import (
	"github.com/arqmanager/arqedit/buffer"
)

// Command is a discrete toolbar or keyboard action.
type Command uint8

const (
	CommandBold Command = iota
	CommandItalic
	CommandBulletList
	CommandOrderedList
	CommandUndo
	CommandRedo
)

// Names follow the execCommand vocabulary hosts already store in toolbars.
var commandNames = [...]string{
	CommandBold:        "bold",
	CommandItalic:      "italic",
	CommandBulletList:  "insertUnorderedList",
	CommandOrderedList: "insertOrderedList",
	CommandUndo:        "undo",
	CommandRedo:        "redo",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand maps an execCommand-style name to a Command.
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return 0, false
}

// Formatter applies formatting to the document. Implementations report false
// for formats they do not support; the editor ignores those silently.
type Formatter interface {
	ApplyInlineStyle(style buffer.Style) bool
	ToggleListStyle(kind buffer.BlockKind) bool
}

// Exec runs cmd against the current selection. Format commands go through the
// Formatter; undo and redo go through the history. It reports whether the
// content changed.
func (m Model) Exec(cmd Command) (Model, bool) {
	if m.cfg.Disabled || m.buf == nil {
		return m, false
	}

	var applied bool
	switch cmd {
	case CommandUndo:
		return m.stepHistory(CauseUndo)
	case CommandRedo:
		return m.stepHistory(CauseRedo)
	case CommandBold:
		applied = m.fmtr.ApplyInlineStyle(buffer.StyleBold)
	case CommandItalic:
		applied = m.fmtr.ApplyInlineStyle(buffer.StyleItalic)
	case CommandBulletList:
		applied = m.fmtr.ToggleListStyle(buffer.BlockBullet)
	case CommandOrderedList:
		applied = m.fmtr.ToggleListStyle(buffer.BlockOrdered)
	default:
		m.cfg.Logger.Debug("editor: unknown command ignored", "command", int(cmd))
		return m, false
	}

	if !applied {
		m.cfg.Logger.Debug("editor: format command not applied", "command", cmd.String())
		return m, false
	}
	changed := m.commit(CauseFormat)
	m.syncView(true)
	return m, changed
}

// ExecNamed runs the command called name. Unknown names are ignored.
func (m Model) ExecNamed(name string) (Model, bool) {
	cmd, ok := ParseCommand(name)
	if !ok {
		m.cfg.Logger.Debug("editor: unsupported command ignored", "command", name)
		return m, false
	}
	return m.Exec(cmd)
}

func (m Model) Undo() (Model, bool) { return m.Exec(CommandUndo) }

func (m Model) Redo() (Model, bool) { return m.Exec(CommandRedo) }

func (m Model) CanUndo() bool { return m.hist.CanUndo() }

func (m Model) CanRedo() bool { return m.hist.CanRedo() }

func (m Model) stepHistory(cause ChangeCause) (Model, bool) {
	step := m.hist.Undo
	if cause == CauseRedo {
		step = m.hist.Redo
	}
	s, ok := step()
	if !ok {
		return m, false
	}
	m.restore(s)
	m.notify(cause, s)
	return m, true
}
