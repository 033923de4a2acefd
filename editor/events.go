package editor

// ChangeCause identifies what produced a change event.
type ChangeCause uint8

const (
	CauseEdit ChangeCause = iota
	CauseFormat
	CauseUndo
	CauseRedo
)

func (c ChangeCause) String() string {
	switch c {
	case CauseEdit:
		return "edit"
	case CauseFormat:
		return "format"
	case CauseUndo:
		return "undo"
	case CauseRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// ChangeEvent carries the content after an accepted mutation.
type ChangeEvent struct {
	Markup string
	Text   string // plain text, lines joined by '\n'

	Version  uint64
	Revision uint64
	Cause    ChangeCause

	CanUndo bool
	CanRedo bool
}

func (m *Model) notify(cause ChangeCause, markup string) {
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(ChangeEvent{
		Markup:   markup,
		Text:     m.buf.Text(),
		Version:  m.buf.Version(),
		Revision: m.buf.Revision(),
		Cause:    cause,
		CanUndo:  m.hist.CanUndo(),
		CanRedo:  m.hist.CanRedo(),
	})
}
