package editor

// Clipboard connects copy, cut and paste to the host's clipboard.
//
// Errors are logged at debug level and never reach the UI.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.cfg.Logger.Debug("clipboard write failed", "error", err)
	}
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	m.copySelection()
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Debug("clipboard read failed", "error", err)
		return
	}
	if s == "" {
		return
	}
	m.buf.InsertText(s)
}
