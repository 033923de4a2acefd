// Package history keeps a linear undo/redo log of content snapshots.
//
// The log is a sequence of entries with a cursor on the current one. Recording
// after an undo discards the entries past the cursor, so there is never more
// than one redo branch.
package history

// History is a snapshot log with a movable cursor.
// The zero value is an empty, unbounded log.
type History struct {
	entries []string
	cursor  int
	limit   int
}

// New returns an empty log. A positive limit caps the number of entries kept;
// the oldest entries are dropped first. limit <= 0 keeps everything.
func New(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Reset drops every entry and starts over with initial as the only one.
func (h *History) Reset(initial string) {
	h.entries = append(h.entries[:0], initial)
	h.cursor = 0
}

// Record truncates everything after the cursor, appends s and moves the
// cursor onto it.
func (h *History) Record(s string) {
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, s)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append(h.entries[:0], h.entries[len(h.entries)-h.limit:]...)
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps back and returns the entry now under the cursor.
func (h *History) Undo() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps forward and returns the entry now under the cursor.
func (h *History) Redo() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// CanUndo reports whether an entry exists before the cursor.
func (h *History) CanUndo() bool { return len(h.entries) > 0 && h.cursor > 0 }

// CanRedo reports whether an entry exists after the cursor.
func (h *History) CanRedo() bool { return len(h.entries) > 0 && h.cursor < len(h.entries)-1 }

// Cursor returns the index of the current entry, or -1 when the log is empty.
func (h *History) Cursor() int {
	if len(h.entries) == 0 {
		return -1
	}
	return h.cursor
}

// Len returns the number of entries in the log.
func (h *History) Len() int { return len(h.entries) }

// Current returns the entry under the cursor.
func (h *History) Current() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the log.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
