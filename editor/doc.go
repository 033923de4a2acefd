// Package editor provides a Bubble Tea rich-text editor component backed by
// the buffer, history and markup packages.
//
// The host passes initial markup in Config and receives the current markup
// through Config.OnChange after every accepted edit, format command, undo and
// redo. Toolbar buttons, key bindings and Model.Exec all dispatch the same
// Command values.
package editor
