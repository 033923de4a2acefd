// Package buffer implements the rich-text document model behind the editor.
//
// A document is a list of lines. Each line has a block kind (paragraph,
// bullet item, ordered item) and a list of cells, one grapheme cluster per
// cell, each carrying its inline style.
//
// Coordinates are 0-based (Row, Col) in cells.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
