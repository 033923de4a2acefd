// Package markup converts between the editor's document lines and the markup
// string hosts store.
//
// Render produces a canonical form: inline runs as <b> and <i>, paragraph
// lines terminated by <br>, list lines grouped into <ul>/<ol> with one <li>
// each. Parse accepts any HTML fragment and keeps what the document model can
// express; unknown tags are dropped while their text is kept.
package markup
