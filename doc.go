// Package richtext implements a platform-agnostic rich-text composer
// model: a document tree of text, formatting containers, line breaks,
// lists and links, a UTF-16 codeunit selection, linear undo/redo, and
// the editing operations a host view drives.
//
// Every mutating operation returns a ComposerUpdate telling the host
// what to re-render (conservatively, the full replacement HTML plus
// the new selection) together with a per-action menu state. Selection
// offsets are UTF-16 code units throughout, matching what browser and
// mobile text APIs report.
//
// The model is single-threaded. A ComposerModel must be driven from
// one goroutine, or callers must provide their own locking.
package richtext
