// Package history provides the linear undo/redo stack for a composer
// model. Entries are full state snapshots (document copy plus
// selection), which makes undo and redo exact inverses by
// construction.
//
// A History belongs to exactly one composer instance and is not safe
// for concurrent use; the owning model serializes access.
package history

import (
	"errors"

	"github.com/dshills/richtext/internal/dom"
)

// Errors returned by history operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries caps the undo stack when no explicit limit is
// configured.
const DefaultMaxEntries = 1000

// State is one snapshot of composer state: the document tree plus the
// selection as an (anchor, focus) pair.
type State struct {
	Doc    *dom.Document
	Anchor dom.Location
	Focus  dom.Location
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Doc:    dom.CloneDocument(s.Doc),
		Anchor: s.Anchor,
		Focus:  s.Focus,
	}
}

// History manages undo/redo snapshots with standard linear-undo
// semantics: recording a new state after an undo discards the redo
// stack.
type History struct {
	undoStack  []State
	redoStack  []State
	maxEntries int
}

// New creates a history with the given undo depth limit.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records the state that preceded a mutation and clears the redo
// stack.
func (h *History) Push(prev State) {
	h.undoStack = append(h.undoStack, prev)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo exchanges the current state for the most recent undo snapshot.
func (h *History) Undo(current State) (State, error) {
	if len(h.undoStack) == 0 {
		return State{}, ErrNothingToUndo
	}
	prev := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return prev, nil
}

// Redo exchanges the current state for the most recently undone
// snapshot.
func (h *History) Redo(current State) (State, error) {
	if len(h.redoStack) == 0 {
		return State{}, ErrNothingToRedo
	}
	next := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return next, nil
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of undo snapshots.
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of redo snapshots.
func (h *History) RedoCount() int { return len(h.redoStack) }

// Clear discards all undo and redo snapshots.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
