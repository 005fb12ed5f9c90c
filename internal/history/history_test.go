package history

import (
	"errors"
	"testing"

	"github.com/dshills/richtext/internal/dom"
)

func stateOf(text string, caret dom.Location) State {
	return State{
		Doc:    dom.NewDocument(dom.NewTextNode(text)),
		Anchor: caret,
		Focus:  caret,
	}
}

func TestNewHistoryEmpty(t *testing.T) {
	h := New(0)

	if h.CanUndo() {
		t.Error("new history should have nothing to undo")
	}
	if h.CanRedo() {
		t.Error("new history should have nothing to redo")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New(0)
	h.Push(stateOf("a", 1))

	prev, err := h.Undo(stateOf("ab", 2))
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if prev.Focus != 1 {
		t.Errorf("expected focus 1, got %d", prev.Focus)
	}

	next, err := h.Redo(prev)
	if err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if next.Focus != 2 {
		t.Errorf("expected focus 2, got %d", next.Focus)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New(0)

	_, err := h.Undo(stateOf("a", 1))
	if !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestRedoEmpty(t *testing.T) {
	h := New(0)

	_, err := h.Redo(stateOf("a", 1))
	if !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New(0)
	h.Push(stateOf("a", 1))

	if _, err := h.Undo(stateOf("ab", 2)); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	h.Push(stateOf("ac", 2))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestMaxEntriesCap(t *testing.T) {
	h := New(2)
	h.Push(stateOf("a", 1))
	h.Push(stateOf("ab", 2))
	h.Push(stateOf("abc", 3))

	if h.UndoCount() != 2 {
		t.Errorf("expected 2 entries, got %d", h.UndoCount())
	}

	// The oldest entry was dropped; the deepest undo is "ab".
	prev, err := h.Undo(stateOf("abcd", 4))
	if err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if prev.Focus != 3 {
		t.Errorf("expected focus 3, got %d", prev.Focus)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := stateOf("ab", 2)
	c := s.Clone()

	c.Doc.Append(dom.NewTextNode("x"))
	if len(s.Doc.Children()) != 1 {
		t.Error("clone should not share the document tree")
	}
}

func TestClear(t *testing.T) {
	h := New(0)
	h.Push(stateOf("a", 1))
	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
