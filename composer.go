package richtext

import (
	"fmt"

	"github.com/dshills/richtext/internal/codec"
	"github.com/dshills/richtext/internal/dom"
	"github.com/dshills/richtext/internal/history"
)

// ComposerModel is the rich-text editing model. It owns the document
// tree, the selection and the undo history, and exposes the editing
// operations a platform shell drives.
//
// A model is not safe for concurrent use; the owning shell serializes
// calls.
type ComposerModel struct {
	doc    *dom.Document
	anchor dom.Location
	focus  dom.Location
	hist   *history.History

	// pending holds inline formats toggled at a collapsed cursor,
	// to be applied to the next typed text.
	pending       dom.FormatSet
	pendingActive bool

	// listExit is set when enter exits a list, so the next insertion
	// at the unmoved caret lands after the list instead of back
	// inside its last item.
	listExit bool
}

// New creates an empty composer model.
func New(opts ...Option) *ComposerModel {
	cfg := newConfig(opts)
	m := &ComposerModel{
		doc:  dom.NewDocument(),
		hist: history.New(cfg.maxUndoEntries),
	}
	if cfg.content != "" {
		m.doc = codec.FromHTML(cfg.content)
	}
	return m
}

// NewFromHTML creates a model whose content is parsed from the
// constrained HTML subset. The cursor starts collapsed at the end of
// the content.
func NewFromHTML(html string, opts ...Option) *ComposerModel {
	m := New(opts...)
	m.doc = codec.FromHTML(html)
	end := m.doc.Width()
	m.anchor, m.focus = end, end
	return m
}

// NewFromMarkdown creates a model whose content is parsed from
// Markdown. The cursor starts collapsed at the end of the content.
func NewFromMarkdown(md string, opts ...Option) *ComposerModel {
	m := New(opts...)
	m.doc = codec.FromMarkdown(md)
	end := m.doc.Width()
	m.anchor, m.focus = end, end
	return m
}

// NewFromExampleFormat creates a model from example-format text, with
// the selection taken from the inline markers.
func NewFromExampleFormat(s string, opts ...Option) (*ComposerModel, error) {
	doc, anchor, focus, err := codec.FromExampleFormat(s)
	if err != nil {
		return nil, fmt.Errorf("richtext: parse example format: %w", err)
	}
	m := New(opts...)
	m.doc = doc
	m.anchor, m.focus = anchor, focus
	return m, nil
}

// Select moves the selection. Anchor is the fixed end, focus the
// moving end; both are clamped to the document width. The content is
// untouched; the update carries the new selection and menu state.
func (m *ComposerModel) Select(anchor, focus dom.Location) ComposerUpdate {
	max := m.doc.Width()
	m.anchor = dom.Clamp(anchor, max)
	m.focus = dom.Clamp(focus, max)
	m.pendingActive = false
	m.listExit = false
	return m.selectUpdate()
}

// GetSelection returns the current (anchor, focus) pair.
func (m *ComposerModel) GetSelection() (anchor, focus dom.Location) {
	return m.anchor, m.focus
}

// GetContentAsHTML serializes the document to HTML.
func (m *ComposerModel) GetContentAsHTML() string {
	return codec.ToHTML(m.doc)
}

// GetContentAsMarkdown serializes the document to Markdown.
func (m *ComposerModel) GetContentAsMarkdown() string {
	return codec.ToMarkdown(m.doc)
}

// SetContentFromHTML replaces the whole document with parsed HTML and
// collapses the cursor to the end.
func (m *ComposerModel) SetContentFromHTML(html string) ComposerUpdate {
	m.snapshot()
	m.doc = codec.FromHTML(html)
	end := m.doc.Width()
	m.anchor, m.focus = end, end
	return m.replaceAllUpdate()
}

// SetContentFromMarkdown replaces the whole document with parsed
// Markdown and collapses the cursor to the end.
func (m *ComposerModel) SetContentFromMarkdown(md string) ComposerUpdate {
	m.snapshot()
	m.doc = codec.FromMarkdown(md)
	end := m.doc.Width()
	m.anchor, m.focus = end, end
	return m.replaceAllUpdate()
}

// Undo restores the state before the most recent mutation.
func (m *ComposerModel) Undo() (ComposerUpdate, error) {
	prev, err := m.hist.Undo(m.state())
	if err != nil {
		return m.keepUpdate(), err
	}
	m.restore(prev)
	return m.replaceAllUpdate(), nil
}

// Redo reapplies the most recently undone mutation.
func (m *ComposerModel) Redo() (ComposerUpdate, error) {
	next, err := m.hist.Redo(m.state())
	if err != nil {
		return m.keepUpdate(), err
	}
	m.restore(next)
	return m.replaceAllUpdate(), nil
}

func (m *ComposerModel) state() history.State {
	return history.State{Doc: m.doc, Anchor: m.anchor, Focus: m.focus}
}

func (m *ComposerModel) restore(s history.State) {
	m.doc = s.Doc
	m.anchor = s.Anchor
	m.focus = s.Focus
	m.pendingActive = false
	m.listExit = false
}

// snapshot records the current state before a mutation. Any mutation
// invalidates a pending list exit; Enter re-arms it afterwards.
func (m *ComposerModel) snapshot() {
	m.listExit = false
	m.hist.Push(m.state().Clone())
}

// orderedRange returns the selection normalized to start <= end.
func (m *ComposerModel) orderedRange() (dom.Location, dom.Location) {
	if m.anchor <= m.focus {
		return m.anchor, m.focus
	}
	return m.focus, m.anchor
}

func (m *ComposerModel) replaceAllUpdate() ComposerUpdate {
	return ComposerUpdate{
		TextUpdate: TextUpdate{
			ReplaceAll: &ReplaceAll{
				ReplacementHTML:    codec.ToHTML(m.doc),
				StartUTF16CodeUnit: m.anchor,
				EndUTF16CodeUnit:   m.focus,
			},
		},
		MenuState: m.ActionStates(),
	}
}

func (m *ComposerModel) selectUpdate() ComposerUpdate {
	return ComposerUpdate{
		TextUpdate: TextUpdate{
			Select: &Selection{
				StartUTF16CodeUnit: m.anchor,
				EndUTF16CodeUnit:   m.focus,
			},
		},
		MenuState: m.ActionStates(),
	}
}

func (m *ComposerModel) keepUpdate() ComposerUpdate {
	return ComposerUpdate{MenuState: m.ActionStates()}
}
