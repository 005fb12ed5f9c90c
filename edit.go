package richtext

import "github.com/dshills/richtext/internal/dom"

// ReplaceText replaces the current selection with text. Typed text
// inherits the inline formats at the cursor, or the pending formats
// if a format was toggled at a collapsed cursor since the last edit.
// A "\n" in text becomes a line break.
func (m *ComposerModel) ReplaceText(text string) ComposerUpdate {
	start, end := m.orderedRange()
	return m.replaceRange(text, start, end)
}

// ReplaceTextIn replaces the codeunit range [start, end) with text,
// independent of the current selection.
func (m *ComposerModel) ReplaceTextIn(text string, start, end dom.Location) ComposerUpdate {
	if start > end {
		start, end = end, start
	}
	return m.replaceRange(text, start, end)
}

func (m *ComposerModel) replaceRange(text string, start, end dom.Location) ComposerUpdate {
	if start == end && text == "" {
		// Nothing changes; no history entry either.
		return m.keepUpdate()
	}
	topLevel := m.listExit && start == end
	m.snapshot()
	var override *dom.FormatSet
	if m.pendingActive && start == end {
		pending := m.pending
		override = &pending
	}
	var doc *dom.Document
	var caret dom.Location
	if topLevel {
		doc, caret = dom.ReplaceRangeTopLevel(m.doc, start, end, text, override)
	} else {
		doc, caret = dom.ReplaceRange(m.doc, start, end, text, override)
	}
	m.doc = doc
	m.anchor, m.focus = caret, caret
	m.pendingActive = false
	return m.replaceAllUpdate()
}

// Backspace deletes the selection, or the grapheme cluster before a
// collapsed cursor. Mentions delete as a single unit.
func (m *ComposerModel) Backspace() ComposerUpdate {
	start, end := m.orderedRange()
	if start == end {
		start = dom.BackspaceStart(m.doc, end)
		if start == end {
			return m.keepUpdate()
		}
	}
	return m.replaceRange("", start, end)
}

// Delete deletes the selection, or the grapheme cluster after a
// collapsed cursor.
func (m *ComposerModel) Delete() ComposerUpdate {
	start, end := m.orderedRange()
	if start == end {
		end = dom.DeleteEnd(m.doc, start)
		if end == start {
			return m.keepUpdate()
		}
	}
	return m.replaceRange("", start, end)
}

// DeleteIn deletes the codeunit range [start, end), independent of
// the current selection.
func (m *ComposerModel) DeleteIn(start, end dom.Location) ComposerUpdate {
	if start > end {
		start, end = end, start
	}
	if start == end {
		return m.keepUpdate()
	}
	return m.replaceRange("", start, end)
}

// Enter inserts a line break at the cursor. Inside a list item it
// splits the item; on an empty trailing item it exits the list, and
// the next typed text lands after the list. A range selection is
// deleted first.
func (m *ComposerModel) Enter() ComposerUpdate {
	m.snapshot()
	start, end := m.orderedRange()
	doc := m.doc
	caret := start
	if start != end {
		doc, caret = dom.ReplaceRange(doc, start, end, "", nil)
	}
	doc, caret, exited := dom.Enter(doc, caret)
	m.doc = doc
	m.anchor, m.focus = caret, caret
	m.pendingActive = false
	m.listExit = exited
	return m.replaceAllUpdate()
}
