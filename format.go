package richtext

import "github.com/dshills/richtext/internal/dom"

// Bold toggles bold over the selection.
func (m *ComposerModel) Bold() ComposerUpdate {
	return m.toggleFormat(dom.FormatBold)
}

// Italic toggles italic over the selection.
func (m *ComposerModel) Italic() ComposerUpdate {
	return m.toggleFormat(dom.FormatItalic)
}

// StrikeThrough toggles strikethrough over the selection.
func (m *ComposerModel) StrikeThrough() ComposerUpdate {
	return m.toggleFormat(dom.FormatStrikeThrough)
}

// Underline toggles underline over the selection.
func (m *ComposerModel) Underline() ComposerUpdate {
	return m.toggleFormat(dom.FormatUnderline)
}

// InlineCode toggles inline code over the selection. Inline code is
// exclusive: applying it removes the other inline formats from the
// covered range. Links survive.
func (m *ComposerModel) InlineCode() ComposerUpdate {
	return m.toggleFormat(dom.FormatInlineCode)
}

func (m *ComposerModel) toggleFormat(f dom.Format) ComposerUpdate {
	start, end := m.orderedRange()
	if start == end {
		// No range to format yet; remember the toggle for the next
		// typed text.
		current := m.pending
		if !m.pendingActive {
			current = dom.FormatsAt(m.doc, start)
		}
		if current.Has(f) {
			current = current.Without(f)
		} else if f == dom.FormatInlineCode {
			current = dom.FormatSet(0).With(f)
		} else {
			current = current.With(f)
		}
		m.pending = current
		m.pendingActive = true
		return m.keepUpdate()
	}
	m.snapshot()
	m.doc = dom.ToggleFormat(m.doc, start, end, f)
	return m.replaceAllUpdate()
}

// OrderedList toggles an ordered list over the lines covered by the
// selection.
func (m *ComposerModel) OrderedList() ComposerUpdate {
	return m.toggleList(true)
}

// UnorderedList toggles an unordered list over the lines covered by
// the selection.
func (m *ComposerModel) UnorderedList() ComposerUpdate {
	return m.toggleList(false)
}

func (m *ComposerModel) toggleList(ordered bool) ComposerUpdate {
	m.snapshot()
	start, end := m.orderedRange()
	m.doc = dom.ToggleList(m.doc, start, end, ordered)
	max := m.doc.Width()
	m.anchor = dom.Clamp(m.anchor, max)
	m.focus = dom.Clamp(m.focus, max)
	return m.replaceAllUpdate()
}

// SetLink wraps the selection in a link to url. A range intersecting
// an existing link replaces that link; a collapsed cursor inside a
// link retargets it and is otherwise a no-op.
func (m *ComposerModel) SetLink(url string) ComposerUpdate {
	m.snapshot()
	start, end := m.orderedRange()
	m.doc = dom.SetLink(m.doc, start, end, url)
	return m.replaceAllUpdate()
}

// RemoveLinks unwraps every link intersecting the selection. A
// collapsed cursor unwraps its enclosing link.
func (m *ComposerModel) RemoveLinks() ComposerUpdate {
	m.snapshot()
	start, end := m.orderedRange()
	m.doc = dom.RemoveLinks(m.doc, start, end)
	return m.replaceAllUpdate()
}
