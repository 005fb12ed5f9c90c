package codec

import (
	"strings"

	"github.com/dshills/richtext/internal/dom"
)

// ToHTML serializes a document to the constrained HTML subset. The
// tree is expected in canonical form, so output ordering is stable
// and a parse/serialize round trip is a fixed point.
func ToHTML(doc *dom.Document) string {
	w := &htmlWriter{}
	w.writeChildren(doc.Children())
	return w.b.String()
}

// marker is a selection marker to inject into serialized output at a
// content position. Eager markers emit as soon as the position is
// reached (binding to the end of the previous node); lazy markers
// wait for the next piece of content (binding to the start of the
// next node).
type marker struct {
	pos     int
	text    string
	eager   bool
	emitted bool
}

type htmlWriter struct {
	b       strings.Builder
	pos     int
	markers []marker
}

func (w *htmlWriter) writeChildren(nodes []dom.Node) {
	for _, n := range nodes {
		w.writeNode(n)
	}
}

func (w *htmlWriter) writeNode(n dom.Node) {
	switch node := n.(type) {
	case *dom.TextNode:
		w.writeText(node.Data())
	case *dom.LineBreakNode:
		w.flushAll(w.pos)
		w.b.WriteString("<br />")
		w.pos++
		w.flushEager(w.pos)
	case *dom.ContainerNode:
		w.writeContainer(node)
	}
}

func (w *htmlWriter) writeContainer(c *dom.ContainerNode) {
	opening, closing := containerTags(c)
	w.b.WriteString(opening)
	if c.Kind() == dom.KindMention {
		// Mentions are atomic: markers never land inside them.
		w.b.WriteString(escapeText(mentionText(c)))
		w.pos += c.Width()
		w.b.WriteString(closing)
		w.flushEager(w.pos)
		return
	}
	if len(c.Children()) == 0 {
		// An empty container still anchors a zero-width position.
		w.flushAll(w.pos)
	}
	w.writeChildren(c.Children())
	w.b.WriteString(closing)
}

func (w *htmlWriter) writeText(data string) {
	for data != "" {
		w.flushAll(w.pos)
		width := dom.UTF16Width(data)
		cut := width
		if m := w.nextMarkerIn(w.pos, w.pos+width); m >= 0 {
			cut = m - w.pos
		}
		chunk, rest := dom.SplitUTF16(data, cut)
		w.b.WriteString(escapeText(chunk))
		w.pos += dom.UTF16Width(chunk)
		data = rest
		w.flushEager(w.pos)
	}
}

// nextMarkerIn returns the smallest unemitted marker position within
// (from, to), or -1.
func (w *htmlWriter) nextMarkerIn(from, to int) int {
	best := -1
	for i := range w.markers {
		m := &w.markers[i]
		if m.emitted || m.pos <= from || m.pos >= to {
			continue
		}
		if best < 0 || m.pos < best {
			best = m.pos
		}
	}
	return best
}

func (w *htmlWriter) flushEager(pos int) {
	for i := range w.markers {
		m := &w.markers[i]
		if !m.emitted && m.eager && m.pos <= pos {
			w.b.WriteString(m.text)
			m.emitted = true
		}
	}
}

func (w *htmlWriter) flushLazy(pos int) {
	for i := range w.markers {
		m := &w.markers[i]
		if !m.emitted && !m.eager && m.pos <= pos {
			w.b.WriteString(m.text)
			m.emitted = true
		}
	}
}

func (w *htmlWriter) flushAll(pos int) {
	w.flushEager(pos)
	w.flushLazy(pos)
}

func (w *htmlWriter) finish() string {
	// Whatever is left belongs at the very end of the document.
	for i := range w.markers {
		m := &w.markers[i]
		if !m.emitted {
			w.b.WriteString(m.text)
			m.emitted = true
		}
	}
	return w.b.String()
}

func containerTags(c *dom.ContainerNode) (string, string) {
	switch c.Kind() {
	case dom.KindBold:
		return "<strong>", "</strong>"
	case dom.KindItalic:
		return "<em>", "</em>"
	case dom.KindStrikeThrough:
		return "<del>", "</del>"
	case dom.KindUnderline:
		return "<u>", "</u>"
	case dom.KindInlineCode:
		return "<code>", "</code>"
	case dom.KindLink:
		return `<a href="` + escapeAttr(c.URL()) + `">`, "</a>"
	case dom.KindMention:
		return `<a data-mention-type="mention" href="` + escapeAttr(c.URL()) + `" contenteditable="false">`, "</a>"
	case dom.KindOrderedList:
		return "<ol>", "</ol>"
	case dom.KindUnorderedList:
		return "<ul>", "</ul>"
	case dom.KindListItem:
		return "<li>", "</li>"
	case dom.KindParagraph:
		return "<p>", "</p>"
	default:
		return "", ""
	}
}

func mentionText(c *dom.ContainerNode) string {
	var b strings.Builder
	for _, child := range c.Children() {
		if t, ok := child.(*dom.TextNode); ok {
			b.WriteString(t.Data())
		}
	}
	return b.String()
}

func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case ' ':
			b.WriteString("&nbsp;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeAttr(s string) string {
	s = escapeText(s)
	return strings.ReplaceAll(s, `"`, "&quot;")
}
