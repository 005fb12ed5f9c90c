package codec

import (
	"strconv"
	"strings"

	"github.com/dshills/richtext/internal/dom"
)

// ToMarkdown serializes a document to CommonMark plus the
// strikethrough extension. Underline has no Markdown form and is
// emitted as inline HTML.
func ToMarkdown(doc *dom.Document) string {
	var b strings.Builder
	writeMarkdownNodes(&b, doc.Children())
	return b.String()
}

func writeMarkdownNodes(b *strings.Builder, nodes []dom.Node) {
	for _, n := range nodes {
		writeMarkdownNode(b, n)
	}
}

func writeMarkdownNode(b *strings.Builder, n dom.Node) {
	switch node := n.(type) {
	case *dom.TextNode:
		b.WriteString(escapeMarkdown(node.Data()))
	case *dom.LineBreakNode:
		b.WriteString("\n")
	case *dom.ContainerNode:
		writeMarkdownContainer(b, node)
	}
}

func writeMarkdownContainer(b *strings.Builder, c *dom.ContainerNode) {
	switch c.Kind() {
	case dom.KindBold:
		wrapMarkdown(b, c, "**", "**")
	case dom.KindItalic:
		wrapMarkdown(b, c, "*", "*")
	case dom.KindStrikeThrough:
		wrapMarkdown(b, c, "~~", "~~")
	case dom.KindUnderline:
		wrapMarkdown(b, c, "<u>", "</u>")
	case dom.KindInlineCode:
		b.WriteString("`")
		// Code spans are literal; only the delimiter needs care.
		for _, child := range c.Children() {
			if t, ok := child.(*dom.TextNode); ok {
				b.WriteString(t.Data())
			}
		}
		b.WriteString("`")
	case dom.KindLink, dom.KindMention:
		b.WriteString("[")
		if c.Kind() == dom.KindMention {
			b.WriteString(escapeMarkdown(mentionText(c)))
		} else {
			writeMarkdownNodes(b, c.Children())
		}
		b.WriteString("](")
		b.WriteString(c.URL())
		b.WriteString(")")
	case dom.KindOrderedList:
		writeMarkdownList(b, c, true)
	case dom.KindUnorderedList:
		writeMarkdownList(b, c, false)
	case dom.KindParagraph:
		writeMarkdownNodes(b, c.Children())
		b.WriteString("\n\n")
	default:
		writeMarkdownNodes(b, c.Children())
	}
}

func wrapMarkdown(b *strings.Builder, c *dom.ContainerNode, opening, closing string) {
	b.WriteString(opening)
	writeMarkdownNodes(b, c.Children())
	b.WriteString(closing)
}

func writeMarkdownList(b *strings.Builder, list *dom.ContainerNode, ordered bool) {
	num := 1
	for _, child := range list.Children() {
		item, ok := child.(*dom.ContainerNode)
		if !ok || item.Kind() != dom.KindListItem {
			writeMarkdownNode(b, child)
			continue
		}
		if ordered {
			b.WriteString(strconv.Itoa(num))
			b.WriteString(". ")
			num++
		} else {
			b.WriteString("- ")
		}
		writeMarkdownNodes(b, item.Children())
		b.WriteString("\n")
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"~", `\~`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
