package codec

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dshills/richtext/internal/dom"
)

// FromHTML parses the constrained HTML subset into a canonical
// document. Unknown tags are unwrapped, unknown attributes ignored;
// the x/net parser auto-closes malformed nesting. Parsing never
// fails: unparseable input yields an empty document.
func FromHTML(s string) *dom.Document {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return dom.NewDocument()
	}
	var children []dom.Node
	for _, n := range parsed {
		children = append(children, convertHTML(n)...)
	}
	return dom.Canonicalize(dom.NewDocument(children...))
}

func convertHTML(n *html.Node) []dom.Node {
	switch n.Type {
	case html.TextNode:
		if strings.Trim(n.Data, "\n\r\t") == "" {
			return nil
		}
		// The serializer emits spaces as &nbsp;; fold them back so a
		// parse/serialize cycle is stable.
		return []dom.Node{dom.NewTextNode(strings.ReplaceAll(n.Data, " ", " "))}
	case html.ElementNode:
		return convertElement(n)
	default:
		return nil
	}
}

func convertElement(n *html.Node) []dom.Node {
	switch n.DataAtom {
	case atom.Br:
		return []dom.Node{dom.NewLineBreakNode()}
	case atom.B, atom.Strong:
		return wrapKind(dom.KindBold, n)
	case atom.I, atom.Em:
		return wrapKind(dom.KindItalic, n)
	case atom.Del, atom.S, atom.Strike:
		return wrapKind(dom.KindStrikeThrough, n)
	case atom.U:
		return wrapKind(dom.KindUnderline, n)
	case atom.Code:
		return wrapKind(dom.KindInlineCode, n)
	case atom.A:
		return convertAnchor(n)
	case atom.Ol:
		return wrapKind(dom.KindOrderedList, n)
	case atom.Ul:
		return wrapKind(dom.KindUnorderedList, n)
	case atom.Li:
		return wrapKind(dom.KindListItem, n)
	case atom.P:
		return wrapKind(dom.KindParagraph, n)
	default:
		// Unknown tag: keep its content, drop the markup.
		return convertChildren(n)
	}
}

func convertAnchor(n *html.Node) []dom.Node {
	href := ""
	mention := false
	for _, a := range n.Attr {
		switch a.Key {
		case "href":
			href = a.Val
		case "data-mention-type":
			mention = true
		}
	}
	if mention {
		text := plainText(n)
		return []dom.Node{dom.NewMention(href, text)}
	}
	return []dom.Node{dom.NewLink(href, convertChildren(n)...)}
}

func wrapKind(kind dom.ContainerKind, n *html.Node) []dom.Node {
	return []dom.Node{dom.NewContainer(kind, convertChildren(n)...)}
}

func convertChildren(n *html.Node) []dom.Node {
	var out []dom.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, convertHTML(c)...)
	}
	return out
}

func plainText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(plainText(c))
	}
	return b.String()
}
