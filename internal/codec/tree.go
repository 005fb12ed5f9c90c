package codec

import (
	"strconv"
	"strings"

	"github.com/dshills/richtext/internal/dom"
)

// ToTree renders the document as an indented debug tree. Text nodes
// are quoted; containers print their kind name.
func ToTree(doc *dom.Document) string {
	var b strings.Builder
	b.WriteString("\n")
	writeTreeChildren(&b, doc.Children(), "")
	return b.String()
}

func writeTreeChildren(b *strings.Builder, nodes []dom.Node, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		writeTreeNode(b, n, prefix, last)
	}
}

func writeTreeNode(b *strings.Builder, n dom.Node, prefix string, last bool) {
	branch := "├>"
	childPrefix := prefix + "│ "
	if last {
		branch = "└>"
		childPrefix = prefix + "  "
	}
	b.WriteString(prefix)
	b.WriteString(branch)
	switch node := n.(type) {
	case *dom.TextNode:
		b.WriteString(strconv.Quote(node.Data()))
	case *dom.LineBreakNode:
		b.WriteString("br")
	case *dom.ContainerNode:
		b.WriteString(treeLabel(node))
		b.WriteString("\n")
		writeTreeChildren(b, node.Children(), childPrefix)
		return
	}
	b.WriteString("\n")
}

func treeLabel(c *dom.ContainerNode) string {
	label := c.Kind().String()
	switch c.Kind() {
	case dom.KindLink, dom.KindMention:
		label += " " + strconv.Quote(c.URL())
	}
	return label
}
