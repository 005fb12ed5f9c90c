package codec

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dshills/richtext/internal/dom"
)

var markdownParser = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// FromMarkdown parses CommonMark (plus strikethrough) into a
// canonical document. Block structure beyond lists is collapsed to
// line breaks; constructs the model has no node for are unwrapped to
// their text content.
func FromMarkdown(s string) *dom.Document {
	src := []byte(s)
	root := markdownParser.Parser().Parse(text.NewReader(src))
	children := convertBlocks(root, src)
	return dom.Canonicalize(dom.NewDocument(children...))
}

// convertBlocks converts the block-level children of a node, joining
// consecutive blocks with a line break.
func convertBlocks(n ast.Node, src []byte) []dom.Node {
	var out []dom.Node
	first := true
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		converted := convertMarkdown(c, src)
		if len(converted) == 0 {
			continue
		}
		if !first && blockLevel(c) {
			out = append(out, dom.NewLineBreakNode())
		}
		out = append(out, converted...)
		first = false
	}
	return out
}

func blockLevel(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.Blockquote:
		return true
	}
	return false
}

func convertMarkdown(n ast.Node, src []byte) []dom.Node {
	switch node := n.(type) {
	case *ast.Text:
		out := []dom.Node{dom.NewTextNode(string(node.Segment.Value(src)))}
		if node.SoftLineBreak() || node.HardLineBreak() {
			out = append(out, dom.NewLineBreakNode())
		}
		return out
	case *ast.String:
		return []dom.Node{dom.NewTextNode(string(node.Value))}
	case *ast.Emphasis:
		kind := dom.KindItalic
		if node.Level >= 2 {
			kind = dom.KindBold
		}
		return []dom.Node{dom.NewContainer(kind, convertInlines(n, src)...)}
	case *east.Strikethrough:
		return []dom.Node{dom.NewContainer(dom.KindStrikeThrough, convertInlines(n, src)...)}
	case *ast.CodeSpan:
		return []dom.Node{dom.NewContainer(dom.KindInlineCode, convertInlines(n, src)...)}
	case *ast.Link:
		return []dom.Node{dom.NewLink(string(node.Destination), convertInlines(n, src)...)}
	case *ast.AutoLink:
		url := string(node.URL(src))
		return []dom.Node{dom.NewLink(url, dom.NewTextNode(string(node.Label(src))))}
	case *ast.List:
		kind := dom.KindUnorderedList
		if node.IsOrdered() {
			kind = dom.KindOrderedList
		}
		var items []dom.Node
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			items = append(items, dom.NewContainer(dom.KindListItem, convertBlocks(c, src)...))
		}
		return []dom.Node{dom.NewContainer(kind, items...)}
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading, *ast.Blockquote:
		return convertInlines(n, src)
	case *ast.FencedCodeBlock:
		return codeBlockNodes(node.Lines(), src)
	case *ast.CodeBlock:
		return codeBlockNodes(node.Lines(), src)
	case *ast.RawHTML, *ast.HTMLBlock, *ast.ThematicBreak:
		// No model equivalent; dropped.
		return nil
	default:
		return convertInlines(n, src)
	}
}

func convertInlines(n ast.Node, src []byte) []dom.Node {
	var out []dom.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertMarkdown(c, src)...)
	}
	return out
}

func codeBlockNodes(lines *text.Segments, src []byte) []dom.Node {
	var content []dom.Node
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := string(seg.Value(src))
		if i > 0 {
			content = append(content, dom.NewLineBreakNode())
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		content = append(content, dom.NewTextNode(line))
	}
	if len(content) == 0 {
		return nil
	}
	return []dom.Node{dom.NewContainer(dom.KindInlineCode, content...)}
}
