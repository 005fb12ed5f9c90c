package dom

// Location is a UTF-16 codeunit offset into the flattened document.
type Location = int

// Node is a single node in the composer tree. The variant set is
// closed: TextNode, LineBreakNode and ContainerNode are the only
// implementations, and codec/operation code switches exhaustively
// over them.
type Node interface {
	// Width returns the UTF-16 codeunit width of the subtree.
	Width() int

	// Clone returns a deep copy of the subtree.
	Clone() Node

	sealed()
}

// TextNode owns a run of text. Its width is the UTF-16 codeunit count
// of its content.
type TextNode struct {
	data string
}

// NewTextNode creates a text node with the given content.
func NewTextNode(data string) *TextNode {
	return &TextNode{data: data}
}

// Data returns the node's text content.
func (t *TextNode) Data() string { return t.data }

// Width returns the UTF-16 codeunit count of the content.
func (t *TextNode) Width() int { return UTF16Width(t.data) }

// Clone returns a copy of the text node.
func (t *TextNode) Clone() Node { return &TextNode{data: t.data} }

func (t *TextNode) sealed() {}

// LineBreakNode is a hard line break. It occupies exactly 1 codeunit.
type LineBreakNode struct{}

// NewLineBreakNode creates a line break node.
func NewLineBreakNode() *LineBreakNode { return &LineBreakNode{} }

// Width returns 1: a break is one codeunit in the flattened document.
func (l *LineBreakNode) Width() int { return 1 }

// Clone returns a copy of the line break node.
func (l *LineBreakNode) Clone() Node { return &LineBreakNode{} }

func (l *LineBreakNode) sealed() {}

// ContainerKind tags a container with its formatting or structural
// role.
type ContainerKind uint8

const (
	// KindDocument is the root container; it appears nowhere else.
	KindDocument ContainerKind = iota
	KindBold
	KindItalic
	KindStrikeThrough
	KindUnderline
	KindInlineCode
	KindLink
	KindOrderedList
	KindUnorderedList
	KindListItem
	KindParagraph
	KindMention
)

// String returns the debug name of the kind, matching the HTML tag
// where one exists.
func (k ContainerKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindBold:
		return "strong"
	case KindItalic:
		return "em"
	case KindStrikeThrough:
		return "del"
	case KindUnderline:
		return "u"
	case KindInlineCode:
		return "code"
	case KindLink:
		return "a"
	case KindOrderedList:
		return "ol"
	case KindUnorderedList:
		return "ul"
	case KindListItem:
		return "li"
	case KindParagraph:
		return "p"
	case KindMention:
		return "mention"
	default:
		return "unknown"
	}
}

// IsList reports whether the kind is an ordered or unordered list.
func (k ContainerKind) IsList() bool {
	return k == KindOrderedList || k == KindUnorderedList
}

// IsBlock reports whether the kind is a block-level container.
func (k ContainerKind) IsBlock() bool {
	return k.IsList() || k == KindListItem || k == KindParagraph
}

// ContainerNode owns an ordered sequence of children. Link and
// Mention containers carry a target URL.
type ContainerNode struct {
	kind     ContainerKind
	url      string
	children []Node
}

// Document is the root container of a composer tree.
type Document = ContainerNode

// NewDocument creates a root container with the given children.
func NewDocument(children ...Node) *Document {
	return &ContainerNode{kind: KindDocument, children: children}
}

// NewContainer creates a container of the given kind.
func NewContainer(kind ContainerKind, children ...Node) *ContainerNode {
	return &ContainerNode{kind: kind, children: children}
}

// NewLink creates a link container targeting url.
func NewLink(url string, children ...Node) *ContainerNode {
	return &ContainerNode{kind: KindLink, url: url, children: children}
}

// NewMention creates an atomic mention of url with the given display
// text.
func NewMention(url, text string) *ContainerNode {
	return &ContainerNode{
		kind:     KindMention,
		url:      url,
		children: []Node{NewTextNode(text)},
	}
}

// Kind returns the container's kind tag.
func (c *ContainerNode) Kind() ContainerKind { return c.kind }

// URL returns the link or mention target, or "" for other kinds.
func (c *ContainerNode) URL() string { return c.url }

// Children returns the container's child slice. Callers must not
// mutate it.
func (c *ContainerNode) Children() []Node { return c.children }

// Append adds a child at the end of the container.
func (c *ContainerNode) Append(n Node) { c.children = append(c.children, n) }

// Width returns the summed UTF-16 codeunit width of the children.
func (c *ContainerNode) Width() int {
	w := 0
	for _, child := range c.children {
		w += child.Width()
	}
	return w
}

// Clone returns a deep copy of the container subtree.
func (c *ContainerNode) Clone() Node {
	children := make([]Node, len(c.children))
	for i, child := range c.children {
		children[i] = child.Clone()
	}
	return &ContainerNode{kind: c.kind, url: c.url, children: children}
}

// CloneDocument returns a deep copy of a document root.
func CloneDocument(doc *Document) *Document {
	return doc.Clone().(*ContainerNode)
}

func (c *ContainerNode) sealed() {}

// Equal reports structural equality of two nodes.
func Equal(a, b Node) bool {
	switch an := a.(type) {
	case *TextNode:
		bn, ok := b.(*TextNode)
		return ok && an.data == bn.data
	case *LineBreakNode:
		_, ok := b.(*LineBreakNode)
		return ok
	case *ContainerNode:
		bn, ok := b.(*ContainerNode)
		if !ok || an.kind != bn.kind || an.url != bn.url {
			return false
		}
		if len(an.children) != len(bn.children) {
			return false
		}
		for i := range an.children {
			if !Equal(an.children[i], bn.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clamp restricts loc to [0, max].
func Clamp(loc Location, max int) Location {
	if loc < 0 {
		return 0
	}
	if loc > max {
		return max
	}
	return loc
}

// ClampRange clamps both ends of a range to the document and orders
// them so start <= end.
func ClampRange(doc *Document, start, end Location) (Location, Location) {
	max := doc.Width()
	start = Clamp(start, max)
	end = Clamp(end, max)
	if start > end {
		start, end = end, start
	}
	return start, end
}
