package dom

// Format identifies one inline formatting attribute.
type Format uint8

const (
	FormatBold Format = iota
	FormatItalic
	FormatStrikeThrough
	FormatUnderline
	FormatInlineCode
	formatCount
)

// Kind returns the container kind used to represent the format.
func (f Format) Kind() ContainerKind {
	switch f {
	case FormatBold:
		return KindBold
	case FormatItalic:
		return KindItalic
	case FormatStrikeThrough:
		return KindStrikeThrough
	case FormatUnderline:
		return KindUnderline
	case FormatInlineCode:
		return KindInlineCode
	default:
		return KindDocument
	}
}

// FormatForKind returns the format represented by an inline container
// kind, if any.
func FormatForKind(kind ContainerKind) (Format, bool) {
	switch kind {
	case KindBold:
		return FormatBold, true
	case KindItalic:
		return FormatItalic, true
	case KindStrikeThrough:
		return FormatStrikeThrough, true
	case KindUnderline:
		return FormatUnderline, true
	case KindInlineCode:
		return FormatInlineCode, true
	default:
		return 0, false
	}
}

// FormatSet is a bitmask of inline formats.
type FormatSet uint8

// Has reports whether f is in the set.
func (s FormatSet) Has(f Format) bool { return s&(1<<f) != 0 }

// With returns the set with f added.
func (s FormatSet) With(f Format) FormatSet { return s | 1<<f }

// Without returns the set with f removed.
func (s FormatSet) Without(f Format) FormatSet { return s &^ (1 << f) }

// IsEmpty reports whether the set holds no formats.
func (s FormatSet) IsEmpty() bool { return s == 0 }

// canonicalFormats is the container nesting order, outermost first.
// A fixed order keeps serialization deterministic and round-trip
// idempotent; links always nest innermost.
var canonicalFormats = [formatCount]Format{
	FormatBold,
	FormatItalic,
	FormatStrikeThrough,
	FormatUnderline,
	FormatInlineCode,
}

// run is one atom of the flattened document: a text segment or a line
// break, annotated with its inline formats, link target and the chain
// of block containers that own it (outermost first). Mentions flatten
// to a single atomic run carrying the mention URL.
//
// Block container pointers act as grouping identities during rebuild:
// consecutive runs sharing a pointer are regrouped under one
// container. Operations that change block structure swap in freshly
// allocated containers to force or prevent grouping.
type run struct {
	text    string
	brk     bool
	formats FormatSet
	link    string
	mention string
	blocks  []*ContainerNode
}

func (r *run) width() int {
	if r.brk {
		return 1
	}
	return UTF16Width(r.text)
}

// isAnchor reports whether the run is a zero-width placeholder that
// exists only to keep an empty block container alive.
func (r *run) isAnchor() bool { return !r.brk && r.text == "" && r.mention == "" }

func sameBlocks(a, b []*ContainerNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func runsWidth(runs []run) int {
	w := 0
	for i := range runs {
		w += runs[i].width()
	}
	return w
}

// flatten lowers a document tree to its run sequence.
func flatten(doc *Document) []run {
	var runs []run
	flattenNodes(&runs, doc.Children(), 0, "", nil)
	return runs
}

func flattenNodes(runs *[]run, nodes []Node, formats FormatSet, link string, blocks []*ContainerNode) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *TextNode:
			*runs = append(*runs, run{
				text: node.Data(), formats: formats, link: link, blocks: blocks,
			})
		case *LineBreakNode:
			*runs = append(*runs, run{
				brk: true, formats: formats, link: link, blocks: blocks,
			})
		case *ContainerNode:
			flattenContainer(runs, node, formats, link, blocks)
		}
	}
}

func flattenContainer(runs *[]run, node *ContainerNode, formats FormatSet, link string, blocks []*ContainerNode) {
	if f, ok := FormatForKind(node.Kind()); ok {
		flattenNodes(runs, node.Children(), formats.With(f), link, blocks)
		return
	}
	switch node.Kind() {
	case KindLink:
		flattenNodes(runs, node.Children(), formats, node.URL(), blocks)
	case KindMention:
		*runs = append(*runs, run{
			text:    textContent(node),
			formats: formats,
			link:    link,
			mention: node.URL(),
			blocks:  blocks,
		})
	case KindOrderedList, KindUnorderedList, KindListItem, KindParagraph:
		child := appendBlock(blocks, node)
		if len(node.Children()) == 0 {
			*runs = append(*runs, run{formats: formats, link: link, blocks: child})
			return
		}
		flattenNodes(runs, node.Children(), formats, link, child)
	default:
		flattenNodes(runs, node.Children(), formats, link, blocks)
	}
}

func appendBlock(blocks []*ContainerNode, node *ContainerNode) []*ContainerNode {
	out := make([]*ContainerNode, len(blocks)+1)
	copy(out, blocks)
	out[len(blocks)] = node
	return out
}

func textContent(node *ContainerNode) string {
	text := ""
	for _, child := range node.Children() {
		switch c := child.(type) {
		case *TextNode:
			text += c.Data()
		case *ContainerNode:
			text += textContent(c)
		}
	}
	return text
}

// rebuild constructs the canonical minimal tree for a run sequence.
func rebuild(runs []run) *Document {
	return NewDocument(buildBlocks(runs, 0)...)
}

// buildBlocks groups consecutive runs by their block container at the
// given chain depth; runs with no block at that depth become inline
// content.
func buildBlocks(runs []run, depth int) []Node {
	var out []Node
	for i := 0; i < len(runs); {
		if len(runs[i].blocks) <= depth {
			j := i
			for j < len(runs) && len(runs[j].blocks) <= depth {
				j++
			}
			out = append(out, buildInline(runs[i:j])...)
			i = j
			continue
		}
		owner := runs[i].blocks[depth]
		j := i
		for j < len(runs) && len(runs[j].blocks) > depth && runs[j].blocks[depth] == owner {
			j++
		}
		group := runs[i:j]
		switch owner.Kind() {
		case KindOrderedList, KindUnorderedList:
			out = append(out, buildList(owner.Kind(), group, depth))
		case KindParagraph:
			out = append(out, NewContainer(KindParagraph, buildBlocks(group, depth+1)...))
		default:
			// A list item with no surrounding list cannot be
			// represented; unwrap its content in place.
			out = append(out, buildBlocks(group, depth+1)...)
		}
		i = j
	}
	return out
}

// buildList assembles a list container, folding stray content that is
// not inside an item into an item of its own so items only ever exist
// as direct children of a list.
func buildList(kind ContainerKind, group []run, depth int) Node {
	list := NewContainer(kind)
	for i := 0; i < len(group); {
		if len(group[i].blocks) <= depth+1 || group[i].blocks[depth+1].Kind() != KindListItem {
			j := i
			for j < len(group) && (len(group[j].blocks) <= depth+1 || group[j].blocks[depth+1].Kind() != KindListItem) {
				j++
			}
			list.Append(NewContainer(KindListItem, buildBlocks(group[i:j], depth+1)...))
			i = j
			continue
		}
		item := group[i].blocks[depth+1]
		j := i
		for j < len(group) && len(group[j].blocks) > depth+1 && group[j].blocks[depth+1] == item {
			j++
		}
		list.Append(NewContainer(KindListItem, buildBlocks(group[i:j], depth+2)...))
		i = j
	}
	return list
}

// outermostFormat returns the first canonical format present on the
// run.
func outermostFormat(r run) (Format, bool) {
	for _, f := range canonicalFormats {
		if r.formats.Has(f) {
			return f, true
		}
	}
	return 0, false
}

// buildInline assembles inline content: containers in canonical
// order, adjacent compatible text merged, anchors dropped.
func buildInline(runs []run) []Node {
	var out []Node
	for i := 0; i < len(runs); {
		r := runs[i]
		if f, ok := outermostFormat(r); ok {
			j := i
			for j < len(runs) {
				g, ok := outermostFormat(runs[j])
				if !ok || g != f {
					break
				}
				j++
			}
			sub := make([]run, j-i)
			for k, rr := range runs[i:j] {
				rr.formats = rr.formats.Without(f)
				sub[k] = rr
			}
			out = append(out, NewContainer(f.Kind(), buildInline(sub)...))
			i = j
			continue
		}
		if r.mention != "" {
			out = append(out, NewMention(r.mention, r.text))
			i++
			continue
		}
		if r.link != "" {
			j := i
			sub := []run{}
			for j < len(runs) && runs[j].formats.IsEmpty() && runs[j].mention == "" && runs[j].link == r.link {
				rr := runs[j]
				rr.link = ""
				sub = append(sub, rr)
				j++
			}
			out = append(out, NewLink(r.link, buildInline(sub)...))
			i = j
			continue
		}
		if r.brk {
			out = append(out, NewLineBreakNode())
			i++
			continue
		}
		text := ""
		j := i
		for j < len(runs) && runs[j].formats.IsEmpty() && runs[j].link == "" && runs[j].mention == "" && !runs[j].brk {
			text += runs[j].text
			j++
		}
		if text != "" {
			out = append(out, NewTextNode(text))
		}
		i = j
	}
	return out
}

// Canonicalize rebuilds a document into its canonical minimal form.
// Parsing uses it to normalize arbitrary input nesting.
func Canonicalize(doc *Document) *Document {
	return rebuild(flatten(doc))
}

// splitAt splits the run sequence so the given location falls on a
// run boundary, returning the index of the run starting there.
// Locations inside an atomic run (a break or mention) cannot split
// it: roundUp selects which side of the run the boundary lands on, so
// range extraction always covers atoms it touches. Text splits snap
// down to a rune boundary, never separating a surrogate pair.
func splitAt(runs []run, loc int, roundUp bool) ([]run, int) {
	pos := 0
	for i := 0; i < len(runs); i++ {
		if loc <= pos {
			return runs, i
		}
		w := runs[i].width()
		if loc < pos+w {
			if runs[i].brk || runs[i].mention != "" {
				if roundUp {
					return runs, i + 1
				}
				return runs, i
			}
			left, right := SplitUTF16(runs[i].text, loc-pos)
			if left == "" {
				return runs, i
			}
			if right == "" {
				return runs, i + 1
			}
			out := make([]run, 0, len(runs)+1)
			out = append(out, runs[:i]...)
			lr, rr := runs[i], runs[i]
			lr.text, rr.text = left, right
			out = append(out, lr, rr)
			out = append(out, runs[i+1:]...)
			return out, i + 1
		}
		pos += w
	}
	return runs, len(runs)
}

// indexAt returns the index of the run whose span contains loc,
// preferring the run that starts at loc when it sits on a boundary.
func indexAt(runs []run, loc int) int {
	pos := 0
	for i := range runs {
		w := runs[i].width()
		if w == 0 && loc == pos {
			// An empty block's anchor still occupies a zero-width
			// position.
			return i
		}
		if loc < pos+w {
			return i
		}
		pos += w
	}
	if len(runs) == 0 {
		return 0
	}
	return len(runs) - 1
}

// contextAt returns the run supplying the formatting context for a
// caret: the run owning the codeunit before the caret, or the first
// run at the document start.
func contextAt(runs []run, loc int) (run, bool) {
	if len(runs) == 0 {
		return run{}, false
	}
	if loc <= 0 {
		return runs[0], true
	}
	target := loc - 1
	pos := 0
	var last run
	found := false
	for i := range runs {
		w := runs[i].width()
		if w > 0 {
			if target < pos+w {
				return runs[i], true
			}
			last = runs[i]
			found = true
		}
		pos += w
	}
	if found {
		return last, true
	}
	return runs[len(runs)-1], true
}
