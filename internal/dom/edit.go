package dom

import "strings"

// ReplaceRange deletes the codeunit range [start, end), inserts text
// at start, and returns the new document with the caret location
// after the inserted text. Inserted text inherits the inline formats
// of the codeunit before the insertion point; overrideFormats, when
// non-nil, replaces the inherited set (pending formats from a toggle
// on a collapsed selection). A link never extends past its final
// character or before its first. Newlines in text become line breaks.
func ReplaceRange(doc *Document, start, end Location, text string, overrideFormats *FormatSet) (*Document, Location) {
	return replaceRange(doc, start, end, text, overrideFormats, false)
}

// ReplaceRangeTopLevel is ReplaceRange with the inserted text placed
// at the top level of the document instead of the block context around
// the caret. The first insertion after enter exits a list uses it so
// typed text lands after the list rather than back inside it.
func ReplaceRangeTopLevel(doc *Document, start, end Location, text string, overrideFormats *FormatSet) (*Document, Location) {
	return replaceRange(doc, start, end, text, overrideFormats, true)
}

func replaceRange(doc *Document, start, end Location, text string, overrideFormats *FormatSet, topLevel bool) (*Document, Location) {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)
	if ei < si {
		ei = si
	}

	before := runs[:si]
	after := runs[ei:]

	ins := insertionRuns(before, after, text, overrideFormats, topLevel)

	merged := make([]run, 0, len(before)+len(ins)+len(after))
	merged = append(merged, before...)
	merged = append(merged, ins...)
	merged = append(merged, after...)

	caret := runsWidth(before) + runsWidth(ins)
	return rebuild(merged), caret
}

// insertionRuns builds the runs for inserted text, deriving formatting
// and block context from the surrounding runs.
func insertionRuns(before, after []run, text string, overrideFormats *FormatSet, topLevel bool) []run {
	if text == "" {
		return nil
	}

	ctx := run{}
	haveCtx := false
	fromBefore := false
	for i := len(before) - 1; i >= 0; i-- {
		if !before[i].isAnchor() {
			ctx = before[i]
			haveCtx = true
			fromBefore = true
			break
		}
	}
	if !haveCtx && len(after) > 0 {
		ctx = after[0]
		haveCtx = true
	}

	formats := FormatSet(0)
	link := ""
	var blocks []*ContainerNode
	if haveCtx {
		formats = ctx.formats
		blocks = ctx.blocks
		// Extend a link only when the insertion point is strictly
		// inside it: the same link on both sides of the caret. At the
		// link's first character the text stays outside.
		if fromBefore && ctx.link != "" && len(after) > 0 && after[0].link == ctx.link {
			link = ctx.link
		}
	}
	if overrideFormats != nil {
		formats = *overrideFormats
	}
	if topLevel {
		blocks = nil
	}

	var ins []run
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			ins = append(ins, run{brk: true, formats: formats, blocks: blocks})
		}
		if seg != "" {
			ins = append(ins, run{text: seg, formats: formats, link: link, blocks: blocks})
		}
	}
	return ins
}

// BackspaceStart returns the start of the range a backspace at the
// given caret removes: one codeunit, widened to a whole grapheme
// cluster (a flag or ZWJ emoji sequence deletes atomically) or a
// whole mention.
func BackspaceStart(doc *Document, caret Location) Location {
	caret = Clamp(caret, doc.Width())
	if caret == 0 {
		return 0
	}
	runs := flatten(doc)
	pos := 0
	for i := range runs {
		w := runs[i].width()
		if caret-1 < pos+w && caret-1 >= pos {
			if runs[i].brk {
				return caret - 1
			}
			if runs[i].mention != "" {
				return pos
			}
			return pos + prevGraphemeStart(runs[i].text, caret-pos)
		}
		pos += w
	}
	return caret - 1
}

// DeleteEnd returns the end of the range a forward delete at the
// given caret removes, mirroring BackspaceStart.
func DeleteEnd(doc *Document, caret Location) Location {
	width := doc.Width()
	caret = Clamp(caret, width)
	if caret >= width {
		return width
	}
	runs := flatten(doc)
	pos := 0
	for i := range runs {
		w := runs[i].width()
		if caret < pos+w {
			if runs[i].brk {
				return caret + 1
			}
			if runs[i].mention != "" {
				return pos + w
			}
			return pos + nextGraphemeEnd(runs[i].text, caret-pos)
		}
		pos += w
	}
	return caret + 1
}

// Enter applies the enter key at a collapsed caret: a line break in
// plain content; inside a list item it splits the item, and on an
// empty trailing item it exits the list. Returns the new document, the
// caret, and whether a list was exited; after an exit the caller routes
// the next insertion through ReplaceRangeTopLevel.
func Enter(doc *Document, caret Location) (*Document, Location, bool) {
	caret = Clamp(caret, doc.Width())
	runs := flatten(doc)

	item, list := caretListItem(runs, caret)
	if item == nil {
		out, c := ReplaceRange(doc, caret, caret, "\n", nil)
		return out, c, false
	}

	if itemContentEmpty(runs, item) && lastItemOfList(runs, list, item) {
		// Enter on an empty trailing item exits the list.
		out := make([]run, 0, len(runs))
		pos := 0
		caretOut := caret
		for i := range runs {
			r := runs[i]
			if blockIndexOf(r.blocks, item) >= 0 {
				caretOut = pos
				// The anchor leaves the list; an empty top-level
				// line needs no node at all.
				pos += r.width()
				continue
			}
			out = append(out, r)
			pos += r.width()
		}
		return rebuild(out), caretOut, true
	}

	// Split the item at the caret: runs after the caret move to a
	// fresh item.
	var si int
	runs, si = splitAt(runs, caret, false)
	newItem := NewContainer(KindListItem)
	split := false
	for i := range runs {
		if i < si {
			continue
		}
		idx := blockIndexOf(runs[i].blocks, item)
		if idx < 0 {
			continue
		}
		nb := make([]*ContainerNode, len(runs[i].blocks))
		copy(nb, runs[i].blocks)
		nb[idx] = newItem
		runs[i].blocks = nb
		split = true
	}
	if !split {
		// Caret at the very end of the item: append an empty item.
		base := itemBlocksPrefix(runs, item)
		insertAt := endOfItem(runs, item)
		out := make([]run, 0, len(runs)+1)
		out = append(out, runs[:insertAt]...)
		out = append(out, run{blocks: append(base, newItem)})
		out = append(out, runs[insertAt:]...)
		runs = out
	}
	return rebuild(runs), caret, false
}

// caretListItem returns the innermost list item containing the caret
// context, with its list container.
func caretListItem(runs []run, caret Location) (item, list *ContainerNode) {
	if len(runs) == 0 {
		return nil, nil
	}
	r := runs[indexAt(runs, caret)]
	// An empty item's anchor at the caret wins over the content
	// before the caret.
	if !(r.isAnchor() && innermostItem(r.blocks) != nil) && caret > 0 {
		if ctx, ok := contextAt(runs, caret); ok && innermostItem(ctx.blocks) != nil {
			r = ctx
		}
	}
	for i := len(r.blocks) - 1; i > 0; i-- {
		if r.blocks[i].Kind() == KindListItem && r.blocks[i-1].Kind().IsList() {
			return r.blocks[i], r.blocks[i-1]
		}
	}
	return nil, nil
}

func innermostItem(blocks []*ContainerNode) *ContainerNode {
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Kind() == KindListItem {
			return blocks[i]
		}
	}
	return nil
}

func blockIndexOf(blocks []*ContainerNode, target *ContainerNode) int {
	for i, b := range blocks {
		if b == target {
			return i
		}
	}
	return -1
}

func itemContentEmpty(runs []run, item *ContainerNode) bool {
	for i := range runs {
		if blockIndexOf(runs[i].blocks, item) >= 0 && runs[i].width() > 0 {
			return false
		}
	}
	return true
}

func lastItemOfList(runs []run, list, item *ContainerNode) bool {
	seen := false
	for i := range runs {
		inItem := blockIndexOf(runs[i].blocks, item) >= 0
		if inItem {
			seen = true
			continue
		}
		if seen && blockIndexOf(runs[i].blocks, list) >= 0 {
			return false
		}
	}
	return seen
}

func itemBlocksPrefix(runs []run, item *ContainerNode) []*ContainerNode {
	for i := range runs {
		if idx := blockIndexOf(runs[i].blocks, item); idx >= 0 {
			prefix := make([]*ContainerNode, idx)
			copy(prefix, runs[i].blocks[:idx])
			return prefix
		}
	}
	return nil
}

func endOfItem(runs []run, item *ContainerNode) int {
	end := 0
	for i := range runs {
		if blockIndexOf(runs[i].blocks, item) >= 0 {
			end = i + 1
		}
	}
	return end
}
