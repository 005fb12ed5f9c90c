package dom

// ToggleList toggles a list of the requested kind over the block
// content covering [start, end). Outside a list, the covered lines
// are wrapped into a new list with one item per line. Inside a list
// of the other kind, the covered items convert to the requested kind,
// splitting the list if the coverage is partial. Inside a list of the
// same kind, the covered items unwrap back to line-break separated
// content.
func ToggleList(doc *Document, start, end Location, ordered bool) *Document {
	start, end = ClampRange(doc, start, end)
	kind := KindUnorderedList
	if ordered {
		kind = KindOrderedList
	}
	runs := flatten(doc)

	if len(runs) == 0 {
		list := NewContainer(kind)
		item := NewContainer(KindListItem)
		return rebuild([]run{{blocks: []*ContainerNode{list, item}}})
	}

	first := caretIndex(runs, start)
	last := first
	if end > start {
		first = indexAt(runs, start)
		last = indexAt(runs, end-1)
	}

	if list, listIdx := innermostList(runs[first].blocks); list != nil {
		return toggleExistingList(runs, list, listIdx, kind, first, last)
	}
	return wrapLines(runs, kind, first, last)
}

// caretIndex returns the run supplying the block context for a
// collapsed caret: an empty block's anchor at the caret wins,
// otherwise the run owning the codeunit before it.
func caretIndex(runs []run, loc Location) int {
	i := indexAt(runs, loc)
	if runs[i].width() == 0 {
		return i
	}
	if loc > 0 {
		pos := 0
		for j := range runs {
			w := runs[j].width()
			if loc-1 < pos+w {
				return j
			}
			pos += w
		}
	}
	return i
}

// innermostList returns the deepest list container on a block chain
// and its index.
func innermostList(blocks []*ContainerNode) (*ContainerNode, int) {
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Kind().IsList() {
			return blocks[i], i
		}
	}
	return nil, -1
}

func toggleExistingList(runs []run, list *ContainerNode, listIdx int, kind ContainerKind, first, last int) *Document {
	// Affected items: item containers under list touched by the run
	// range, clipped to runs actually inside the list.
	affected := map[*ContainerNode]bool{}
	var order []*ContainerNode
	for i := first; i <= last && i < len(runs); i++ {
		idx := blockIndexOf(runs[i].blocks, list)
		if idx != listIdx {
			continue
		}
		if idx+1 < len(runs[i].blocks) {
			item := runs[i].blocks[idx+1]
			if !affected[item] {
				affected[item] = true
				order = append(order, item)
			}
		}
	}
	if len(order) == 0 {
		return rebuild(runs)
	}

	if list.Kind() != kind {
		// Convert the covered items, splitting the list around them.
		converted := NewContainer(kind)
		out := make([]run, len(runs))
		copy(out, runs)
		for i := range out {
			idx := blockIndexOf(out[i].blocks, list)
			if idx != listIdx || idx+1 >= len(out[i].blocks) || !affected[out[i].blocks[idx+1]] {
				continue
			}
			nb := make([]*ContainerNode, len(out[i].blocks))
			copy(nb, out[i].blocks)
			nb[idx] = converted
			out[i].blocks = nb
		}
		return rebuild(out)
	}

	// Same kind: unwrap the covered items. Consecutive unwrapped
	// items become lines separated by breaks.
	var out []run
	var prevItem *ContainerNode
	for i := range runs {
		idx := blockIndexOf(runs[i].blocks, list)
		if idx != listIdx || idx+1 >= len(runs[i].blocks) || !affected[runs[i].blocks[idx+1]] {
			prevItem = nil
			out = append(out, runs[i])
			continue
		}
		item := runs[i].blocks[idx+1]
		outer := make([]*ContainerNode, idx)
		copy(outer, runs[i].blocks[:idx])
		if prevItem != nil && prevItem != item {
			out = append(out, run{brk: true, blocks: outer})
		}
		prevItem = item
		r := runs[i]
		r.blocks = outer
		if !r.isAnchor() || len(outer) > 0 {
			out = append(out, r)
		}
	}
	return rebuild(out)
}

// wrapLines wraps the lines covering the run range into a new list.
// A line is a maximal run of non-break content sharing a block
// context.
func wrapLines(runs []run, kind ContainerKind, first, last int) *Document {
	base := runs[first].blocks
	lineStart := first
	for lineStart > 0 && !runs[lineStart-1].brk && sameBlocks(runs[lineStart-1].blocks, base) {
		lineStart--
	}
	lineEnd := last
	for lineEnd+1 < len(runs) && !runs[lineEnd+1].brk && sameBlocks(runs[lineEnd+1].blocks, base) {
		lineEnd++
	}
	if runs[lineEnd].brk && lineEnd > lineStart {
		lineEnd--
	}

	list := NewContainer(kind)
	item := NewContainer(KindListItem)
	var out []run
	out = append(out, runs[:lineStart]...)
	for i := lineStart; i <= lineEnd; i++ {
		r := runs[i]
		if r.brk && sameBlocks(r.blocks, base) {
			// Line boundary: breaks between wrapped lines become
			// item boundaries.
			item = NewContainer(KindListItem)
			continue
		}
		nb := make([]*ContainerNode, 0, len(base)+2)
		nb = append(nb, base...)
		nb = append(nb, list, item)
		r.blocks = nb
		out = append(out, r)
	}
	if lineEnd < lineStart {
		// Empty line: a list with a single empty item.
		nb := append(append([]*ContainerNode{}, base...), list, item)
		out = append(out, run{blocks: nb})
	}
	out = append(out, runs[lineEnd+1:]...)
	return rebuild(out)
}

// ListContext returns the kind of the innermost list containing the
// whole range, if any.
func ListContext(doc *Document, start, end Location) (ContainerKind, bool) {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)
	if len(runs) == 0 {
		return 0, false
	}
	first := caretIndex(runs, start)
	last := first
	if end > start {
		first = indexAt(runs, start)
		last = indexAt(runs, end-1)
	}
	var kind ContainerKind
	found := false
	for i := first; i <= last && i < len(runs); i++ {
		list, _ := innermostList(runs[i].blocks)
		if list == nil {
			return 0, false
		}
		if found && list.Kind() != kind {
			return 0, false
		}
		kind = list.Kind()
		found = true
	}
	return kind, found
}

// CanIndent reports whether every item covered by the range has a
// preceding sibling to indent under.
func CanIndent(doc *Document, start, end Location) bool {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)
	if len(runs) == 0 {
		return false
	}
	first := caretIndex(runs, start)
	last := first
	if end > start {
		first = indexAt(runs, start)
		last = indexAt(runs, end-1)
	}
	checked := false
	for i := first; i <= last && i < len(runs); i++ {
		list, listIdx := innermostList(runs[i].blocks)
		if list == nil || listIdx+1 >= len(runs[i].blocks) {
			return false
		}
		item := runs[i].blocks[listIdx+1]
		if !hasPrecedingItem(runs, list, item) {
			return false
		}
		checked = true
	}
	return checked
}

// CanUnIndent reports whether the whole range sits inside a nested
// list.
func CanUnIndent(doc *Document, start, end Location) bool {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)
	if len(runs) == 0 {
		return false
	}
	first := caretIndex(runs, start)
	last := first
	if end > start {
		first = indexAt(runs, start)
		last = indexAt(runs, end-1)
	}
	checked := false
	for i := first; i <= last && i < len(runs); i++ {
		lists := 0
		for _, b := range runs[i].blocks {
			if b.Kind().IsList() {
				lists++
			}
		}
		if lists < 2 {
			return false
		}
		checked = true
	}
	return checked
}

func hasPrecedingItem(runs []run, list, item *ContainerNode) bool {
	for i := range runs {
		idx := blockIndexOf(runs[i].blocks, list)
		if idx < 0 || idx+1 >= len(runs[i].blocks) {
			continue
		}
		if runs[i].blocks[idx+1] == item {
			return false
		}
		return true
	}
	return false
}
