package dom

// SetLink wraps [start, end) in a link to url. Links do not nest: any
// link partially or fully covered by the range is absorbed, and a
// range strictly inside an existing link replaces that whole link. A
// collapsed selection outside a link is a no-op.
func SetLink(doc *Document, start, end Location, url string) *Document {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)
	si, ei = expandToLinks(runs, si, ei)
	if si >= ei {
		return rebuild(runs)
	}

	for i := si; i < ei; i++ {
		if runs[i].mention != "" {
			continue
		}
		runs[i].link = url
	}
	return rebuild(runs)
}

// RemoveLinks removes every link intersecting [start, end), each in
// its entirety. A collapsed selection removes the link containing the
// caret.
func RemoveLinks(doc *Document, start, end Location) *Document {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)
	si, ei = expandToLinks(runs, si, ei)

	for i := si; i < ei; i++ {
		runs[i].link = ""
	}
	return rebuild(runs)
}

// expandToLinks widens a run index range to whole links. For an empty
// range it grows around the caret's enclosing link, if any.
func expandToLinks(runs []run, si, ei int) (int, int) {
	if si >= ei {
		link := ""
		if si > 0 && runs[si-1].link != "" {
			link = runs[si-1].link
		} else if si < len(runs) && runs[si].link != "" {
			link = runs[si].link
		}
		if link == "" {
			return si, ei
		}
		for si > 0 && runs[si-1].link == link {
			si--
		}
		ei = si
		for ei < len(runs) && runs[ei].link == link {
			ei++
		}
		return si, ei
	}

	for si > 0 && runs[si-1].link != "" && runs[si-1].link == runs[si].link {
		si--
	}
	for ei < len(runs) && runs[ei].link != "" && runs[ei].link == runs[ei-1].link {
		ei++
	}
	return si, ei
}

// InLink reports whether the whole range [start, end) (or the caret,
// when collapsed) sits inside link content.
func InLink(doc *Document, start, end Location) bool {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)
	if len(runs) == 0 {
		return false
	}
	if start == end {
		ctx, ok := contextAt(runs, start)
		return ok && ctx.link != ""
	}

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)
	any := false
	for i := si; i < ei; i++ {
		if runs[i].isAnchor() {
			continue
		}
		if runs[i].link == "" {
			return false
		}
		any = true
	}
	return any
}
