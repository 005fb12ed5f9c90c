package dom

// ToggleFormat toggles f over the codeunit range [start, end). When
// the whole range already carries f the format is removed; otherwise
// it is applied to the whole range. Inline code is exclusive: applying
// it strips the other inline formats from the range, and applying any
// other format skips runs that carry inline code.
func ToggleFormat(doc *Document, start, end Location, f Format) *Document {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)

	all := true
	any := false
	for i := si; i < ei; i++ {
		if runs[i].isAnchor() {
			continue
		}
		if f != FormatInlineCode && runs[i].formats.Has(FormatInlineCode) {
			continue
		}
		any = true
		if !runs[i].formats.Has(f) {
			all = false
		}
	}
	if !any {
		return rebuild(runs)
	}

	for i := si; i < ei; i++ {
		r := &runs[i]
		if f != FormatInlineCode && r.formats.Has(FormatInlineCode) {
			continue
		}
		if all {
			r.formats = r.formats.Without(f)
			continue
		}
		if f == FormatInlineCode {
			r.formats = 0
		}
		r.formats = r.formats.With(f)
	}
	return rebuild(runs)
}

// RangeFormatted reports whether every run overlapping [start, end)
// carries f. Used for toggle direction and action states.
func RangeFormatted(doc *Document, start, end Location, f Format) bool {
	start, end = ClampRange(doc, start, end)
	runs := flatten(doc)

	var si, ei int
	runs, si = splitAt(runs, start, false)
	runs, ei = splitAt(runs, end, true)

	any := false
	for i := si; i < ei; i++ {
		if runs[i].isAnchor() {
			continue
		}
		any = true
		if !runs[i].formats.Has(f) {
			return false
		}
	}
	return any
}

// FormatsAt returns the inline formats in effect for a collapsed
// caret: those of the codeunit before the caret, or of the first
// content at the document start.
func FormatsAt(doc *Document, caret Location) FormatSet {
	caret = Clamp(caret, doc.Width())
	runs := flatten(doc)
	if ctx, ok := contextAt(runs, caret); ok {
		return ctx.formats
	}
	return 0
}
