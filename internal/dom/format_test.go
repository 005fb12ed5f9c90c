package dom

import "testing"

func TestToggleFormatApplies(t *testing.T) {
	doc := ToggleFormat(textDoc("abcd"), 1, 3, FormatBold)

	want := NewDocument(NewTextNode("a"), NewContainer(KindBold, NewTextNode("bc")), NewTextNode("d"))
	if !Equal(doc, want) {
		t.Errorf("expected bc bold, got %+v", doc)
	}
}

func TestToggleFormatRemoves(t *testing.T) {
	src := NewDocument(NewTextNode("a"), NewContainer(KindBold, NewTextNode("bc")), NewTextNode("d"))
	doc := ToggleFormat(src, 1, 3, FormatBold)

	if !Equal(doc, textDoc("abcd")) {
		t.Errorf("expected bold removed, got %+v", doc)
	}
}

func TestToggleFormatPartialRangeApplies(t *testing.T) {
	// Half the range bold already: toggling bolds the whole range.
	src := NewDocument(NewContainer(KindBold, NewTextNode("ab")), NewTextNode("cd"))
	doc := ToggleFormat(src, 0, 4, FormatBold)

	want := NewDocument(NewContainer(KindBold, NewTextNode("abcd")))
	if !Equal(doc, want) {
		t.Errorf("expected whole range bold, got %+v", doc)
	}
}

func TestToggleFormatMergesAdjacent(t *testing.T) {
	src := NewDocument(NewContainer(KindBold, NewTextNode("ab")), NewTextNode("cd"))
	doc := ToggleFormat(src, 2, 4, FormatBold)

	want := NewDocument(NewContainer(KindBold, NewTextNode("abcd")))
	if !Equal(doc, want) {
		t.Errorf("expected one merged bold container, got %+v", doc)
	}
}

func TestInlineCodeStripsOtherFormats(t *testing.T) {
	src := NewDocument(NewContainer(KindBold, NewContainer(KindItalic, NewTextNode("ab"))))
	doc := ToggleFormat(src, 0, 2, FormatInlineCode)

	want := NewDocument(NewContainer(KindInlineCode, NewTextNode("ab")))
	if !Equal(doc, want) {
		t.Errorf("expected only inline code, got %+v", doc)
	}
}

func TestInlineCodeKeepsLink(t *testing.T) {
	src := NewDocument(NewLink("https://example.com", NewTextNode("ab")))
	doc := ToggleFormat(src, 0, 2, FormatInlineCode)

	want := NewDocument(NewContainer(KindInlineCode, NewLink("https://example.com", NewTextNode("ab"))))
	if !Equal(doc, want) {
		t.Errorf("expected code around link, got %+v", doc)
	}
}

func TestFormatSkipsInlineCodeRuns(t *testing.T) {
	src := NewDocument(NewContainer(KindInlineCode, NewTextNode("ab")), NewTextNode("cd"))
	doc := ToggleFormat(src, 0, 4, FormatBold)

	want := NewDocument(NewContainer(KindInlineCode, NewTextNode("ab")), NewContainer(KindBold, NewTextNode("cd")))
	if !Equal(doc, want) {
		t.Errorf("expected code run untouched, got %+v", doc)
	}
}

func TestRangeFormatted(t *testing.T) {
	doc := NewDocument(NewTextNode("a"), NewContainer(KindBold, NewTextNode("bc")), NewTextNode("d"))

	if !RangeFormatted(doc, 1, 3, FormatBold) {
		t.Error("expected [1,3) to read as bold")
	}
	if RangeFormatted(doc, 0, 3, FormatBold) {
		t.Error("expected [0,3) not to read as bold")
	}
}

func TestFormatsAt(t *testing.T) {
	doc := NewDocument(NewTextNode("a"), NewContainer(KindBold, NewTextNode("bc")), NewTextNode("d"))

	if !FormatsAt(doc, 3).Has(FormatBold) {
		t.Error("expected bold after bc")
	}
	if FormatsAt(doc, 1).Has(FormatBold) {
		t.Error("expected no bold after a")
	}
}

func TestCanonicalNestingOrder(t *testing.T) {
	// Italic outside bold normalizes to bold outside italic.
	src := NewDocument(NewContainer(KindItalic, NewContainer(KindBold, NewTextNode("ab"))))
	doc := Canonicalize(src)

	want := NewDocument(NewContainer(KindBold, NewContainer(KindItalic, NewTextNode("ab"))))
	if !Equal(doc, want) {
		t.Errorf("expected bold outermost, got %+v", doc)
	}
}

func TestCanonicalizeMergesSiblingText(t *testing.T) {
	src := NewDocument(NewTextNode("ab"), NewTextNode("cd"))
	doc := Canonicalize(src)

	if !Equal(doc, textDoc("abcd")) {
		t.Errorf("expected merged text node, got %+v", doc)
	}
}
