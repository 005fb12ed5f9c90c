package dom

import "testing"

func textDoc(s string) *Document {
	return NewDocument(NewTextNode(s))
}

func TestReplaceRangeInsert(t *testing.T) {
	doc, caret := ReplaceRange(textDoc("ad"), 1, 1, "bc", nil)

	want := textDoc("abcd")
	if !Equal(doc, want) {
		t.Errorf("expected abcd, got %+v", doc)
	}
	if caret != 3 {
		t.Errorf("expected caret 3, got %d", caret)
	}
}

func TestReplaceRangeDelete(t *testing.T) {
	doc, caret := ReplaceRange(textDoc("abcd"), 0, 1, "", nil)

	if !Equal(doc, textDoc("bcd")) {
		t.Errorf("expected bcd, got %+v", doc)
	}
	if caret != 0 {
		t.Errorf("expected caret 0, got %d", caret)
	}
}

func TestReplaceRangeReplace(t *testing.T) {
	doc, caret := ReplaceRange(textDoc("abcd"), 1, 3, "XY", nil)

	if !Equal(doc, textDoc("aXYd")) {
		t.Errorf("expected aXYd, got %+v", doc)
	}
	if caret != 3 {
		t.Errorf("expected caret 3, got %d", caret)
	}
}

func TestReplaceRangeInheritsFormats(t *testing.T) {
	src := NewDocument(NewContainer(KindBold, NewTextNode("ab")))
	doc, _ := ReplaceRange(src, 2, 2, "c", nil)

	want := NewDocument(NewContainer(KindBold, NewTextNode("abc")))
	if !Equal(doc, want) {
		t.Errorf("expected abc fully bold, got %+v", doc)
	}
}

func TestReplaceRangeOverrideFormats(t *testing.T) {
	src := NewDocument(NewContainer(KindBold, NewTextNode("ab")))
	var none FormatSet
	doc, _ := ReplaceRange(src, 2, 2, "c", &none)

	want := NewDocument(NewContainer(KindBold, NewTextNode("ab")), NewTextNode("c"))
	if !Equal(doc, want) {
		t.Errorf("expected plain c after bold ab, got %+v", doc)
	}
}

func TestReplaceRangeDoesNotExtendLink(t *testing.T) {
	src := NewDocument(NewLink("https://example.com", NewTextNode("ab")), NewTextNode("x"))
	doc, _ := ReplaceRange(src, 2, 2, "c", nil)

	want := NewDocument(NewLink("https://example.com", NewTextNode("ab")), NewTextNode("cx"))
	if !Equal(doc, want) {
		t.Errorf("expected link not to absorb typed text, got %+v", doc)
	}
}

func TestReplaceRangeInsideLink(t *testing.T) {
	src := NewDocument(NewLink("https://example.com", NewTextNode("ab")))
	doc, _ := ReplaceRange(src, 1, 1, "c", nil)

	want := NewDocument(NewLink("https://example.com", NewTextNode("acb")))
	if !Equal(doc, want) {
		t.Errorf("expected text inside the link, got %+v", doc)
	}
}

func TestReplaceRangeAtLinkStartStaysOutside(t *testing.T) {
	src := NewDocument(NewLink("https://example.com", NewTextNode("ab")))
	doc, caret := ReplaceRange(src, 0, 0, "c", nil)

	want := NewDocument(NewTextNode("c"), NewLink("https://example.com", NewTextNode("ab")))
	if !Equal(doc, want) {
		t.Errorf("expected link not to extend backward, got %+v", doc)
	}
	if caret != 1 {
		t.Errorf("expected caret 1, got %d", caret)
	}
}

func TestReplaceRangeNewline(t *testing.T) {
	doc, caret := ReplaceRange(textDoc("ab"), 1, 1, "x\ny", nil)

	want := NewDocument(NewTextNode("ax"), NewLineBreakNode(), NewTextNode("yb"))
	if !Equal(doc, want) {
		t.Errorf("expected break between x and y, got %+v", doc)
	}
	if caret != 4 {
		t.Errorf("expected caret 4, got %d", caret)
	}
}

func TestBackspaceStartPlain(t *testing.T) {
	if got := BackspaceStart(textDoc("abc"), 2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := BackspaceStart(textDoc("abc"), 0); got != 0 {
		t.Errorf("expected 0 at document start, got %d", got)
	}
}

func TestBackspaceStartGrapheme(t *testing.T) {
	astronaut := "\U0001F469\U0001F3FF‍\U0001F680"
	doc := textDoc("ab" + astronaut)

	if got := BackspaceStart(doc, 9); got != 2 {
		t.Errorf("expected whole cluster removal from 2, got %d", got)
	}
}

func TestBackspaceStartMention(t *testing.T) {
	doc := NewDocument(NewTextNode("hi "), NewMention("https://matrix.to/#/@alice:example.org", "Alice"))

	if got := BackspaceStart(doc, 8); got != 3 {
		t.Errorf("expected whole mention removal from 3, got %d", got)
	}
}

func TestDeleteEndPlain(t *testing.T) {
	if got := DeleteEnd(textDoc("abc"), 1); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := DeleteEnd(textDoc("abc"), 3); got != 3 {
		t.Errorf("expected 3 at document end, got %d", got)
	}
}

func TestDeleteEndGrapheme(t *testing.T) {
	astronaut := "\U0001F469\U0001F3FF‍\U0001F680"
	doc := textDoc(astronaut + "x")

	if got := DeleteEnd(doc, 0); got != 7 {
		t.Errorf("expected whole cluster removal to 7, got %d", got)
	}
}

func TestEnterPlainContent(t *testing.T) {
	doc, caret, _ := Enter(textDoc("ab"), 1)

	want := NewDocument(NewTextNode("a"), NewLineBreakNode(), NewTextNode("b"))
	if !Equal(doc, want) {
		t.Errorf("expected break at caret, got %+v", doc)
	}
	if caret != 2 {
		t.Errorf("expected caret 2, got %d", caret)
	}
}

func listDoc(kind ContainerKind, items ...string) *Document {
	list := NewContainer(kind)
	for _, item := range items {
		list.Append(NewContainer(KindListItem, NewTextNode(item)))
	}
	return NewDocument(list)
}

func TestEnterSplitsListItem(t *testing.T) {
	doc, caret, _ := Enter(listDoc(KindUnorderedList, "ab"), 1)

	want := listDoc(KindUnorderedList, "a", "b")
	if !Equal(doc, want) {
		t.Errorf("expected item split into a and b, got %+v", doc)
	}
	if caret != 1 {
		t.Errorf("expected caret 1, got %d", caret)
	}
}

func TestEnterAtItemEndAppendsEmptyItem(t *testing.T) {
	doc, caret, _ := Enter(listDoc(KindUnorderedList, "ab"), 2)

	want := NewDocument(NewContainer(KindUnorderedList,
		NewContainer(KindListItem, NewTextNode("ab")),
		NewContainer(KindListItem),
	))
	if !Equal(doc, want) {
		t.Errorf("expected trailing empty item, got %+v", doc)
	}
	if caret != 2 {
		t.Errorf("expected caret 2, got %d", caret)
	}
}

func TestEnterOnEmptyTrailingItemExitsList(t *testing.T) {
	src := NewDocument(NewContainer(KindUnorderedList,
		NewContainer(KindListItem, NewTextNode("ab")),
		NewContainer(KindListItem),
	))
	doc, caret, exited := Enter(src, 2)

	want := listDoc(KindUnorderedList, "ab")
	if !Equal(doc, want) {
		t.Errorf("expected list exit, got %+v", doc)
	}
	if caret != 2 {
		t.Errorf("expected caret 2, got %d", caret)
	}
	if !exited {
		t.Error("expected exit to be reported")
	}
}

func TestReplaceRangeTopLevelEscapesList(t *testing.T) {
	doc, caret := ReplaceRangeTopLevel(listDoc(KindUnorderedList, "ab"), 2, 2, "c", nil)

	want := NewDocument(
		NewContainer(KindUnorderedList, NewContainer(KindListItem, NewTextNode("ab"))),
		NewTextNode("c"),
	)
	if !Equal(doc, want) {
		t.Errorf("expected text after the list, got %+v", doc)
	}
	if caret != 3 {
		t.Errorf("expected caret 3, got %d", caret)
	}
}
