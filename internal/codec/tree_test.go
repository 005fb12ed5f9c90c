package codec

import (
	"testing"

	"github.com/dshills/richtext/internal/dom"
)

func TestToTree(t *testing.T) {
	doc := dom.NewDocument(
		dom.NewTextNode("a"),
		dom.NewContainer(dom.KindBold, dom.NewTextNode("bc")),
	)

	want := "\n├>\"a\"\n└>strong\n  └>\"bc\"\n"
	if got := ToTree(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestToTreeLinkShowsURL(t *testing.T) {
	doc := dom.NewDocument(dom.NewLink("https://example.com", dom.NewTextNode("x")))

	want := "\n└>a \"https://example.com\"\n  └>\"x\"\n"
	if got := ToTree(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
