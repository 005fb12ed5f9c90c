package script

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunEditingScenario(t *testing.T) {
	h := New()
	defer h.Close()

	script := `
composer.type("abcd")
composer.select(1, 3)
composer.bold()
composer.expect("a<strong>{bc}|</strong>d")
`
	runID, err := h.Run(context.Background(), script)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if runID == "" {
		t.Error("expected a run ID")
	}
}

func TestRunReportsExpectFailure(t *testing.T) {
	h := New()
	defer h.Close()

	_, err := h.Run(context.Background(), `
composer.type("ab")
composer.expect("zz|")
`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "expect failed") {
		t.Errorf("expected expect failure, got %v", err)
	}
}

func TestLoadFromExampleFormat(t *testing.T) {
	h := New()
	defer h.Close()

	_, err := h.Run(context.Background(), `
composer.load("a{bc}|d")
composer.delete()
composer.expect("a|d")
`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestUndoRedoFromScript(t *testing.T) {
	h := New()
	defer h.Close()

	_, err := h.Run(context.Background(), `
composer.type("a")
composer.type("b")
composer.undo()
composer.expect("a|")
composer.redo()
composer.expect("ab|")
`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestHTMLAndTreeAccessors(t *testing.T) {
	h := New()
	defer h.Close()

	_, err := h.Run(context.Background(), `
composer.load("<strong>ab|</strong>")
assert(composer.html() == "<strong>ab</strong>")
assert(composer.markdown() == "**ab**")
assert(string.find(composer.tree(), "strong", 1, true) ~= nil)
`)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestClosedHarness(t *testing.T) {
	h := New()
	h.Close()

	_, err := h.Run(context.Background(), `composer.type("a")`)
	if !errors.Is(err, ErrHarnessClosed) {
		t.Errorf("expected ErrHarnessClosed, got %v", err)
	}
}
