package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/richtext"
)

// ErrHarnessClosed is returned when running a script on a closed
// harness.
var ErrHarnessClosed = errors.New("script harness is closed")

// Harness binds a composer model to a Lua state. Each Run gets a
// fresh run ID so scenario output can be correlated with logs.
type Harness struct {
	L      *lua.LState
	model  *richtext.ComposerModel
	closed bool
}

// New creates a harness around an empty composer model and registers
// the composer module.
func New() *Harness {
	h := &Harness{
		L:     lua.NewState(),
		model: richtext.New(),
	}
	h.register()
	return h
}

// Model returns the underlying composer model.
func (h *Harness) Model() *richtext.ComposerModel { return h.model }

// Run executes a Lua scenario source. The context bounds execution
// time. The returned run ID identifies the execution.
func (h *Harness) Run(ctx context.Context, source string) (string, error) {
	if h.closed {
		return "", ErrHarnessClosed
	}
	runID := uuid.NewString()
	h.L.SetContext(ctx)
	if err := h.L.DoString(source); err != nil {
		return runID, fmt.Errorf("script run %s: %w", runID, err)
	}
	return runID, nil
}

// RunFile executes a Lua scenario file.
func (h *Harness) RunFile(ctx context.Context, path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("script: read %s: %w", path, err)
	}
	return h.Run(ctx, string(src))
}

// Close releases the Lua state. The harness cannot be reused.
func (h *Harness) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

// register installs the composer module into the Lua state.
func (h *Harness) register() {
	mod := h.L.NewTable()
	funcs := map[string]lua.LGFunction{
		"type":           h.luaType,
		"select":         h.luaSelect,
		"backspace":      h.luaCall(func(m *richtext.ComposerModel) { m.Backspace() }),
		"delete":         h.luaCall(func(m *richtext.ComposerModel) { m.Delete() }),
		"enter":          h.luaCall(func(m *richtext.ComposerModel) { m.Enter() }),
		"bold":           h.luaCall(func(m *richtext.ComposerModel) { m.Bold() }),
		"italic":         h.luaCall(func(m *richtext.ComposerModel) { m.Italic() }),
		"underline":      h.luaCall(func(m *richtext.ComposerModel) { m.Underline() }),
		"strike_through": h.luaCall(func(m *richtext.ComposerModel) { m.StrikeThrough() }),
		"inline_code":    h.luaCall(func(m *richtext.ComposerModel) { m.InlineCode() }),
		"ordered_list":   h.luaCall(func(m *richtext.ComposerModel) { m.OrderedList() }),
		"unordered_list": h.luaCall(func(m *richtext.ComposerModel) { m.UnorderedList() }),
		"remove_links":   h.luaCall(func(m *richtext.ComposerModel) { m.RemoveLinks() }),
		"set_link":       h.luaSetLink,
		"undo":           h.luaUndo,
		"redo":           h.luaRedo,
		"html":           h.luaHTML,
		"markdown":       h.luaMarkdown,
		"tree":           h.luaTree,
		"state":          h.luaState,
		"expect":         h.luaExpect,
		"load":           h.luaLoad,
	}
	h.L.SetFuncs(mod, funcs)
	h.L.SetGlobal("composer", mod)
}

// luaCall adapts a no-argument model operation.
func (h *Harness) luaCall(fn func(*richtext.ComposerModel)) lua.LGFunction {
	return func(L *lua.LState) int {
		fn(h.model)
		return 0
	}
}

func (h *Harness) luaType(L *lua.LState) int {
	h.model.ReplaceText(L.CheckString(1))
	return 0
}

func (h *Harness) luaSelect(L *lua.LState) int {
	h.model.Select(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (h *Harness) luaSetLink(L *lua.LState) int {
	h.model.SetLink(L.CheckString(1))
	return 0
}

func (h *Harness) luaUndo(L *lua.LState) int {
	if _, err := h.model.Undo(); err != nil {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	return 0
}

func (h *Harness) luaRedo(L *lua.LState) int {
	if _, err := h.model.Redo(); err != nil {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	return 0
}

func (h *Harness) luaHTML(L *lua.LState) int {
	L.Push(lua.LString(h.model.GetContentAsHTML()))
	return 1
}

func (h *Harness) luaMarkdown(L *lua.LState) int {
	L.Push(lua.LString(h.model.GetContentAsMarkdown()))
	return 1
}

func (h *Harness) luaTree(L *lua.LState) int {
	L.Push(lua.LString(h.model.ToTree()))
	return 1
}

func (h *Harness) luaState(L *lua.LState) int {
	L.Push(lua.LString(h.model.ToExampleFormat()))
	return 1
}

// luaExpect asserts the current example-format state and aborts the
// script on mismatch.
func (h *Harness) luaExpect(L *lua.LState) int {
	want := L.CheckString(1)
	got := h.model.ToExampleFormat()
	if got != want {
		L.RaiseError("expect failed: got %q, want %q", got, want)
	}
	return 0
}

// luaLoad replaces the model with one parsed from example format.
func (h *Harness) luaLoad(L *lua.LState) int {
	m, err := richtext.NewFromExampleFormat(L.CheckString(1))
	if err != nil {
		L.RaiseError("load failed: %s", err.Error())
		return 0
	}
	h.model = m
	return 0
}
