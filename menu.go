package richtext

import "github.com/dshills/richtext/internal/dom"

// Action identifies a user-facing editing action whose availability
// the menu state reports.
type Action int

const (
	ActionBold Action = iota
	ActionItalic
	ActionStrikeThrough
	ActionUnderline
	ActionInlineCode
	ActionLink
	ActionOrderedList
	ActionUnorderedList
	ActionIndent
	ActionUnIndent
	ActionUndo
	ActionRedo
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionBold:
		return "bold"
	case ActionItalic:
		return "italic"
	case ActionStrikeThrough:
		return "strike_through"
	case ActionUnderline:
		return "underline"
	case ActionInlineCode:
		return "inline_code"
	case ActionLink:
		return "link"
	case ActionOrderedList:
		return "ordered_list"
	case ActionUnorderedList:
		return "unordered_list"
	case ActionIndent:
		return "indent"
	case ActionUnIndent:
		return "unindent"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// ActionState is the availability of one action for the current
// selection.
type ActionState int

const (
	// Enabled means performing the action would apply it.
	Enabled ActionState = iota

	// Reversed means the action is already active over the whole
	// selection; performing it would remove it.
	Reversed

	// Disabled means the action cannot apply in the current context.
	Disabled
)

// String returns the state name.
func (s ActionState) String() string {
	switch s {
	case Enabled:
		return "enabled"
	case Reversed:
		return "reversed"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

// MenuState is a snapshot of every action's availability.
type MenuState map[Action]ActionState

var formatActions = map[Action]dom.Format{
	ActionBold:          dom.FormatBold,
	ActionItalic:        dom.FormatItalic,
	ActionStrikeThrough: dom.FormatStrikeThrough,
	ActionUnderline:     dom.FormatUnderline,
	ActionInlineCode:    dom.FormatInlineCode,
}

// ActionStates computes the menu state for the current document and
// selection.
func (m *ComposerModel) ActionStates() MenuState {
	start, end := m.orderedRange()
	states := make(MenuState, 12)

	inCode := m.activeFormat(dom.FormatInlineCode, start, end)
	for action, f := range formatActions {
		switch {
		case f != dom.FormatInlineCode && inCode:
			// Inline code is exclusive with the other formats.
			states[action] = Disabled
		case m.activeFormat(f, start, end):
			states[action] = Reversed
		default:
			states[action] = Enabled
		}
	}

	inLink := dom.InLink(m.doc, start, end)
	if inLink {
		states[ActionLink] = Reversed
	} else {
		states[ActionLink] = Enabled
	}

	listKind, inList := dom.ListContext(m.doc, start, end)
	for action, kind := range map[Action]dom.ContainerKind{
		ActionOrderedList:   dom.KindOrderedList,
		ActionUnorderedList: dom.KindUnorderedList,
	} {
		switch {
		case inLink:
			states[action] = Disabled
		case inList && listKind == kind:
			states[action] = Reversed
		default:
			states[action] = Enabled
		}
	}

	states[ActionIndent] = enabledIf(dom.CanIndent(m.doc, start, end))
	states[ActionUnIndent] = enabledIf(dom.CanUnIndent(m.doc, start, end))
	states[ActionUndo] = enabledIf(m.hist.CanUndo())
	states[ActionRedo] = enabledIf(m.hist.CanRedo())
	return states
}

// activeFormat reports whether f reads as active at the selection,
// taking a pending toggle at a collapsed cursor into account.
func (m *ComposerModel) activeFormat(f dom.Format, start, end dom.Location) bool {
	if m.pendingActive && start == end {
		return m.pending.Has(f)
	}
	if start == end {
		return dom.FormatsAt(m.doc, start).Has(f)
	}
	return dom.RangeFormatted(m.doc, start, end, f)
}

func enabledIf(ok bool) ActionState {
	if ok {
		return Enabled
	}
	return Disabled
}
