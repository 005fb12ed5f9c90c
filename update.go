package richtext

// TextUpdate tells the host view how to bring its rendered content in
// line with the model. When both fields are nil the content is
// unchanged and the host keeps what it has.
type TextUpdate struct {
	// ReplaceAll, when set, replaces the entire rendered content.
	ReplaceAll *ReplaceAll

	// Select, when set, moves the selection without content change.
	Select *Selection
}

// IsKeep reports whether the update asks for no view change.
func (t TextUpdate) IsKeep() bool {
	return t.ReplaceAll == nil && t.Select == nil
}

// ReplaceAll carries the full replacement HTML plus the new selection
// in the host's UTF-16 codeunit space. It is the conservative update
// kind and is always correct to apply.
type ReplaceAll struct {
	ReplacementHTML    string
	StartUTF16CodeUnit int
	EndUTF16CodeUnit   int
}

// Selection is an (anchor, focus) pair in UTF-16 codeunits. Anchor is
// where the selection began; focus is the moving end. Focus before
// anchor means a backward selection.
type Selection struct {
	StartUTF16CodeUnit int
	EndUTF16CodeUnit   int
}

// ComposerUpdate is returned by every mutating operation. It bundles
// the view instruction with a fresh menu-state snapshot.
type ComposerUpdate struct {
	TextUpdate TextUpdate
	MenuState  MenuState
}
