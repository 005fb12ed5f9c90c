package richtext

import "github.com/dshills/richtext/internal/codec"

// ToExampleFormat serializes the document with the selection rendered
// inline: "|" for a collapsed cursor, "{...}|" for a forward range and
// "|{...}" for a backward one.
func (m *ComposerModel) ToExampleFormat() string {
	return codec.ToExampleFormat(m.doc, m.anchor, m.focus)
}

// ToTree renders the document as an indented debug tree.
func (m *ComposerModel) ToTree() string {
	return codec.ToTree(m.doc)
}
