// Package dom implements the composer document tree: text runs, line
// breaks and formatting/structural containers, plus the UTF-16
// codeunit arithmetic and tree transformations behind every editing
// operation.
//
// Locations are UTF-16 codeunit offsets into the flattened document,
// matching the coordinate space of host text views. A line break is 1
// codeunit wide; a text node is as wide as the UTF-16 encoding of its
// content, so characters outside the Basic Multilingual Plane count as
// 2 units.
//
// Editing primitives work on an intermediate flattened form: the tree
// is lowered to a sequence of runs (text or break, each carrying its
// inline formats, link and block chain), the edit is applied to the
// runs, and a canonical tree is rebuilt. Rebuilding guarantees the
// structural invariants: no two adjacent text nodes share a formatting
// context, list items exist only inside list containers, and container
// nesting follows a fixed canonical order so serialization is
// deterministic.
//
// Functions in this package never panic on out-of-range locations;
// offsets are clamped to the nearest valid boundary.
package dom
