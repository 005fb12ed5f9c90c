// Package codec converts composer documents to and from their wire
// and debug representations: a constrained HTML subset, a constrained
// Markdown subset, the example format (HTML with inline selection
// markers, used for scenario tests and debugging), and an indented
// tree dump.
//
// Parsing is best-effort by contract: unknown tags are unwrapped,
// unknown attributes dropped, malformed nesting auto-closed. Parsers
// never fail on bad markup; losing input fidelity is preferred over
// failing the editor.
package codec
