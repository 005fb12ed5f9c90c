package codec

import (
	"errors"
	"strings"

	"github.com/dshills/richtext/internal/dom"
)

// ErrMissingCursor reports example-format input without any selection
// marker.
var ErrMissingCursor = errors.New("codec: example format has no selection markers")

// ToExampleFormat serializes a document with the selection rendered
// inline. A collapsed selection is a single "|"; a forward range is
// "{...}|" and a backward range "|{...}".
func ToExampleFormat(doc *dom.Document, anchor, focus dom.Location) string {
	w := &htmlWriter{markers: selectionMarkers(anchor, focus)}
	w.writeChildren(doc.Children())
	return w.finish()
}

func selectionMarkers(anchor, focus dom.Location) []marker {
	if anchor == focus {
		return []marker{{pos: focus, text: "|", eager: true}}
	}
	if anchor < focus {
		return []marker{
			{pos: anchor, text: "{"},
			{pos: focus, text: "}|", eager: true},
		}
	}
	return []marker{
		{pos: focus, text: "|{"},
		{pos: anchor, text: "}", eager: true},
	}
}

// FromExampleFormat parses example-format text back into a document
// and selection. The markers are located by scanning the content
// positions outside tags, then stripped before HTML parsing.
func FromExampleFormat(s string) (*dom.Document, dom.Location, dom.Location, error) {
	stripped, anchor, focus, err := extractSelection(s)
	if err != nil {
		return nil, 0, 0, err
	}
	return FromHTML(stripped), anchor, focus, nil
}

func extractSelection(s string) (string, dom.Location, dom.Location, error) {
	var (
		b             strings.Builder
		pos           int
		inTag         bool
		tag           strings.Builder
		start         = -1
		backward      bool
		found         bool
		anchor, focus int
	)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inTag {
			tag.WriteRune(r)
			b.WriteRune(r)
			if r == '>' {
				name := tag.String()
				if name == "br>" || strings.HasPrefix(name, "br ") || strings.HasPrefix(name, "br/") {
					pos++
				}
				inTag = false
			}
			continue
		}
		switch r {
		case '<':
			inTag = true
			tag.Reset()
			b.WriteRune(r)
		case '|':
			if i+1 < len(runes) && runes[i+1] == '{' {
				// "|{" opens a backward selection.
				start = pos
				backward = true
				i++
				continue
			}
			anchor, focus = pos, pos
			found = true
		case '{':
			start = pos
			backward = false
		case '}':
			if start < 0 {
				return "", 0, 0, ErrMissingCursor
			}
			if backward {
				anchor, focus = pos, start
			} else {
				if i+1 >= len(runes) || runes[i+1] != '|' {
					return "", 0, 0, ErrMissingCursor
				}
				i++
				anchor, focus = start, pos
			}
			found = true
		case '&':
			// Entities unescape to a single code unit.
			end := -1
			for j := i + 1; j < len(runes) && j <= i+8; j++ {
				if runes[j] == ';' {
					end = j
					break
				}
			}
			if end > 0 {
				b.WriteString(string(runes[i : end+1]))
				i = end
				pos++
				continue
			}
			b.WriteRune(r)
			pos++
		default:
			b.WriteRune(r)
			pos += dom.UTF16Width(string(r))
		}
	}
	if !found {
		return "", 0, 0, ErrMissingCursor
	}
	return b.String(), anchor, focus, nil
}
