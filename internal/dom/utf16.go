package dom

import (
	"github.com/rivo/uniseg"
)

// UTF16Width returns the number of UTF-16 code units needed to encode
// s. Runes outside the Basic Multilingual Plane count as 2.
func UTF16Width(s string) int {
	w := 0
	for _, r := range s {
		if r >= 0x10000 {
			w += 2
		} else {
			w++
		}
	}
	return w
}

// byteOffsetForUTF16 converts a UTF-16 codeunit offset into a byte
// offset within s. Offsets landing inside a surrogate pair snap down
// to the start of the rune so a pair is never split.
func byteOffsetForUTF16(s string, u16 int) int {
	if u16 <= 0 {
		return 0
	}
	col := 0
	for i, r := range s {
		if col >= u16 {
			return i
		}
		if r >= 0x10000 {
			col += 2
		} else {
			col++
		}
	}
	return len(s)
}

// SplitUTF16 splits s at a UTF-16 codeunit offset, snapping down to a
// rune boundary so a surrogate pair is never separated.
func SplitUTF16(s string, at int) (string, string) {
	b := byteOffsetForUTF16(s, at)
	return s[:b], s[b:]
}

// prevGraphemeStart returns the UTF-16 offset of the start of the
// grapheme cluster ending at offset. Deleting [start, offset) removes
// the whole cluster atomically, never a lone surrogate half.
func prevGraphemeStart(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	pos := 0
	prev := 0
	state := -1
	rest := s
	for len(rest) > 0 && pos < offset {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		prev = pos
		pos += UTF16Width(cluster)
	}
	if pos > offset {
		// Offset fell inside a cluster; treat the cluster start as
		// the boundary.
		return prev
	}
	return prev
}

// nextGraphemeEnd returns the UTF-16 offset of the end of the grapheme
// cluster starting at offset.
func nextGraphemeEnd(s string, offset int) int {
	total := UTF16Width(s)
	if offset >= total {
		return total
	}
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		end := pos + UTF16Width(cluster)
		if end > offset {
			return end
		}
		pos = end
	}
	return total
}
