// Package lines splits a raw byte block into line views without copying,
// the input stage for both the OBJ and MTL tokenizers.
package lines

import "bytes"

// View is a single source line: its byte slice (aliasing the original
// buffer) and its 1-based line index.
type View struct {
	Bytes []byte
	Index int
}

// Split returns one View per line in buf, numbered from 1. Trailing '\r' is
// trimmed so the tokenizers never see CRLF artifacts. Comment lines
// (leading '#', kept with their text) and blank lines (empty views) are
// not dropped, so line indices stay stable between the OBJ and MTL passes;
// callers skip them by checking len(Bytes) == 0 or Bytes[0] == '#'.
func Split(buf []byte) []View {
	var views []View
	idx := 1
	start := 0
	for i := 0; i <= len(buf); i++ {
		if i == len(buf) || buf[i] == '\n' {
			line := buf[start:i]
			line = bytes.TrimRight(line, "\r")
			views = append(views, View{Bytes: line, Index: idx})
			idx++
			start = i + 1
		}
	}
	return views
}

// IsComment reports whether v is a comment or blank line.
func IsComment(v View) bool {
	return len(v.Bytes) == 0 || v.Bytes[0] == '#'
}
