// Package mtlfmt tokenizes Wavefront MTL text into a sequence of committed
// mesh.Material values, including the nested texture-option sub-grammar
// (-blendu/-mm/-o/-s/-clamp/-bm/-imfchan/...).
package mtlfmt

import (
	"strconv"

	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// ParseError records one MTL line that didn't match any recognized grammar,
// or whose argument failed to parse. The line is skipped; parsing
// continues, per spec §4.4/§7.
type ParseError struct {
	Line int
	Text string
}

func (e ParseError) Error() string {
	return "mtlfmt: invalid line " + strconv.Itoa(e.Line) + ": " + e.Text
}

// UnknownTextureOptionError records a "-xxx" texture-option flag the parser
// doesn't recognize. The texture assignment on that line is abandoned; the
// rest of the file keeps parsing.
type UnknownTextureOptionError struct {
	Token string
	Line  int
}

func (e UnknownTextureOptionError) Error() string {
	return "mtlfmt: unknown texture option " + e.Token + " at line " + strconv.Itoa(e.Line)
}

// Result is the output of one MTL parse pass.
type Result struct {
	Materials       []mesh.Material
	Errors          []ParseError
	TextureWarnings []UnknownTextureOptionError
}
