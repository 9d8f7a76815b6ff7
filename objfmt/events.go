// Package objfmt tokenizes Wavefront OBJ text into typed, line-indexed
// parse events, dispatched in parallel over the source's line views.
package objfmt

import (
	"strconv"

	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// VertexEvent is a "v x y z" line.
type VertexEvent struct {
	Line int
	Pos  mesh.Vec3
}

// UVEvent is a "vt u v" line.
type UVEvent struct {
	Line int
	UV   mesh.Vec2
}

// NormalEvent is a "vn x y z" line.
type NormalEvent struct {
	Line   int
	Normal mesh.Vec3
}

// Triple is one raw (v, vt, vn) face component, 1-based as written in the
// source, with 0 meaning "absent" and negative meaning "relative to the
// end of the table". Resolution to a final 0-based index happens after
// sorting, in Sort (see resolve.go).
type Triple struct {
	V, VT, VN int
}

// FaceEvent is an "f ..." line: its ordered face-vertex triples.
type FaceEvent struct {
	Line     int
	Vertices []Triple
}

// GroupEvent is a "g name" or "o name" line once "off" and blank names are
// filtered out. The original g/o distinction is not preserved (spec Open
// Question #3).
type GroupEvent struct {
	Line int
	Name string
}

// UseMtlEvent is a "usemtl name" line.
type UseMtlEvent struct {
	Line int
	Name string
}

// Events holds every typed event produced by a tokenizer pass, not yet
// sorted by line index.
type Events struct {
	V      []VertexEvent
	VT     []UVEvent
	VN     []NormalEvent
	F      []FaceEvent
	G      []GroupEvent
	UseMtl []UseMtlEvent
	MtlLib string

	// Errors collects every InvalidLine encountered; parsing continues
	// past each one.
	Errors []ParseError
}

// ParseError records one line that didn't match any recognized grammar.
type ParseError struct {
	Line int
	Text string
}

func (e ParseError) Error() string {
	return "objfmt: invalid line " + strconv.Itoa(e.Line) + ": " + e.Text
}
