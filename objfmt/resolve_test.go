package objfmt

import (
	"testing"

	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/mesh"
)

func TestSortNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	s := Sort(ev)

	if len(s.F) != 1 {
		t.Fatalf("expected 1 face, got %d", len(s.F))
	}
	got := s.F[0].Vertices
	want := []int{0, 1, 2}
	for i, w := range want {
		if got[i].V != w {
			t.Errorf("vertex %d: got %d, want %d", i, got[i].V, w)
		}
	}
}

func TestSortPositiveIndicesAreZeroBased(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	s := Sort(ev)

	got := s.F[0].Vertices
	want := []int{0, 1, 2}
	for i, w := range want {
		if got[i].V != w {
			t.Errorf("vertex %d: got %d, want %d", i, got[i].V, w)
		}
	}
}

func TestSortAbsentUVAndNormalStayDistinctFromIndexZero(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nf 1/1 2 3\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	s := Sort(ev)

	tris := s.F[0].Vertices
	if tris[0].VT != 0 {
		t.Errorf("expected resolved vt index 0, got %d", tris[0].VT)
	}
	if tris[1].VT != -1 {
		t.Errorf("expected absent vt sentinel -1, got %d", tris[1].VT)
	}
}

func TestSortStableByLineIndex(t *testing.T) {
	ev := Events{
		V: []VertexEvent{
			{Line: 3, Pos: mesh.Vec3{3, 0, 0}},
			{Line: 1, Pos: mesh.Vec3{1, 0, 0}},
			{Line: 2, Pos: mesh.Vec3{2, 0, 0}},
		},
	}
	s := Sort(ev)
	for i := 0; i < len(s.V)-1; i++ {
		if s.V[i].Line > s.V[i+1].Line {
			t.Fatalf("V not sorted by line: %+v", s.V)
		}
	}
}
