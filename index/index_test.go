package index

import (
	"testing"

	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objfmt"
)

func parseAndIndex(t *testing.T, src string, workers int) []*mesh.Object {
	t.Helper()
	ev := objfmt.Tokenize(lines.Split([]byte(src)), workers)
	s := objfmt.Sort(ev)
	ranges := GroupRanges(s)
	return Build(s, ranges, workers)
}

func TestBuildQuadDefaultGroup(t *testing.T) {
	src := "v -1 -1 0\nv 1 -1 0\nv 1 1 0\nv -1 1 0\nf 1 2 3 4\n"
	objs := parseAndIndex(t, src, 2)

	if len(objs) != 1 || objs[0].Name != "default" {
		t.Fatalf("expected one implicit 'default' object, got %+v", objs)
	}
	m := objs[0].MeshAttachment().Model
	if len(m.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(m.Vertices))
	}
	if len(m.Faces) != 1 {
		t.Errorf("expected 1 face, got %d", len(m.Faces))
	}
	if len(m.Indices) != 6 {
		t.Errorf("expected 6 indices (one quad -> 2 triangles), got %d", len(m.Indices))
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("indices length must be a multiple of 3, got %d", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Errorf("index %d out of range of %d vertices", idx, len(m.Vertices))
		}
	}
}

func TestBuildNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	objs := parseAndIndex(t, src, 1)

	m := objs[0].MeshAttachment().Model
	if len(m.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(m.Faces))
	}
	if len(m.Faces[0].Vertices) != 3 {
		t.Fatalf("expected 3 face-vertices, got %d", len(m.Faces[0].Vertices))
	}
}

func TestBuildMixedGroups(t *testing.T) {
	var src string
	src += "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n"
	src += "v 2 0 0\nv 3 0 0\nv 3 1 0\nv 2 1 0\n"
	src += "g A\nf 1 2 3 4\nf 1 2 3 4\nf 1 2 3 4\nf 1 2 3 4\n"
	src += "g B\nf 5 6 7 8\nf 5 6 7 8\nf 5 6 7 8\nf 5 6 7 8\n"

	objs := parseAndIndex(t, src, 2)
	if len(objs) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objs))
	}
	if objs[0].Name != "A" || objs[1].Name != "B" {
		t.Fatalf("expected groups A, B in order, got %q, %q", objs[0].Name, objs[1].Name)
	}
	fa := objs[0].MeshAttachment().Model.Faces
	fb := objs[1].MeshAttachment().Model.Faces
	if len(fa) != 4 || len(fb) != 4 {
		t.Fatalf("expected 4 faces per group, got %d and %d", len(fa), len(fb))
	}
}

func TestBuildAABB(t *testing.T) {
	src := "v -100 -100 -100\nv 100 -100 -100\nv 100 100 -100\nv -100 100 -100\nf 1 2 3 4\n"
	objs := parseAndIndex(t, src, 1)
	aabb := objs[0].MeshAttachment().Model.AABB

	if aabb.Min != (mesh.Vec3{-100, -100, -100}) {
		t.Errorf("unexpected AABB.Min: %v", aabb.Min)
	}
	if aabb.Max[0] != 100 || aabb.Max[1] != 100 {
		t.Errorf("unexpected AABB.Max: %v", aabb.Max)
	}
}

func TestTriangulateTriangleIsIdentity(t *testing.T) {
	pos := []mesh.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	got := Triangulate(pos, mesh.Vec3{0, 0, 1})
	want := []int{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("identity triangulation mismatch: got %v want %v", got, want)
		}
	}
}

func TestTriangulateConcavePentagon(t *testing.T) {
	// A concave pentagon (arrow shape) in the XY plane, CCW winding.
	pos := []mesh.Vec3{
		{0, 0, 0},
		{2, 0, 0},
		{2, 2, 0},
		{1, 1, 0},
		{0, 2, 0},
	}
	got := Triangulate(pos, mesh.Vec3{0, 0, 1})
	if len(got) != 9 {
		t.Fatalf("expected 9 indices (3 triangles), got %d", len(got))
	}
}

func TestGroupRangesImplicitDefault(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	ev := objfmt.Tokenize(lines.Split([]byte(src)), 1)
	s := objfmt.Sort(ev)
	ranges := GroupRanges(s)

	if len(ranges) != 1 || ranges[0].Name != "default" {
		t.Fatalf("expected one implicit default range, got %+v", ranges)
	}
	if ranges[0].StartIndex != 0 || ranges[0].EndIndex != 1 {
		t.Errorf("expected range [0,1), got [%d,%d)", ranges[0].StartIndex, ranges[0].EndIndex)
	}
}
