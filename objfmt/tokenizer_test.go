package objfmt

import (
	"testing"

	"github.com/nicolasmd87/gopher-objscene/internal/lines"
)

func TestTokenizeCube(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	ev := Tokenize(lines.Split([]byte(src)), 2)

	if len(ev.V) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(ev.V))
	}
	if len(ev.F) != 1 {
		t.Fatalf("expected 1 face, got %d", len(ev.F))
	}
	if len(ev.F[0].Vertices) != 4 {
		t.Errorf("expected quad face with 4 corners, got %d", len(ev.F[0].Vertices))
	}
}

func TestTokenizeFaceTriples(t *testing.T) {
	src := "f 1/2/3 4//6 7/8\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)

	if len(ev.F) != 1 {
		t.Fatalf("expected 1 face, got %d", len(ev.F))
	}
	tris := ev.F[0].Vertices
	if len(tris) != 3 {
		t.Fatalf("expected 3 triples, got %d", len(tris))
	}
	if tris[0] != (Triple{V: 1, VT: 2, VN: 3}) {
		t.Errorf("triple 0 mismatch: %+v", tris[0])
	}
	if tris[1] != (Triple{V: 4, VT: 0, VN: 6}) {
		t.Errorf("triple 1 mismatch: %+v", tris[1])
	}
	if tris[2] != (Triple{V: 7, VT: 8, VN: 0}) {
		t.Errorf("triple 2 mismatch: %+v", tris[2])
	}
}

func TestTokenizeGroupAndUseMtl(t *testing.T) {
	src := "g A\nusemtl red\nf 1 2 3\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)

	if len(ev.G) != 1 || ev.G[0].Name != "A" {
		t.Fatalf("expected group 'A', got %+v", ev.G)
	}
	if len(ev.UseMtl) != 1 || ev.UseMtl[0].Name != "red" {
		t.Fatalf("expected usemtl 'red', got %+v", ev.UseMtl)
	}
}

func TestTokenizeIgnoresComments(t *testing.T) {
	src := "# a comment\n\nv 0 0 0\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	if len(ev.V) != 1 {
		t.Fatalf("expected 1 vertex, got %d", len(ev.V))
	}
}

func TestTokenizeInvalidLineRecorded(t *testing.T) {
	src := "v 1 2\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	if len(ev.Errors) != 1 {
		t.Fatalf("expected 1 parse error, got %d", len(ev.Errors))
	}
	if ev.Errors[0].Line != 1 {
		t.Errorf("expected error on line 1, got %d", ev.Errors[0].Line)
	}
}

func TestTokenizeMtllib(t *testing.T) {
	src := "mtllib scene.mtl\n"
	ev := Tokenize(lines.Split([]byte(src)), 1)
	if ev.MtlLib != "scene.mtl" {
		t.Errorf("expected mtllib 'scene.mtl', got %q", ev.MtlLib)
	}
}

func TestTokenizeParallelDeterminism(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\nv 0 1 1\nf 2 3 4\n"
	a := Tokenize(lines.Split([]byte(src)), 1)
	b := Tokenize(lines.Split([]byte(src)), 4)

	sa, sb := Sort(a), Sort(b)
	if len(sa.V) != len(sb.V) || len(sa.F) != len(sb.F) {
		t.Fatalf("event counts differ between worker counts: %+v vs %+v", sa, sb)
	}
	for i := range sa.V {
		if sa.V[i].Pos != sb.V[i].Pos {
			t.Errorf("vertex %d differs: %v vs %v", i, sa.V[i].Pos, sb.V[i].Pos)
		}
	}
}
