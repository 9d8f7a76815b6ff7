package material

import (
	"testing"

	"github.com/nicolasmd87/gopher-objscene/index"
	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objfmt"
)

func quadLine(n int) string {
	base := (n-1)*4 + 1
	return "f " + itoa(base) + " " + itoa(base+1) + " " + itoa(base+2) + " " + itoa(base+3) + "\n"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

func TestBindMultiMaterialOnOneGroup(t *testing.T) {
	var src string
	src += "g cube\n"
	for i := 0; i < 6; i++ {
		src += "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n"
	}
	src += "f 1 2 3 4\n"
	src += "f 5 6 7 8\n"
	src += "usemtl red\n"
	src += "f 9 10 11 12\n"
	src += "f 13 14 15 16\n"
	src += "usemtl blue\n"
	src += "f 17 18 19 20\n"
	src += "f 21 22 23 24\n"

	ev := objfmt.Tokenize(lines.Split([]byte(src)), 1)
	s := objfmt.Sort(ev)
	ranges := index.GroupRanges(s)
	objs := index.Build(s, ranges, 1)

	if len(objs) != 1 || objs[0].Name != "cube" {
		t.Fatalf("expected one object 'cube', got %+v", objs)
	}

	nameToID := map[string]uint64{"red": 1, "blue": 2}
	infos := map[uint64]*mesh.MaterialInfo{
		1: {ID: 1, Name: "red"},
		2: {ID: 2, Name: "blue"},
	}
	Bind(s, ranges, objs, nameToID, infos)

	ranges2 := objs[0].MaterialRanges()
	if len(ranges2) != 2 {
		t.Fatalf("expected 2 material ranges, got %d", len(ranges2))
	}

	red, blue := ranges2[0], ranges2[1]
	if red.MatID != 1 {
		t.Errorf("expected first range to be red (id 1), got %d", red.MatID)
	}
	wantRed := []uint32{0, 1, 2, 3}
	if !equalU32(red.Faces, wantRed) {
		t.Errorf("red faces = %v, want %v", red.Faces, wantRed)
	}

	if blue.MatID != 2 {
		t.Errorf("expected second range to be blue (id 2), got %d", blue.MatID)
	}
	wantBlue := []uint32{4, 5}
	if !equalU32(blue.Faces, wantBlue) {
		t.Errorf("blue faces = %v, want %v", blue.Faces, wantBlue)
	}

	if len(infos[1].Assignments) != 1 || infos[1].Assignments[0] != objs[0].ID {
		t.Errorf("expected red material assigned to object %d, got %v", objs[0].ID, infos[1].Assignments)
	}
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
