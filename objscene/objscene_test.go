package objscene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicolasmd87/gopher-objscene/mesh"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", p, err)
	}
	return p
}

func TestLoadCubeNoMaterials(t *testing.T) {
	dir := t.TempDir()
	src := "v -1 -1 -1\nv 1 -1 -1\nv 1 1 -1\nv -1 1 -1\n" +
		"v -1 -1 1\nv 1 -1 1\nv 1 1 1\nv -1 1 1\n" +
		"f 1 2 3 4\nf 5 6 7 8\nf 1 5 8 4\nf 2 6 7 3\nf 4 8 7 3\nf 1 5 6 2\n"
	path := writeTestFile(t, dir, "cube.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected success, got state %v err %v", res.State, res.Err)
	}
	if len(scene.Objects) != 1 {
		t.Fatalf("expected 1 default object, got %d", len(scene.Objects))
	}
	m := scene.Objects[0].MeshAttachment().Model
	if len(m.Faces) != 6 {
		t.Errorf("expected 6 faces, got %d", len(m.Faces))
	}
}

func TestLoadNegativeIndices(t *testing.T) {
	dir := t.TempDir()
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	path := writeTestFile(t, dir, "neg.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	if len(scene.Objects[0].MeshAttachment().Model.Faces) != 1 {
		t.Fatalf("expected 1 face")
	}
}

func TestLoadMissingFileReportsNotFound(t *testing.T) {
	imp := NewImporter()
	_, res := imp.Load(filepath.Join(t.TempDir(), "missing.obj"))
	if res.State != StateNotFound {
		t.Fatalf("expected StateNotFound, got %v", res.State)
	}
}

func TestLoadMissingMtlLibWarnsButStillLoadsGeometry(t *testing.T) {
	dir := t.TempDir()
	src := "mtllib missing.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	path := writeTestFile(t, dir, "scene.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected geometry load to still succeed, got %v", res.State)
	}
	if len(scene.Objects[0].MeshAttachment().Model.Faces) != 1 {
		t.Fatalf("expected geometry to still be indexed")
	}

	found := false
	for _, w := range res.Warnings {
		if _, ok := w.(MtlMissingError); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an MtlMissingError warning, got %+v", res.Warnings)
	}
}

func TestLoadWithMaterialsAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "scene.mtl", "newmtl Red\nKd 1 0 0\nnewmtl Blue\nKd 0 0 1\n")
	src := "mtllib scene.mtl\n" +
		"v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n" +
		"v 2 0 0\nv 3 0 0\nv 3 1 0\nv 2 1 0\n" +
		"usemtl Red\nf 1 2 3 4\n" +
		"usemtl Blue\nf 5 6 7 8\n"
	path := writeTestFile(t, dir, "scene.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	if len(scene.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(scene.Materials))
	}
	if len(scene.Objects) != 1 {
		t.Fatalf("expected 1 default object, got %d", len(scene.Objects))
	}
	ranges := scene.Objects[0].MaterialRanges()
	if len(ranges) != 2 {
		t.Fatalf("expected 2 material ranges, got %d", len(ranges))
	}

	outPath := filepath.Join(dir, "out.obj")
	exp := NewExporter()
	ok, err := exp.Save(outPath, scene)
	if err != nil || !ok {
		t.Fatalf("Save: ok=%v err=%v", ok, err)
	}

	reimp := NewImporter()
	scene2, res2 := reimp.Load(outPath)
	if !res2.OK() {
		t.Fatalf("re-import failed: %v", res2.Err)
	}
	if len(scene2.Materials) != 2 {
		t.Fatalf("expected 2 materials after round-trip, got %d", len(scene2.Materials))
	}
	total := 0
	for _, obj := range scene2.Objects {
		total += len(obj.MeshAttachment().Model.Faces)
	}
	if total != 2 {
		t.Fatalf("expected 2 faces to survive round-trip, got %d", total)
	}
}

func TestLoadTexturedMaterial(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "tex.mtl", "newmtl Tex\nmap_Kd -clamp on -o 0.5 0.25 -s 2 tex/albedo.png\n")
	src := "mtllib tex.mtl\nusemtl Tex\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	path := writeTestFile(t, dir, "scene.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	mat, ok := scene.MaterialByName("Tex")
	if !ok {
		t.Fatalf("expected material Tex to be loaded")
	}
	if mat.MapKd.Path != "tex/albedo.png" {
		t.Errorf("unexpected texture path: %q", mat.MapKd.Path)
	}
	if !mat.MapKd.Clamp {
		t.Errorf("expected clamp true")
	}
}

func TestLoadConcavePentagonTriangulates(t *testing.T) {
	dir := t.TempDir()
	src := "v 0 0 0\nv 2 0 0\nv 2 2 0\nv 1 1 0\nv 0 2 0\nf 1 2 3 4 5\n"
	path := writeTestFile(t, dir, "pentagon.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	m := scene.Objects[0].MeshAttachment().Model
	if len(m.Indices) != 9 {
		t.Fatalf("expected 9 indices (3 triangles from 1 pentagon), got %d", len(m.Indices))
	}
}

func TestSaveWithTriangulatedFlagProducesTriangleOnlyFaces(t *testing.T) {
	dir := t.TempDir()
	src := "v -1 -1 0\nv 1 -1 0\nv 1 1 0\nv -1 1 0\nf 1 2 3 4\n"
	path := writeTestFile(t, dir, "quad.obj", src)

	imp := NewImporter()
	scene, res := imp.Load(path)
	if !res.OK() {
		t.Fatalf("load failed: %v", res.Err)
	}

	exp := NewExporter()
	exp.MeshFlags |= mesh.ExportTriangulated
	outPath := filepath.Join(dir, "out.obj")
	if ok, err := exp.Save(outPath, scene); err != nil || !ok {
		t.Fatalf("Save: ok=%v err=%v", ok, err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "f ") && len(strings.Fields(line)) != 4 {
			t.Errorf("expected triangle-only face lines, got %q", line)
		}
	}
}
