package objwriter

import (
	"github.com/alitto/pond/v2"

	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// transformPos applies the mesh-export transform flags in the fixed order
// spec §4.8 step 2 requires: reverses, then swaps.
func transformPos(p mesh.Vec3, f mesh.MeshExportFlags) mesh.Vec3 {
	if f.Has(mesh.TransformReverseX) {
		p[0] = -p[0]
	}
	if f.Has(mesh.TransformReverseY) {
		p[1] = -p[1]
	}
	if f.Has(mesh.TransformReverseZ) {
		p[2] = -p[2]
	}
	if f.Has(mesh.TransformSwapXY) {
		p[0], p[1] = p[1], p[0]
	}
	if f.Has(mesh.TransformSwapXZ) {
		p[0], p[2] = p[2], p[0]
	}
	if f.Has(mesh.TransformSwapYZ) {
		p[1], p[2] = p[2], p[1]
	}
	return p
}

// objTable is one object's distinct, post-transform positions/uvs/normals,
// in first-seen order within that object.
type objTable struct {
	positions []mesh.Vec3
	uvs       []mesh.Vec2
	normals   []mesh.Vec3
}

func collectObjectTable(obj *mesh.Object, flags mesh.MeshExportFlags) objTable {
	m := obj.MeshAttachment()
	if m == nil {
		return objTable{}
	}

	var t objTable
	seenPos := make(map[mesh.Vec3]bool, len(m.Model.Vertices))
	seenUV := make(map[mesh.Vec2]bool)
	seenNorm := make(map[mesh.Vec3]bool)

	for _, v := range m.Model.Vertices {
		p := transformPos(v.Pos, flags)
		if !seenPos[p] {
			seenPos[p] = true
			t.positions = append(t.positions, p)
		}
		if flags.Has(mesh.ExportUV) && !seenUV[v.UV] {
			seenUV[v.UV] = true
			t.uvs = append(t.uvs, v.UV)
		}
		if flags.Has(mesh.ExportNormals) && !seenNorm[v.Normal] {
			seenNorm[v.Normal] = true
			t.normals = append(t.normals, v.Normal)
		}
	}
	return t
}

// globalTables is the scene-wide deduplicated v/vt/vn tables plus the
// 1-based index each distinct value was assigned, built by collecting each
// object's table in parallel and merging in object order — deterministic
// regardless of which worker finishes first, per spec §5 "Export table
// collection".
type globalTables struct {
	Positions []mesh.Vec3
	UVs       []mesh.Vec2
	Normals   []mesh.Vec3

	posIndex  map[mesh.Vec3]int
	uvIndex   map[mesh.Vec2]int
	normIndex map[mesh.Vec3]int
}

func (g *globalTables) PosIndex(p mesh.Vec3) int  { return g.posIndex[p] }
func (g *globalTables) UVIndex(uv mesh.Vec2) int  { return g.uvIndex[uv] }
func (g *globalTables) NormIndex(n mesh.Vec3) int { return g.normIndex[n] }

func buildGlobalTables(objects []*mesh.Object, flags mesh.MeshExportFlags, workers int) *globalTables {
	partials := make([]objTable, len(objects))
	pool := pond.NewPool(workers)
	for i, obj := range objects {
		i, obj := i, obj
		pool.Submit(func() { partials[i] = collectObjectTable(obj, flags) })
	}
	pool.StopAndWait()

	g := &globalTables{
		posIndex:  make(map[mesh.Vec3]int),
		uvIndex:   make(map[mesh.Vec2]int),
		normIndex: make(map[mesh.Vec3]int),
	}
	for _, t := range partials {
		for _, p := range t.positions {
			if _, ok := g.posIndex[p]; !ok {
				g.posIndex[p] = len(g.Positions) + 1
				g.Positions = append(g.Positions, p)
			}
		}
		for _, uv := range t.uvs {
			if _, ok := g.uvIndex[uv]; !ok {
				g.uvIndex[uv] = len(g.UVs) + 1
				g.UVs = append(g.UVs, uv)
			}
		}
		for _, n := range t.normals {
			if _, ok := g.normIndex[n]; !ok {
				g.normIndex[n] = len(g.Normals) + 1
				g.Normals = append(g.Normals, n)
			}
		}
	}
	return g
}
