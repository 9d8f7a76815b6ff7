package index

import (
	"github.com/alitto/pond/v2"

	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objfmt"
)

// Build turns a sorted, resolved event stream into one Object per group,
// each carrying a *mesh.Mesh attachment. Groups are indexed independently
// and in parallel across a pond worker pool; nothing is shared between
// them but the read-only event stream.
func Build(s objfmt.Sorted, ranges []GroupRange, workers int) []*mesh.Object {
	if workers <= 0 {
		workers = 1
	}
	objects := make([]*mesh.Object, len(ranges))

	pool := pond.NewPool(workers)
	for i, r := range ranges {
		i, r := i, r
		pool.Submit(func() {
			model := buildGroupModel(s, r)
			objects[i] = &mesh.Object{
				ID:          uint32(i),
				Name:        r.Name,
				Attachments: []mesh.Attachment{&mesh.Mesh{Model: model}},
			}
		})
	}
	pool.StopAndWait()

	return objects
}

func buildGroupModel(s objfmt.Sorted, r GroupRange) mesh.Model {
	faceCount := r.EndIndex - r.StartIndex
	model := mesh.Model{
		VertexGroups: make([]mesh.VertexGroup, len(s.V)),
		Faces:        make([]mesh.Face, faceCount),
	}

	hasNormals := len(s.VN) > 0
	vtnMap := make(map[objfmt.Triple]uint32)
	firstVertex := true

	for fi := 0; fi < faceCount; fi++ {
		fe := s.F[r.StartIndex+fi]
		face := &model.Faces[fi]
		face.Normal = newellNormal(fe.Vertices, s.V)

		for _, t := range fe.Vertices {
			if t.V < 0 || t.V >= len(s.V) {
				continue
			}
			current := uint32(t.V)
			vg := &model.VertexGroups[current]

			var vid uint32
			if hasNormals {
				vid = addVertexByTriple(vtnMap, t, current, s, &model, face, &firstVertex)
			} else {
				vid = addVertexByScan(vg, t, current, s, &model, face, &firstVertex)
			}

			face.Vertices = append(face.Vertices, mesh.FaceVertex{GroupID: current, VertexID: vid})
			vg.Faces = append(vg.Faces, uint32(fi))
		}
	}

	triangulateModel(&model)
	model.GroupCount = countNonEmptyGroups(model.VertexGroups)
	return model
}

// addVertexByTriple dedups globally within the group by the raw (v, vt, vn)
// triple, used when the source defines any normals at all.
func addVertexByTriple(
	vtnMap map[objfmt.Triple]uint32,
	t objfmt.Triple,
	current uint32,
	s objfmt.Sorted,
	model *mesh.Model,
	face *mesh.Face,
	firstVertex *bool,
) uint32 {
	if vid, ok := vtnMap[t]; ok {
		return vid
	}

	v := resolvedVertex(t, current, s, face.Normal)
	vid := uint32(len(model.Vertices))
	vtnMap[t] = vid
	model.Vertices = append(model.Vertices, v)
	model.VertexGroups[current].Vertices = append(model.VertexGroups[current].Vertices, vid)
	model.AABB.Grow(v.Pos, *firstVertex)
	*firstVertex = false
	return vid
}

// addVertexByScan dedups within the position's own vertex group only, used
// when the source defines no normals: a full-vertex equality scan over the
// group's existing members.
func addVertexByScan(
	vg *mesh.VertexGroup,
	t objfmt.Triple,
	current uint32,
	s objfmt.Sorted,
	model *mesh.Model,
	face *mesh.Face,
	firstVertex *bool,
) uint32 {
	v := resolvedVertex(t, current, s, face.Normal)
	for _, vid := range vg.Vertices {
		if model.Vertices[vid].Equal(v) {
			return vid
		}
	}

	vid := uint32(len(model.Vertices))
	model.Vertices = append(model.Vertices, v)
	vg.Vertices = append(vg.Vertices, vid)
	model.AABB.Grow(v.Pos, *firstVertex)
	*firstVertex = false
	return vid
}

func resolvedVertex(t objfmt.Triple, current uint32, s objfmt.Sorted, faceNormal mesh.Vec3) mesh.Vertex {
	v := mesh.Vertex{Pos: s.V[current].Pos, Normal: faceNormal}
	if t.VT >= 0 && t.VT < len(s.VT) {
		v.UV = s.VT[t.VT].UV
	}
	if t.VN >= 0 && t.VN < len(s.VN) {
		v.Normal = s.VN[t.VN].Normal
	}
	return v
}

// newellNormal computes the Newell-method polygon normal from a face's raw
// v-indices, using the already-resolved 0-based positions in verts.
func newellNormal(tris []objfmt.Triple, verts []objfmt.VertexEvent) mesh.Vec3 {
	var n mesh.Vec3
	count := len(tris)
	for i := 0; i < count; i++ {
		cur := safePos(verts, tris[i].V)
		nxt := safePos(verts, tris[(i+1)%count].V)
		n[0] += (cur[1] - nxt[1]) * (cur[2] + nxt[2])
		n[1] += (cur[2] - nxt[2]) * (cur[0] + nxt[0])
		n[2] += (cur[0] - nxt[0]) * (cur[1] + nxt[1])
	}
	if n.Len() > 0 {
		n = n.Normalize()
	}
	return n
}

func safePos(verts []objfmt.VertexEvent, idx int) mesh.Vec3 {
	if idx < 0 || idx >= len(verts) {
		return mesh.Vec3{}
	}
	return verts[idx].Pos
}

func countNonEmptyGroups(groups []mesh.VertexGroup) uint32 {
	var n uint32
	for _, g := range groups {
		if len(g.Vertices) > 0 {
			n++
		}
	}
	return n
}

// triangulateModel triangulates every face in place, appending each face's
// triangle fan to model.Indices and recording its first-vertex/count range.
func triangulateModel(model *mesh.Model) {
	for fi := range model.Faces {
		face := &model.Faces[fi]
		positions := make([]mesh.Vec3, len(face.Vertices))
		for i, fv := range face.Vertices {
			positions[i] = model.Vertices[fv.VertexID].Pos
		}

		local := Triangulate(positions, face.Normal)
		face.FirstVertex = uint32(len(model.Indices))
		face.Count = uint32(len(local))
		for _, li := range local {
			model.Indices = append(model.Indices, face.Vertices[li].VertexID)
		}
	}
}
