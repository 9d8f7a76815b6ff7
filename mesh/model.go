// Package mesh defines the in-memory indexed scene representation shared by
// the OBJ importer and exporter: vertices, vertex groups, faces, materials,
// and the objects that own them.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vec2 and Vec3 are the vector types used throughout the scene model. They
// are aliases for mathgl's vector types so every package in this module
// shares one vector algebra implementation.
type (
	Vec2 = mgl32.Vec2
	Vec3 = mgl32.Vec3
)

// Vertex is one fully-resolved corner of the mesh: a position plus its
// texture coordinate and normal. The UV is zero when the source OBJ didn't
// supply one; the indexer gives a corner without a source normal the
// owning face's computed normal.
type Vertex struct {
	Pos    Vec3
	UV     Vec2
	Normal Vec3
}

// Equal reports whether two vertices have identical position, UV, and
// normal — the indexer's deduplication key.
func (v Vertex) Equal(o Vertex) bool {
	return v.Pos == o.Pos && v.UV == o.UV && v.Normal == o.Normal
}

// VertexGroup collects every distinct full Vertex sharing one source
// position, plus the faces that reference any of them. A Model built by the
// indexer holds one VertexGroup per "v" statement of the whole source file,
// indexed by its 0-based position index: groups are keyed by source index,
// not by coordinate value, and groups for positions the Model never
// references stay empty (Model.GroupCount counts the non-empty ones).
type VertexGroup struct {
	Vertices []uint32 // indices into Model.Vertices, all sharing one source pos
	Faces    []uint32 // indices into Model.Faces that reference this group
}

// FaceVertex is one corner of a polygon as stored on a Face: the owning
// vertex group and the resolved vertex within it.
type FaceVertex struct {
	GroupID  uint32
	VertexID uint32
}

// Face is one polygon of the source mesh, plus its triangulation range in
// the model's flat index buffer.
type Face struct {
	Vertices    []FaceVertex
	Normal      Vec3
	FirstVertex uint32
	Count       uint32
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// Grow expands the box to include p, initializing it on the first call.
func (b *AABB) Grow(p Vec3, first bool) {
	if first {
		b.Min, b.Max = p, p
		return
	}
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Model owns one mesh's geometry: the deduplicated vertex list, the face
// list, the triangulated index buffer, and the position-keyed vertex
// groups.
type Model struct {
	Vertices     []Vertex
	Faces        []Face
	Indices      []uint32
	VertexGroups []VertexGroup
	AABB         AABB
	GroupCount   uint32
}

// Mesh owns one Model. It is the attachment every Object carries.
type Mesh struct {
	Model Model
}

func (*Mesh) isObjectAttachment() {}

// MaterialRange names a contiguous subset of an object's faces sharing one
// material.
type MaterialRange struct {
	MatID uint64
	Faces []uint32 // sorted, duplicate-free face indices, local to the owning Object
}

func (*MaterialRange) isObjectAttachment() {}

// MaterialInfoRef attaches a material back-reference to an object. No
// package in this module attaches one; the usemtl binder records material
// assignments in MaterialInfo.Assignments instead.
type MaterialInfoRef struct {
	MatID uint64
}

func (*MaterialInfoRef) isObjectAttachment() {}

// Attachment is the tagged-union of metadata an Object can carry: a *Mesh,
// zero or more *MaterialRange, or a *MaterialInfoRef. Concrete variants
// implement isObjectAttachment(); this is not meant to be implemented by
// callers outside this package.
type Attachment interface {
	isObjectAttachment()
}

// Object is one named group of geometry (an OBJ "g"/"o" group, or the
// implicit "default" group) plus whatever metadata is attached to it.
type Object struct {
	ID          uint32
	Name        string
	Attachments []Attachment
}

// MeshAttachment returns the object's *Mesh attachment, or nil if none is
// attached.
func (o *Object) MeshAttachment() *Mesh {
	for _, a := range o.Attachments {
		if m, ok := a.(*Mesh); ok {
			return m
		}
	}
	return nil
}

// MaterialRanges returns every *MaterialRange attachment on the object, in
// attachment order.
func (o *Object) MaterialRanges() []*MaterialRange {
	var ranges []*MaterialRange
	for _, a := range o.Attachments {
		if r, ok := a.(*MaterialRange); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}
