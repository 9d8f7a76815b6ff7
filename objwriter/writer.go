package objwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// Write emits objects (plus their companion materials, when requested) as a
// .obj file at path and a sibling .mtl file, per spec §4.8.
func Write(
	path string,
	objects []*mesh.Object,
	materials []mesh.Material,
	textures []mesh.Texture,
	meshFlags mesh.MeshExportFlags,
	materialFlags mesh.MaterialExportFlags,
	objFlags ObjFlags,
	workers int,
) error {
	if workers <= 0 {
		workers = 1
	}
	tables := buildGlobalTables(objects, meshFlags, workers)

	matByID := make(map[uint64]*mesh.Material, len(materials))
	for i := range materials {
		matByID[materials[i].ID] = &materials[i]
	}

	var b strings.Builder
	b.WriteString("# exported by gopher-objscene\n")

	mtlName := ""
	if materialFlags != mesh.MaterialNone && len(materials) > 0 {
		base := filepath.Base(path)
		mtlName = strings.TrimSuffix(base, filepath.Ext(base)) + ".mtl"
		fmt.Fprintf(&b, "mtllib %s\n", mtlName)
	}

	for _, p := range tables.Positions {
		fmt.Fprintf(&b, "v %s\n", formatVec3(p))
	}
	if meshFlags.Has(mesh.ExportUV) {
		for _, uv := range tables.UVs {
			fmt.Fprintf(&b, "vt %s\n", formatVec2(uv))
		}
	}
	if meshFlags.Has(mesh.ExportNormals) {
		for _, n := range tables.Normals {
			fmt.Fprintf(&b, "vn %s\n", formatVec3(n))
		}
	}

	for _, obj := range objects {
		writeObject(&b, obj, tables, matByID, meshFlags, objFlags)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("objwriter: write %s: %w", path, err)
	}

	if mtlName != "" {
		mtlPath := filepath.Join(filepath.Dir(path), mtlName)
		if err := writeMaterials(mtlPath, materials, textures, objFlags.MaterialsPBR, materialFlags); err != nil {
			return err
		}
	}

	logger.Log.Infow("wrote obj scene", "path", path, "objects", len(objects))
	return nil
}

func writeObject(b *strings.Builder, obj *mesh.Object, tables *globalTables, matByID map[uint64]*mesh.Material, meshFlags mesh.MeshExportFlags, objFlags ObjFlags) {
	m := obj.MeshAttachment()
	if m == nil {
		return
	}

	switch objFlags.ObjectPolicy {
	case ObjectPolicyGroups:
		fmt.Fprintf(b, "g %s\n", obj.Name)
	case ObjectPolicyObjects:
		fmt.Fprintf(b, "o %s\n", obj.Name)
	}

	faceMat := faceMaterialMap(obj, len(m.Model.Faces))
	var current int64 = -1

	for fi, face := range m.Model.Faces {
		if matID := faceMat[fi]; matID != current {
			current = matID
			if matID >= 0 {
				if mat, ok := matByID[uint64(matID)]; ok {
					fmt.Fprintf(b, "usemtl %s\n", mat.Name)
				}
			}
		}
		writeFace(b, &m.Model, face, tables, meshFlags)
	}
}

// faceMaterialMap resolves each of obj's faces to the material id covering
// it, or -1 when no MaterialRange names it. Ranges are applied in
// attachment order, so a later range wins on overlap; the importer's binder
// itself only attaches non-overlapping ranges.
func faceMaterialMap(obj *mesh.Object, faceCount int) []int64 {
	ids := make([]int64, faceCount)
	for i := range ids {
		ids[i] = -1
	}
	for _, r := range obj.MaterialRanges() {
		for _, fi := range r.Faces {
			if int(fi) < faceCount {
				ids[fi] = int64(r.MatID)
			}
		}
	}
	return ids
}

func writeFace(b *strings.Builder, model *mesh.Model, face mesh.Face, tables *globalTables, flags mesh.MeshExportFlags) {
	if flags.Has(mesh.ExportTriangulated) {
		for i := face.FirstVertex; i < face.FirstVertex+face.Count; i += 3 {
			b.WriteString("f")
			for j := uint32(0); j < 3 && i+j < face.FirstVertex+face.Count; j++ {
				vid := model.Indices[i+j]
				writeFaceVertexToken(b, model.Vertices[vid], tables, flags)
			}
			b.WriteString("\n")
		}
		return
	}

	b.WriteString("f")
	for _, fv := range face.Vertices {
		writeFaceVertexToken(b, model.Vertices[fv.VertexID], tables, flags)
	}
	b.WriteString("\n")
}

// writeFaceVertexToken writes one "v", "v/vt", "v//vn", or "v/vt/vn" token,
// depending on which of ExportUV/ExportNormals are set.
func writeFaceVertexToken(b *strings.Builder, v mesh.Vertex, tables *globalTables, flags mesh.MeshExportFlags) {
	posIdx := tables.PosIndex(transformPos(v.Pos, flags))
	hasUV := flags.Has(mesh.ExportUV)
	hasNorm := flags.Has(mesh.ExportNormals)

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(posIdx))
	switch {
	case hasUV && hasNorm:
		fmt.Fprintf(b, "/%d/%d", tables.UVIndex(v.UV), tables.NormIndex(v.Normal))
	case hasUV:
		fmt.Fprintf(b, "/%d", tables.UVIndex(v.UV))
	case hasNorm:
		fmt.Fprintf(b, "//%d", tables.NormIndex(v.Normal))
	}
}

func formatVec3(v mesh.Vec3) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}

func formatVec2(v mesh.Vec2) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1])
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', 6, 32)
}
