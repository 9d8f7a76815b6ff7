package mesh

// MeshExportFlags selects the per-vertex transform and table-emission
// behavior of the OBJ emitter, per spec §6 "Export flags: Mesh".
type MeshExportFlags uint32

const (
	TransformReverseX MeshExportFlags = 1 << iota
	TransformReverseY
	TransformReverseZ
	TransformSwapXY
	TransformSwapXZ
	TransformSwapYZ
	ExportUV
	ExportNormals
	ExportTriangulated
)

// Has reports whether bit is set in f.
func (f MeshExportFlags) Has(bit MeshExportFlags) bool { return f&bit != 0 }

// MaterialExportFlags selects whether and how the companion MTL file (and
// its textures) are written, per spec §6 "Export flags: Material".
type MaterialExportFlags int

const (
	// MaterialNone skips writing an MTL file entirely.
	MaterialNone MaterialExportFlags = iota
	// MaterialTextureNone writes the MTL file but omits every texture key.
	MaterialTextureNone
	// MaterialTextureOrigin writes texture keys using the stored path as-is.
	MaterialTextureOrigin
	// MaterialTextureCopyToLocal copies texture bytes into a "tex/" folder
	// next to the OBJ file and rewrites texture keys to the copied path.
	MaterialTextureCopyToLocal
)
