package objscene

import (
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objwriter"
)

// Exporter writes a Scene back out as a Wavefront OBJ+MTL pair, mirroring
// original's aecl::scene::obj::Exporter::save().
type Exporter struct {
	cfg config

	MeshFlags     mesh.MeshExportFlags
	MaterialFlags mesh.MaterialExportFlags
	ObjFlags      objwriter.ObjFlags
}

// NewExporter builds an Exporter with the given options applied over the
// default worker-pool sizing and sensible export flags (UV and normals on,
// triangulation off, materials written with original texture paths).
func NewExporter(opts ...Option) *Exporter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Exporter{
		cfg:           cfg,
		MeshFlags:     mesh.ExportUV | mesh.ExportNormals,
		MaterialFlags: mesh.MaterialTextureOrigin,
		ObjFlags:      objwriter.ObjFlags{ObjectPolicy: objwriter.ObjectPolicyObjects},
	}
}

// Save writes scene to path (and a sibling .mtl, when scene carries
// materials and e.MaterialFlags allows it). The bool return mirrors
// original's save() (bool, error) signature: true means the write
// completed, regardless of any accumulated per-line warnings upstream.
func (e *Exporter) Save(path string, scene *Scene) (bool, error) {
	err := objwriter.Write(
		path,
		scene.Objects,
		scene.Materials,
		scene.Textures,
		e.MeshFlags,
		e.MaterialFlags,
		e.ObjFlags,
		e.cfg.workers,
	)
	if err != nil {
		logger.Log.Warnw("objscene: failed to save obj scene", "path", path, "error", err)
		return false, err
	}
	return true, nil
}
