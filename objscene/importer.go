package objscene

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nicolasmd87/gopher-objscene/index"
	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/material"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/mtlfmt"
	"github.com/nicolasmd87/gopher-objscene/objfmt"
)

// Importer loads a Wavefront OBJ (and its companion MTL, when referenced)
// into a Scene, mirroring original's aecl::scene::obj::Importer::load() and
// gopher3D's top-level LoadModel/LoadMaterials pair.
type Importer struct {
	cfg config
}

// NewImporter builds an Importer with the given options applied over the
// default worker-pool sizing.
func NewImporter(opts ...Option) *Importer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Importer{cfg: cfg}
}

// Load reads path, tokenizes and indexes its geometry, and — when it
// contains a mtllib directive — loads and binds the companion materials.
// A missing OBJ file yields Result{State: StateNotFound} and any other read
// failure Result{State: StateReadError}; a missing MTL file is recorded as a Warning but does not fail the whole
// load, since the geometry is still usable without materials.
func (imp *Importer) Load(path string) (*Scene, Result) {
	buf, err := os.ReadFile(path)
	if err != nil {
		state := StateReadError
		if errors.Is(err, os.ErrNotExist) {
			state = StateNotFound
		}
		logger.Log.Warnw("objscene: failed to read obj file", "path", path, "error", err)
		return nil, Result{State: state, Err: err}
	}

	ev := objfmt.Tokenize(lines.Split(buf), imp.cfg.workers)
	sorted := objfmt.Sort(ev)
	ranges := index.GroupRanges(sorted)
	objects := index.Build(sorted, ranges, imp.cfg.workers)

	scene := &Scene{Objects: objects}
	var warnings []error
	for _, e := range ev.Errors {
		warnings = append(warnings, e)
	}

	if ev.MtlLib != "" {
		mtlPath := resolveSibling(path, ev.MtlLib)
		materials, infos, mtlWarnings, err := imp.loadMaterials(mtlPath)
		if err != nil {
			warnings = append(warnings, MtlMissingError{Path: mtlPath, Err: err})
			logger.Log.Warnw("objscene: mtllib file missing", "path", mtlPath, "error", err)
		} else {
			scene.Materials = materials
			scene.MaterialInfos = infos
			warnings = append(warnings, mtlWarnings...)

			nameToID := make(map[string]uint64, len(materials))
			for _, m := range materials {
				nameToID[m.Name] = m.ID
			}
			material.Bind(sorted, ranges, objects, nameToID, infos)
		}
	}

	logger.Log.Infow("objscene: loaded obj scene", "path", path, "objects", len(objects), "materials", len(scene.Materials))
	return scene, Result{State: StateSuccess, Warnings: warnings}
}

// loadMaterials reads and tokenizes an MTL file, building the name->id
// lookup and MaterialInfo bookkeeping the binder needs.
func (imp *Importer) loadMaterials(path string) ([]mesh.Material, map[uint64]*mesh.MaterialInfo, []error, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}

	res := mtlfmt.Parse(lines.Split(buf))
	infos := make(map[uint64]*mesh.MaterialInfo, len(res.Materials))
	for _, m := range res.Materials {
		infos[m.ID] = &mesh.MaterialInfo{ID: m.ID, Name: m.Name}
	}

	var warnings []error
	for _, e := range res.Errors {
		warnings = append(warnings, e)
	}
	for _, e := range res.TextureWarnings {
		warnings = append(warnings, e)
	}
	return res.Materials, infos, warnings, nil
}

// resolveSibling resolves a mtllib reference relative to the directory
// containing the OBJ file that named it, matching OBJ's own path
// convention: mtllib paths are never absolute in practice.
func resolveSibling(objPath, mtlRef string) string {
	if filepath.IsAbs(mtlRef) {
		return mtlRef
	}
	return filepath.Join(filepath.Dir(objPath), mtlRef)
}
