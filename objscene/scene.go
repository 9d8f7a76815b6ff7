// Package objscene is the library's public entry point: Importer and
// Exporter wrap the tokenizer/indexer/binder/writer packages behind the
// load/save API gopher3D's own LoadModel/LoadMaterials functions and
// original's aecl::scene::obj::Importer/Exporter expose.
package objscene

import "github.com/nicolasmd87/gopher-objscene/mesh"

// Scene is everything one OBJ+MTL load produces: the indexed objects, the
// flat material table, and the per-material assignment bookkeeping. The
// Exporter writes every entry of Materials; it does not consult
// MaterialInfos.
type Scene struct {
	Objects       []*mesh.Object
	Materials     []mesh.Material
	MaterialInfos map[uint64]*mesh.MaterialInfo
	Textures      []mesh.Texture
}

// MaterialByName returns the material with the given name, if one was
// loaded.
func (s *Scene) MaterialByName(name string) (mesh.Material, bool) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return mesh.Material{}, false
}
