package mesh

// ColorKind distinguishes an RGB color triple from an XYZ color triple, per
// the MTL Ka/Kd/Ks/Tf grammar.
type ColorKind int

const (
	ColorRGB ColorKind = iota
	ColorXYZ
)

// ColorOption is a classical MTL color attribute: either an RGB or XYZ
// triple.
type ColorOption struct {
	Kind  ColorKind
	Value Vec3
}

// TextureOption is a populated map_* / bump / disp / decal / norm / refl
// statement: the texture path plus every -flag modifier the MTL grammar
// allows before it.
type TextureOption struct {
	Path string

	Blendu bool // default true
	Blendv bool // default true
	Clamp  bool // default false

	Boost float32

	MM     Vec2 // base, gain; default (0,1)
	Offset Vec3 // default (0,0,0)
	Scale  Vec3 // default (1,1,1)

	Turbulence Vec3 // default (0,0,0)

	Resolution    int
	BumpIntensity float32 // default 1
	IMFChan       byte
	Type          string
}

// DefaultTextureOption returns a TextureOption populated with the MTL
// spec's documented defaults, ready for the texture-option sub-parser to
// overwrite as it consumes -flags.
func DefaultTextureOption() TextureOption {
	return TextureOption{
		Blendu:        true,
		Blendv:        true,
		MM:            Vec2{0, 1},
		Scale:         Vec3{1, 1, 1},
		BumpIntensity: 1,
	}
}

// Populated reports whether a texture slot was ever assigned a path.
func (t TextureOption) Populated() bool { return t.Path != "" }

// Material holds the classical OBJ/MTL attributes plus the PBR extensions
// and every texture slot the grammar defines.
type Material struct {
	ID   uint64
	Name string

	Ka, Kd, Ks, Tf ColorOption
	Ns, Ni         float32
	D              float32 // dissolve; 1.0 = opaque
	Tr             float32 // 1.0 - D
	Illum          int

	// PBR extensions
	Pr, Pm, Ps, Ke, Pc, Pcr, Aniso, Anisor float32

	MapKa, MapKd, MapKs   TextureOption
	MapNs, MapD, MapTr    TextureOption
	MapBump, Disp, Decal  TextureOption
	Refl                  TextureOption
	MapPr, MapPm, MapPs   TextureOption
	MapKe, Norm           TextureOption
}

// DefaultMaterial mirrors the classical MTL defaults (opaque white, mild
// shininess); the MTL tokenizer starts every newmtl from these values.
func DefaultMaterial(id uint64, name string) Material {
	return Material{
		ID:   id,
		Name: name,
		Ka:   ColorOption{Value: Vec3{0.2, 0.2, 0.2}},
		Kd:   ColorOption{Value: Vec3{0.8, 0.8, 0.8}},
		Ks:   ColorOption{Value: Vec3{0, 0, 0}},
		Ns:   10,
		Ni:   1,
		D:    1,
	}
}

// MaterialInfo records a material's id, name, and the set of objects that
// reference it. The OBJ exporter does not read it: it writes every material
// it is given.
type MaterialInfo struct {
	ID          uint64
	Name        string
	Assignments []uint32 // object ids, in first-seen order, duplicate-free
}

// Assign appends objID to the assignment list if it isn't already present.
func (m *MaterialInfo) Assign(objID uint32) {
	for _, id := range m.Assignments {
		if id == objID {
			return
		}
	}
	m.Assignments = append(m.Assignments, objID)
}
