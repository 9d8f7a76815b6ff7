package mtlfmt

import (
	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/internal/scan"
	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// Parse tokenizes MTL text sequentially: every key mutates whichever
// material the most recent newmtl opened, and newmtl commits the prior
// material before starting the next one. Unlike the OBJ tokenizer this pass
// is not parallelized across lines — there is exactly one working material
// at any point, so line order is load-bearing.
func Parse(views []lines.View) Result {
	var res Result
	var cur *mesh.Material
	nextID := uint64(1)

	commit := func() {
		if cur != nil {
			res.Materials = append(res.Materials, *cur)
		}
	}

	for _, v := range views {
		if lines.IsComment(v) {
			continue
		}
		c := scan.New(v.Bytes)
		key, ok := c.Word()
		if !ok {
			continue
		}

		if key == "newmtl" {
			commit()
			name := c.StrRange()
			m := mesh.DefaultMaterial(nextID, name)
			nextID++
			cur = &m
			continue
		}

		if cur == nil {
			recordInvalid(&res, v)
			continue
		}
		if !dispatchKey(key, c, cur, v, &res) {
			recordInvalid(&res, v)
		}
	}
	commit()
	return res
}

func dispatchKey(key string, c *scan.Cursor, m *mesh.Material, v lines.View, res *Result) bool {
	switch key {
	case "Ka":
		return parseColorInto(c, &m.Ka)
	case "Kd":
		return parseColorInto(c, &m.Kd)
	case "Ks":
		return parseColorInto(c, &m.Ks)
	case "Tf":
		return parseColorInto(c, &m.Tf)
	case "Ns":
		return parseFloatInto(c, &m.Ns)
	case "Ni":
		return parseFloatInto(c, &m.Ni)
	case "d":
		return parseFloatInto(c, &m.D)
	case "Tr":
		return parseFloatInto(c, &m.Tr)
	case "illum":
		return parseIntInto(c, &m.Illum)
	case "Pr":
		return parseFloatInto(c, &m.Pr)
	case "Pm":
		return parseFloatInto(c, &m.Pm)
	case "Ps":
		return parseFloatInto(c, &m.Ps)
	case "Ke":
		return parseFloatInto(c, &m.Ke)
	case "Pc":
		return parseFloatInto(c, &m.Pc)
	case "Pcr":
		return parseFloatInto(c, &m.Pcr)
	case "aniso":
		return parseFloatInto(c, &m.Aniso)
	case "anisor":
		return parseFloatInto(c, &m.Anisor)
	case "map_Ka":
		return parseTextureInto(c, &m.MapKa, v, res)
	case "map_Kd":
		return parseTextureInto(c, &m.MapKd, v, res)
	case "map_Ks":
		return parseTextureInto(c, &m.MapKs, v, res)
	case "map_Ns":
		return parseTextureInto(c, &m.MapNs, v, res)
	case "map_d":
		return parseTextureInto(c, &m.MapD, v, res)
	case "map_Tr":
		return parseTextureInto(c, &m.MapTr, v, res)
	case "bump", "map_bump":
		return parseTextureInto(c, &m.MapBump, v, res)
	case "disp":
		return parseTextureInto(c, &m.Disp, v, res)
	case "decal":
		return parseTextureInto(c, &m.Decal, v, res)
	case "refl":
		return parseTextureInto(c, &m.Refl, v, res)
	case "map_Pr":
		return parseTextureInto(c, &m.MapPr, v, res)
	case "map_Pm":
		return parseTextureInto(c, &m.MapPm, v, res)
	case "map_Ps":
		return parseTextureInto(c, &m.MapPs, v, res)
	case "map_Ke":
		return parseTextureInto(c, &m.MapKe, v, res)
	case "norm":
		return parseTextureInto(c, &m.Norm, v, res)
	default:
		// Free-form/curve-surface-adjacent directives and anything else
		// unrecognized are accepted as unknown, matching the OBJ
		// tokenizer's treatment of statements outside its grammar.
		return true
	}
}

func parseColorInto(c *scan.Cursor, dst *mesh.ColorOption) bool {
	kind := mesh.ColorRGB
	mark := c.Mark()
	if word, ok := c.Word(); ok && word == "xyz" {
		kind = mesh.ColorXYZ
	} else {
		c.Reset(mark)
	}
	v, ok := c.Vec3()
	if !ok {
		return false
	}
	*dst = mesh.ColorOption{Kind: kind, Value: v}
	return true
}

func parseFloatInto(c *scan.Cursor, dst *float32) bool {
	v, ok := c.Float()
	if !ok {
		return false
	}
	*dst = v
	return true
}

func parseIntInto(c *scan.Cursor, dst *int) bool {
	v, ok := c.Int()
	if !ok {
		return false
	}
	*dst = v
	return true
}

func parseTextureInto(c *scan.Cursor, dst *mesh.TextureOption, v lines.View, res *Result) bool {
	opt, err := parseTextureOption(c, v, res)
	if err == nil {
		*dst = opt
		return true
	}
	if _, ok := err.(UnknownTextureOptionError); ok {
		// Already recorded as its own warning kind; not a generic
		// InvalidLine.
		return true
	}
	return false
}

func recordInvalid(res *Result, v lines.View) {
	pe := ParseError{Line: v.Index, Text: string(v.Bytes)}
	res.Errors = append(res.Errors, pe)
	logger.Log.Warnw("invalid MTL line", "line", v.Index, "text", pe.Text)
}
