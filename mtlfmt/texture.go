package mtlfmt

import (
	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/internal/scan"
	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// parseTextureOption consumes zero or more "-flag" modifiers, in any order,
// before the mandatory path token, per spec §4.4's texture-option grammar.
// An unrecognized "-flag" aborts this texture assignment: the returned
// error is an UnknownTextureOptionError, already recorded in res and
// logged, and the caller leaves the destination slot unpopulated rather
// than treating the whole line as fatal.
func parseTextureOption(c *scan.Cursor, v lines.View, res *Result) (mesh.TextureOption, error) {
	dst := mesh.DefaultTextureOption()
	havePath := false

	for {
		b, ok := c.Peek()
		if !ok {
			break
		}
		if b != '-' {
			path := c.StrRange()
			if path == "" {
				break
			}
			dst.Path = path
			havePath = true
			break
		}

		word, _ := c.Word()
		switch word {
		case "-blendu":
			if !parseOnOff(c, &dst.Blendu) {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
		case "-blendv":
			if !parseOnOff(c, &dst.Blendv) {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
		case "-clamp":
			if !parseOnOff(c, &dst.Clamp) {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
		case "-boost":
			f, ok := c.Float()
			if !ok {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
			dst.Boost = f
		case "-mm":
			vv, ok := c.Vec2()
			if !ok {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
			dst.MM = vv
		case "-o":
			dst.Offset = c.Vec3Optional(dst.Offset)
		case "-s":
			dst.Scale = c.Vec3Optional(dst.Scale)
		case "-t":
			dst.Turbulence = c.Vec3Optional(dst.Turbulence)
		case "-texres":
			n, ok := c.Int()
			if !ok {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
			dst.Resolution = n
		case "-type":
			w, _ := c.Word()
			dst.Type = w
		case "-bm":
			f, ok := c.Float()
			if !ok {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
			dst.BumpIntensity = f
		case "-imfchan":
			ch, ok := c.Word()
			if !ok || len(ch) == 0 {
				return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
			}
			dst.IMFChan = ch[0]
		default:
			err := UnknownTextureOptionError{Token: word, Line: v.Index}
			res.TextureWarnings = append(res.TextureWarnings, err)
			logger.Log.Warnw("unknown MTL texture option", "token", word, "line", v.Index)
			return mesh.TextureOption{}, err
		}
	}

	if !havePath {
		return mesh.TextureOption{}, ParseError{Line: v.Index, Text: string(v.Bytes)}
	}
	return dst, nil
}

func parseOnOff(c *scan.Cursor, dst *bool) bool {
	word, ok := c.Word()
	if !ok {
		return false
	}
	switch word {
	case "on":
		*dst = true
	case "off":
		*dst = false
	default:
		return false
	}
	return true
}
