package objwriter

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/mesh"
)

// writeMaterials emits the companion MTL file for materials, including the
// PBR extensions when pbr is set and the texture keys per materialFlags.
func writeMaterials(mtlPath string, materials []mesh.Material, textures []mesh.Texture, pbr bool, materialFlags mesh.MaterialExportFlags) error {
	texByPath := make(map[string][]byte, len(textures))
	for _, t := range textures {
		texByPath[t.Path] = t.Data
	}

	var b strings.Builder
	b.WriteString("# exported by gopher-objscene\n")

	for _, m := range materials {
		fmt.Fprintf(&b, "newmtl %s\n", m.Name)
		writeColor(&b, "Ka", m.Ka)
		writeColor(&b, "Kd", m.Kd)
		writeColor(&b, "Ks", m.Ks)
		writeColor(&b, "Tf", m.Tf)
		fmt.Fprintf(&b, "Ns %s\n", formatFloat(m.Ns))
		fmt.Fprintf(&b, "Ni %s\n", formatFloat(m.Ni))
		fmt.Fprintf(&b, "d %s\n", formatFloat(m.D))
		fmt.Fprintf(&b, "illum %d\n", m.Illum)

		if pbr {
			fmt.Fprintf(&b, "Pr %s\n", formatFloat(m.Pr))
			fmt.Fprintf(&b, "Pm %s\n", formatFloat(m.Pm))
			fmt.Fprintf(&b, "Ps %s\n", formatFloat(m.Ps))
			fmt.Fprintf(&b, "Ke %s\n", formatFloat(m.Ke))
			fmt.Fprintf(&b, "Pc %s\n", formatFloat(m.Pc))
			fmt.Fprintf(&b, "Pcr %s\n", formatFloat(m.Pcr))
			fmt.Fprintf(&b, "aniso %s\n", formatFloat(m.Aniso))
			fmt.Fprintf(&b, "anisor %s\n", formatFloat(m.Anisor))
		}

		if materialFlags != mesh.MaterialTextureNone {
			if err := writeTextureOption(&b, "map_Ka", m.MapKa, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "map_Kd", m.MapKd, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "map_Ks", m.MapKs, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "map_Ns", m.MapNs, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "map_d", m.MapD, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "map_Tr", m.MapTr, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "bump", m.MapBump, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "disp", m.Disp, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "decal", m.Decal, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if err := writeTextureOption(&b, "refl", m.Refl, materialFlags, texByPath, mtlPath); err != nil {
				return err
			}
			if pbr {
				if err := writeTextureOption(&b, "map_Pr", m.MapPr, materialFlags, texByPath, mtlPath); err != nil {
					return err
				}
				if err := writeTextureOption(&b, "map_Pm", m.MapPm, materialFlags, texByPath, mtlPath); err != nil {
					return err
				}
				if err := writeTextureOption(&b, "map_Ps", m.MapPs, materialFlags, texByPath, mtlPath); err != nil {
					return err
				}
				if err := writeTextureOption(&b, "map_Ke", m.MapKe, materialFlags, texByPath, mtlPath); err != nil {
					return err
				}
				if err := writeTextureOption(&b, "norm", m.Norm, materialFlags, texByPath, mtlPath); err != nil {
					return err
				}
			}
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(mtlPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("objwriter: write %s: %w", mtlPath, err)
	}
	logger.Log.Infow("wrote mtl file", "path", mtlPath, "materials", len(materials))
	return nil
}

func writeColor(b *strings.Builder, key string, c mesh.ColorOption) {
	prefix := ""
	if c.Kind == mesh.ColorXYZ {
		prefix = "xyz "
	}
	fmt.Fprintf(b, "%s %s%s\n", key, prefix, formatVec3(c.Value))
}

// writeTextureOption emits one texture key, including its non-default
// -flags, or nothing when the slot was never populated. Under
// MaterialTextureCopyToLocal the referenced file's bytes (when present in
// texByPath) are copied into a "tex/" folder beside mtlPath and the emitted
// path points at the copy.
func writeTextureOption(b *strings.Builder, key string, t mesh.TextureOption, flags mesh.MaterialExportFlags, texByPath map[string][]byte, mtlPath string) error {
	if !t.Populated() {
		return nil
	}

	texPath := t.Path
	if flags == mesh.MaterialTextureCopyToLocal {
		if data, ok := texByPath[t.Path]; ok {
			localPath, err := copyTextureLocal(mtlPath, t.Path, data)
			if err != nil {
				return err
			}
			texPath = localPath
		}
	}

	def := mesh.DefaultTextureOption()
	b.WriteString(key)
	if !t.Blendu {
		b.WriteString(" -blendu off")
	}
	if !t.Blendv {
		b.WriteString(" -blendv off")
	}
	if t.Clamp {
		b.WriteString(" -clamp on")
	}
	if t.Boost != 0 {
		fmt.Fprintf(b, " -boost %s", formatFloat(t.Boost))
	}
	if t.MM != def.MM {
		fmt.Fprintf(b, " -mm %s", formatVec2(t.MM))
	}
	if t.Offset != def.Offset {
		fmt.Fprintf(b, " -o %s", formatVec3(t.Offset))
	}
	if t.Scale != def.Scale {
		fmt.Fprintf(b, " -s %s", formatVec3(t.Scale))
	}
	if t.Turbulence != def.Turbulence {
		fmt.Fprintf(b, " -t %s", formatVec3(t.Turbulence))
	}
	if t.Resolution != 0 {
		fmt.Fprintf(b, " -texres %d", t.Resolution)
	}
	if t.Type != "" {
		fmt.Fprintf(b, " -type %s", t.Type)
	}
	if t.BumpIntensity != def.BumpIntensity {
		fmt.Fprintf(b, " -bm %s", formatFloat(t.BumpIntensity))
	}
	if t.IMFChan != 0 {
		fmt.Fprintf(b, " -imfchan %c", t.IMFChan)
	}
	fmt.Fprintf(b, " %s\n", texPath)
	return nil
}

func copyTextureLocal(mtlPath, srcPath string, data []byte) (string, error) {
	dir := filepath.Join(filepath.Dir(mtlPath), "tex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("objwriter: create texture dir %s: %w", dir, err)
	}
	name := path.Base(filepath.ToSlash(srcPath))
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("objwriter: copy texture %s: %w", dst, err)
	}
	return "tex/" + name, nil
}
