package objfmt

import "sort"

// Sorted is the tokenizer's event stream after the stable, line-index sort
// that the concurrency model requires before any downstream indexing: the
// relative order of parallel-emitted events with the same line index is
// unspecified until this pass runs.
type Sorted struct {
	V      []VertexEvent
	VT     []UVEvent
	VN     []NormalEvent
	F      []FaceEvent
	G      []GroupEvent
	UseMtl []UseMtlEvent
}

// Sort stably orders every event slice by its source line index and
// resolves negative face-component indices against the final table sizes,
// per spec Open Question #1: resolution happens after sorting, against the
// complete v/vt/vn tables, not against a parse-time-partial count.
func Sort(ev Events) Sorted {
	out := Sorted{
		V:      append([]VertexEvent(nil), ev.V...),
		VT:     append([]UVEvent(nil), ev.VT...),
		VN:     append([]NormalEvent(nil), ev.VN...),
		F:      append([]FaceEvent(nil), ev.F...),
		G:      append([]GroupEvent(nil), ev.G...),
		UseMtl: append([]UseMtlEvent(nil), ev.UseMtl...),
	}

	sort.SliceStable(out.V, func(i, j int) bool { return out.V[i].Line < out.V[j].Line })
	sort.SliceStable(out.VT, func(i, j int) bool { return out.VT[i].Line < out.VT[j].Line })
	sort.SliceStable(out.VN, func(i, j int) bool { return out.VN[i].Line < out.VN[j].Line })
	sort.SliceStable(out.F, func(i, j int) bool { return out.F[i].Line < out.F[j].Line })
	sort.SliceStable(out.G, func(i, j int) bool { return out.G[i].Line < out.G[j].Line })
	sort.SliceStable(out.UseMtl, func(i, j int) bool { return out.UseMtl[i].Line < out.UseMtl[j].Line })

	vSize, vtSize, vnSize := len(out.V), len(out.VT), len(out.VN)
	for fi := range out.F {
		tris := out.F[fi].Vertices
		for ti := range tris {
			tris[ti].V = resolveIndex(tris[ti].V, vSize)
			if tris[ti].VT != 0 {
				tris[ti].VT = resolveIndex(tris[ti].VT, vtSize)
			} else {
				tris[ti].VT = -1 // absent, distinct from a resolved index of 0
			}
			if tris[ti].VN != 0 {
				tris[ti].VN = resolveIndex(tris[ti].VN, vnSize)
			} else {
				tris[ti].VN = -1
			}
		}
	}
	return out
}

// resolveIndex turns a 1-based (possibly negative) OBJ index into a 0-based
// index into a table of the given final size. Negative indices count back
// from the end: -1 is the most recently written element.
func resolveIndex(raw, tableSize int) int {
	if raw < 0 {
		return tableSize + raw
	}
	return raw - 1
}
