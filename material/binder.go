// Package material binds the usemtl event stream to the face ranges the
// geometry indexer already carved out, attaching MaterialRange blocks to
// each object and recording material assignments.
package material

import (
	"sort"

	"github.com/nicolasmd87/gopher-objscene/index"
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/mesh"
	"github.com/nicolasmd87/gopher-objscene/objfmt"
)

// Bind walks the sorted usemtl events against each group's face range,
// attaching a *mesh.MaterialRange to the matching object for every
// resolvable usemtl segment and recording the assignment on the
// corresponding MaterialInfo. objects must align 1:1 with ranges, as
// produced by index.Build. Unresolvable names are warned and dropped.
func Bind(
	s objfmt.Sorted,
	ranges []index.GroupRange,
	objects []*mesh.Object,
	nameToID map[string]uint64,
	infos map[uint64]*mesh.MaterialInfo,
) {
	for gi, r := range ranges {
		if r.EndIndex <= r.StartIndex {
			continue
		}
		bindGroup(s, r, objects[gi], nameToID, infos)
	}
}

func bindGroup(
	s objfmt.Sorted,
	r index.GroupRange,
	obj *mesh.Object,
	nameToID map[string]uint64,
	infos map[uint64]*mesh.MaterialInfo,
) {
	firstFaceLine := s.F[r.StartIndex].Line
	lastFaceLine := s.F[r.EndIndex-1].Line

	// The usemtl "in effect" when the group opens is the last one declared
	// at or before the group's first face; step back one from the first
	// entry at/after it to find it.
	k := sort.Search(len(s.UseMtl), func(i int) bool { return s.UseMtl[i].Line >= firstFaceLine })
	if k > 0 {
		k--
	}

	// Segments are contiguous and cover the whole group: each usemtl's
	// range runs from where the previous one ended up to the face whose
	// line exceeds the next usemtl's line (or the group's end).
	faceStart := r.StartIndex
	for k < len(s.UseMtl) && s.UseMtl[k].Line <= lastFaceLine {
		u := s.UseMtl[k]

		boundaryLine := lastFaceLine
		if k+1 < len(s.UseMtl) {
			boundaryLine = s.UseMtl[k+1].Line
		}
		fNext := faceIndexAfterLine(s.F, faceStart, r.EndIndex, boundaryLine)

		matID, ok := nameToID[u.Name]
		if !ok {
			logger.Log.Warnw("usemtl references unresolved material", "name", u.Name, "line", u.Line)
			faceStart = fNext
			k++
			continue
		}

		if fNext > faceStart {
			faces := make([]uint32, 0, fNext-faceStart)
			for fi := faceStart; fi < fNext; fi++ {
				faces = append(faces, uint32(fi-r.StartIndex))
			}
			obj.Attachments = append(obj.Attachments, &mesh.MaterialRange{MatID: matID, Faces: faces})
			if info, ok := infos[matID]; ok {
				info.Assign(obj.ID)
			}
		}
		faceStart = fNext
		k++
	}
}

// faceIndexAfterLine returns the first index in [lo, hi) of s.F whose Line
// exceeds line, or hi if none qualifies.
func faceIndexAfterLine(faces []objfmt.FaceEvent, lo, hi int, line int) int {
	i := sort.Search(hi-lo, func(i int) bool { return faces[lo+i].Line > line })
	return lo + i
}
