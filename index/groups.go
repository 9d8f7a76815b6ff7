// Package index builds the final indexed mesh model from a sorted, resolved
// objfmt event stream: group ranges, per-group vertex dedup, face normals,
// and triangulation.
package index

import "github.com/nicolasmd87/gopher-objscene/objfmt"

// GroupRange names one "g"/"o" group (or the implicit "default" group) as a
// half-open range into the sorted face-event list.
type GroupRange struct {
	Name       string
	StartIndex int // inclusive, into Sorted.F
	EndIndex   int // exclusive, into Sorted.F
}

// GroupRanges computes each group's face range from the sorted face and
// group event streams, per the "default" group rule: if no group directive
// precedes the first face, an implicit "default" group owns every face up
// to the first real group boundary.
func GroupRanges(s objfmt.Sorted) []GroupRange {
	if len(s.F) == 0 {
		return nil
	}

	var ranges []GroupRange
	lastFaceLine := s.F[len(s.F)-1].Line

	lfi := 0
	if len(s.G) == 0 || s.F[0].Line < s.G[0].Line {
		rangeEndLine := lastFaceLine + 1
		if len(s.G) > 0 {
			rangeEndLine = s.G[0].Line
		}
		end := faceRangeEnd(s.F, lfi, rangeEndLine)
		ranges = append(ranges, GroupRange{Name: "default", StartIndex: lfi, EndIndex: end})
		lfi = end
	}

	for gi := range s.G {
		rangeEndLine := lastFaceLine + 1
		if gi < len(s.G)-1 {
			rangeEndLine = s.G[gi+1].Line
		}
		end := faceRangeEnd(s.F, lfi, rangeEndLine)
		ranges = append(ranges, GroupRange{Name: s.G[gi].Name, StartIndex: lfi, EndIndex: end})
		lfi = end
	}

	return ranges
}

// faceRangeEnd returns the index, starting from start, of the first face
// event whose line is >= rangeEndLine (or len(faces) if none).
func faceRangeEnd(faces []objfmt.FaceEvent, start int, rangeEndLine int) int {
	i := start
	for i < len(faces) && faces[i].Line < rangeEndLine {
		i++
	}
	return i
}
