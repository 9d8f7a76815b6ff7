package objfmt

import (
	"github.com/alitto/pond/v2"

	"github.com/nicolasmd87/gopher-objscene/internal/lines"
	"github.com/nicolasmd87/gopher-objscene/internal/logger"
	"github.com/nicolasmd87/gopher-objscene/internal/scan"
)

// chunkSize mirrors gopher3D's voxel chunking granularity (internal/loader
// voxel_core.go): partition the line-view slice into fixed-size runs so
// each pooled task does enough work to be worth scheduling.
const chunkSize = 512

// Tokenize classifies every line view and returns the combined, unsorted
// event stream. Line views are partitioned into chunks and dispatched
// across a pond worker pool; each task builds its own thread-local Events
// and the results are merged after every task completes, so no reader is
// ever concurrent with a writer (spec's shared-mutation discipline).
func Tokenize(views []lines.View, workers int) Events {
	if workers <= 0 {
		workers = 1
	}
	if len(views) == 0 {
		return Events{}
	}

	n := (len(views) + chunkSize - 1) / chunkSize
	partials := make([]Events, n)

	pool := pond.NewPool(workers)
	for i := 0; i < n; i++ {
		i := i
		start := i * chunkSize
		end := start + chunkSize
		if end > len(views) {
			end = len(views)
		}
		pool.Submit(func() {
			partials[i] = tokenizeChunk(views[start:end])
		})
	}
	pool.StopAndWait()

	return mergeEvents(partials)
}

func tokenizeChunk(chunk []lines.View) Events {
	var ev Events
	for _, v := range chunk {
		if lines.IsComment(v) {
			continue
		}
		tokenizeLine(v, &ev)
	}
	return ev
}

func mergeEvents(partials []Events) Events {
	var out Events
	for _, p := range partials {
		out.V = append(out.V, p.V...)
		out.VT = append(out.VT, p.VT...)
		out.VN = append(out.VN, p.VN...)
		out.F = append(out.F, p.F...)
		out.G = append(out.G, p.G...)
		out.UseMtl = append(out.UseMtl, p.UseMtl...)
		out.Errors = append(out.Errors, p.Errors...)
		if p.MtlLib != "" {
			out.MtlLib = p.MtlLib
		}
	}
	return out
}

func tokenizeLine(v lines.View, ev *Events) {
	b := trimLeadingSpace(v.Bytes)
	if len(b) == 0 {
		return
	}
	first := b[0]

	switch {
	case first == 'v' && hasPrefix(b, "vt"):
		c2 := scan.New(b[indexAfter(b, "vt"):])
		uv, ok := c2.Vec2()
		if !ok {
			recordInvalid(ev, v)
			return
		}
		ev.VT = append(ev.VT, UVEvent{Line: v.Index, UV: uv})

	case first == 'v' && hasPrefix(b, "vn"):
		c2 := scan.New(b[indexAfter(b, "vn"):])
		n, ok := c2.Vec3()
		if !ok {
			recordInvalid(ev, v)
			return
		}
		ev.VN = append(ev.VN, NormalEvent{Line: v.Index, Normal: n})

	case first == 'v' && hasPrefix(b, "v"):
		c2 := scan.New(b[indexAfter(b, "v"):])
		p, ok := c2.Vec3()
		if !ok {
			recordInvalid(ev, v)
			return
		}
		ev.V = append(ev.V, VertexEvent{Line: v.Index, Pos: p})

	case first == 'f' && hasPrefix(b, "f"):
		c2 := scan.New(b[indexAfter(b, "f"):])
		tris, ok := parseFaceTriples(c2)
		if !ok || len(tris) < 3 {
			recordInvalid(ev, v)
			return
		}
		ev.F = append(ev.F, FaceEvent{Line: v.Index, Vertices: tris})

	case (first == 'g' || first == 'o') && hasPrefix(b, string(first)):
		c2 := scan.New(b[indexAfter(b, string(first)):])
		name := c2.StrRange()
		if name == "" || name == "off" {
			return
		}
		ev.G = append(ev.G, GroupEvent{Line: v.Index, Name: name})

	case hasPrefix(b, "mtllib"):
		c2 := scan.New(b[indexAfter(b, "mtllib"):])
		ev.MtlLib = c2.StrRange()

	case hasPrefix(b, "usemtl"):
		c2 := scan.New(b[indexAfter(b, "usemtl"):])
		name := c2.StrRange()
		ev.UseMtl = append(ev.UseMtl, UseMtlEvent{Line: v.Index, Name: name})

	default:
		// Unknown statement (s, l, p, curve/surface directives, ...):
		// ignored per spec, not an error.
	}
}

func parseFaceTriples(c *scan.Cursor) ([]Triple, bool) {
	var out []Triple
	for {
		vID, ok := c.Int()
		if !ok {
			break
		}
		t := Triple{V: vID}
		if c.Consume('/') {
			if vt, ok := c.Int(); ok {
				t.VT = vt
			}
			if c.Consume('/') {
				if vn, ok := c.Int(); ok {
					t.VN = vn
				}
			}
		}
		out = append(out, t)
	}
	return out, len(out) >= 3
}

func recordInvalid(ev *Events, v lines.View) {
	pe := ParseError{Line: v.Index, Text: string(v.Bytes)}
	ev.Errors = append(ev.Errors, pe)
	logger.Log.Warnw("invalid OBJ line", "line", v.Index, "text", pe.Text)
}

func hasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if b[i] != prefix[i] {
			return false
		}
	}
	if len(b) == len(prefix) {
		return true
	}
	return b[len(prefix)] == ' ' || b[len(prefix)] == '\t'
}

func indexAfter(b []byte, prefix string) int {
	return len(prefix)
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return b[i:]
}
