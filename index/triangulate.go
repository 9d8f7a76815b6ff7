package index

import "github.com/nicolasmd87/gopher-objscene/mesh"

// Triangulate implements the black-box ear-cut contract: given the 3D
// positions of an N-gon's corners (in source winding order) and the
// polygon's normal, it returns a permutation of [0, N) of length 3(N-2)
// describing a fan of triangles that preserves the input winding.
//
// For N == 3 the permutation is the identity, matching the contract
// exactly. No ear-cut implementation exists among the retrieved example
// repos (the original relies on mapbox::earcut, a C++-only library), so
// this projects to 2D and clips ears directly against stdlib math.
func Triangulate(positions []mesh.Vec3, normal mesh.Vec3) []int {
	n := len(positions)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return []int{0, 1, 2}
	}

	poly2D := projectToPlane(positions, normal)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	if !isPolygonCCW(poly2D) {
		reverseVec2(poly2D)
		reverseInt(order)
	}

	local := earClip(poly2D)
	out := make([]int, len(local))
	for i, li := range local {
		out[i] = order[li]
	}
	return out
}

// projectToPlane builds an orthonormal basis orthogonal to normal and
// returns every position's 2D coordinate in that basis, relative to the
// polygon's first vertex.
func projectToPlane(positions []mesh.Vec3, normal mesh.Vec3) []mesh.Vec2 {
	ref := positions[0]

	xAxis := mesh.Vec3{0, 0, 1}.Cross(normal)
	if nearlyZero(xAxis.Len()) {
		xAxis = mesh.Vec3{1, 0, 0}.Cross(normal)
		if nearlyZero(xAxis.Len()) {
			xAxis = mesh.Vec3{0, 1, 0}.Cross(normal)
		}
	}
	yAxis := normal.Cross(xAxis)
	xAxis = xAxis.Normalize()
	yAxis = yAxis.Normalize()

	out := make([]mesh.Vec2, len(positions))
	for i, p := range positions {
		d := p.Sub(ref)
		out[i] = mesh.Vec2{d.Dot(xAxis), d.Dot(yAxis)}
	}
	return out
}

// isPolygonCCW reports the sign of the shoelace sum of a 2D polygon. The sum
// of (x_j - x_i)(y_j + y_i) is negative for counter-clockwise winding.
func isPolygonCCW(p []mesh.Vec2) bool {
	var sum float32
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += (p[j][0] - p[i][0]) * (p[j][1] + p[i][1])
	}
	return sum < 0
}

// earClip triangulates a simple CCW 2D polygon by repeatedly removing
// "ears": convex vertices whose clipping triangle contains no other
// polygon vertex. Returns indices into the input slice, 3 per triangle.
func earClip(poly []mesh.Vec2) []int {
	n := len(poly)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var out []int
	guard := 0
	for len(idx) > 3 && guard < n*n {
		guard++
		earFound := false
		for i := range idx {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]

			if !isConvex(poly[prev], poly[cur], poly[next]) {
				continue
			}
			if triangleContainsAny(poly[prev], poly[cur], poly[next], poly, idx, prev, cur, next) {
				continue
			}

			out = append(out, prev, cur, next)
			idx = append(append([]int{}, idx[:i]...), idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Degenerate/self-intersecting input: fall back to a fan from
			// the first remaining vertex so the contract's index count is
			// still met.
			break
		}
	}
	for i := 1; i+1 < len(idx); i++ {
		out = append(out, idx[0], idx[i], idx[i+1])
	}
	return out
}

func isConvex(a, b, c mesh.Vec2) bool {
	return cross2(sub2(b, a), sub2(c, b)) > 0
}

func triangleContainsAny(a, b, c mesh.Vec2, poly []mesh.Vec2, idx []int, ia, ib, ic int) bool {
	for _, i := range idx {
		if i == ia || i == ib || i == ic {
			continue
		}
		if pointInTriangle(poly[i], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c mesh.Vec2) bool {
	d1 := cross2(sub2(p, a), sub2(b, a))
	d2 := cross2(sub2(p, b), sub2(c, b))
	d3 := cross2(sub2(p, c), sub2(a, c))

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross2(a, b mesh.Vec2) float32 { return a[0]*b[1] - a[1]*b[0] }
func sub2(a, b mesh.Vec2) mesh.Vec2 { return mesh.Vec2{a[0] - b[0], a[1] - b[1]} }

func reverseVec2(s []mesh.Vec2) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseInt(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func nearlyZero(f float32) bool {
	const eps = 1e-6
	if f < 0 {
		f = -f
	}
	return f < eps
}
