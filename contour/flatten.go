package contour

import (
	"github.com/gogpu/textmesh"
)

// DefaultTolerance is the maximum allowed deviation between a curve
// and its linear approximation, in the coordinate space of the path
// (font design units for glyph outlines). Glyph outlines live on grids
// of 1000–2048 units per em, so a few units of error stays well below
// a pixel at typical rendering sizes.
const DefaultTolerance = 2.0

// maxFlattenDepth bounds the subdivision recursion. Well-formed curves
// converge long before this; pathological control points (NaN-adjacent
// or astronomically distant) terminate instead of exhausting the stack.
// Each level halves the parameter interval, so 20 levels subdivide a
// curve into up to ~1M segments.
const maxFlattenDepth = 20

// FlattenQuadratic appends a polyline approximation of the quadratic
// Bezier (p0, ctrl, p1) to dst and returns the extended slice. The
// start point p0 is assumed to already be in dst; only interior points
// and the endpoint are appended.
func FlattenQuadratic(dst []textmesh.Point, p0, ctrl, p1 textmesh.Point, tolerance float64) []textmesh.Point {
	return flattenQuad(dst, p0, ctrl, p1, tolerance, 0)
}

// FlattenCubic appends a polyline approximation of the cubic Bezier
// (p0, ctrl1, ctrl2, p1) to dst and returns the extended slice. As with
// FlattenQuadratic, p0 is not re-appended.
func FlattenCubic(dst []textmesh.Point, p0, ctrl1, ctrl2, p1 textmesh.Point, tolerance float64) []textmesh.Point {
	return flattenCubic(dst, p0, ctrl1, ctrl2, p1, tolerance, 0)
}

func flattenQuad(dst []textmesh.Point, p0, ctrl, p1 textmesh.Point, tol float64, depth int) []textmesh.Point {
	if depth >= maxFlattenDepth || quadFlatEnough(p0, ctrl, p1, tol) {
		return append(dst, p1)
	}

	// De Casteljau subdivision at t=0.5
	a := p0.Midpoint(ctrl)
	b := ctrl.Midpoint(p1)
	m := a.Midpoint(b)

	dst = flattenQuad(dst, p0, a, m, tol, depth+1)
	return flattenQuad(dst, m, b, p1, tol, depth+1)
}

func flattenCubic(dst []textmesh.Point, p0, c1, c2, p1 textmesh.Point, tol float64, depth int) []textmesh.Point {
	if depth >= maxFlattenDepth ||
		(chordDistanceWithin(p0, p1, c1, tol) && chordDistanceWithin(p0, p1, c2, tol)) {
		return append(dst, p1)
	}

	// De Casteljau subdivision at t=0.5
	ab1 := p0.Midpoint(c1)
	ab2 := c1.Midpoint(c2)
	ab3 := c2.Midpoint(p1)

	bc1 := ab1.Midpoint(ab2)
	bc2 := ab2.Midpoint(ab3)

	m := bc1.Midpoint(bc2)

	dst = flattenCubic(dst, p0, ab1, bc1, m, tol, depth+1)
	return flattenCubic(dst, m, bc2, ab3, p1, tol, depth+1)
}

// quadFlatEnough reports whether the quadratic's control point lies
// within tol of the chord.
func quadFlatEnough(p0, ctrl, p1 textmesh.Point, tol float64) bool {
	return chordDistanceWithin(p0, p1, ctrl, tol)
}

// chordDistanceWithin reports whether the perpendicular distance from
// pt to the chord p0–p1 is at most tol. A zero-length chord is treated
// as already flat, avoiding division by zero on degenerate curves.
func chordDistanceWithin(p0, p1, pt textmesh.Point, tol float64) bool {
	chord := p1.Sub(p0)
	lenSq := chord.LengthSquared()
	if lenSq == 0 {
		return true
	}
	cross := chord.Cross(pt.Sub(p0))
	// |cross| / |chord| <= tol, squared to avoid the sqrt.
	return cross*cross <= tol*tol*lenSq
}
