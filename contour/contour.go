// Package contour converts glyph path commands into closed polylines
// and resolves their nesting hierarchy (outer shapes, holes, islands).
package contour

import (
	"github.com/gogpu/textmesh"
)

// Contour is a closed polyline approximating part of a glyph outline.
// The last point conceptually connects back to the first.
type Contour struct {
	// Points is the polyline. A contour with fewer than 3 points
	// encloses no area and is discarded by the hierarchy resolver.
	Points []textmesh.Point

	// Holes lists the contours nested directly inside this one.
	// Populated by ResolveHierarchy for root contours only.
	Holes []*Contour
}

// SignedArea returns the polygon area via the shoelace formula.
// The sign encodes winding: positive for counter-clockwise.
func (c *Contour) SignedArea() float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		p := c.Points[i]
		q := c.Points[(i+1)%n]
		area += p.Cross(q)
	}
	return area / 2
}

// Bounds returns the axis-aligned bounding box of the polyline.
func (c *Contour) Bounds() textmesh.Rect {
	bounds := textmesh.EmptyRect()
	for _, p := range c.Points {
		bounds.ExpandToInclude(p)
	}
	return bounds
}

// ContainsPoint reports whether p lies inside the contour, using the
// even-odd ray casting rule with a horizontal ray toward +X. Points
// exactly on an edge may land on either side; callers that need a
// robust answer should test a representative interior point.
func (c *Contour) ContainsPoint(p textmesh.Point) bool {
	n := len(c.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a := c.Points[i]
		b := c.Points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			slope := (b.X - a.X) / (b.Y - a.Y)
			if p.X < a.X+slope*(p.Y-a.Y) {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
