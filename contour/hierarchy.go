package contour

import (
	"math"
	"sort"

	"github.com/gogpu/textmesh"
)

// classified pairs a contour with its resolved role during hierarchy
// resolution.
type classified struct {
	contour *Contour
	bounds  textmesh.Rect
	absArea float64
	isHole  bool
}

// ResolveHierarchy classifies contours into root shapes and the holes
// nested inside them, returning the roots with their Holes populated.
//
// Contours are processed in order of decreasing absolute area. Each
// contour is matched against the smallest already-classified contour
// that geometrically contains it (bounding-box rejection first, then a
// representative-point ray cast). No container means a new root; a
// root container means a hole; a hole container means an island, a
// new root nested inside the hole, as in "%".
//
// Contours with fewer than 3 points are discarded. Input Holes fields
// are overwritten.
func ResolveHierarchy(contours []*Contour) []*Contour {
	entries := make([]*classified, 0, len(contours))
	for _, c := range contours {
		if len(c.Points) < 3 {
			continue
		}
		c.Holes = nil
		entries = append(entries, &classified{
			contour: c,
			bounds:  c.Bounds(),
			absArea: math.Abs(c.SignedArea()),
		})
	}

	// Largest first: a container always has strictly more area than
	// its content, so every candidate parent precedes its children.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].absArea > entries[j].absArea
	})

	var roots []*Contour
	for i, e := range entries {
		parent := smallestContainer(entries[:i], e)
		switch {
		case parent == nil, parent.isHole:
			// Unnested, or an island inside a hole: a new root.
			roots = append(roots, e.contour)
		default:
			e.isHole = true
			parent.contour.Holes = append(parent.contour.Holes, e.contour)
		}
	}
	return roots
}

// smallestContainer returns the classified entry with the smallest
// absolute area that contains e, or nil if nothing does.
func smallestContainer(candidates []*classified, e *classified) *classified {
	probe := e.contour.Points[0]

	var best *classified
	for _, cand := range candidates {
		if !cand.bounds.ContainsRect(e.bounds) {
			continue
		}
		if !cand.contour.ContainsPoint(probe) {
			continue
		}
		if best == nil || cand.absArea < best.absArea {
			best = cand
		}
	}
	return best
}
