package triangulate

import "math"

// Ear-clipping triangulation of a polygon with holes, operating on a
// flat coordinate array plus hole-start offsets. The polygon vertices
// are kept in a circular doubly-linked list; holes are spliced into
// the outer ring via bridge edges before clipping begins.

// node is a vertex in the circular doubly-linked polygon list.
type node struct {
	i    uint32 // vertex index in the source coordinate array
	x, y float64

	prev, next *node

	// steiner marks bridge duplicates inserted during hole elimination.
	steiner bool
}

// earcut triangulates the polygon described by data (x0,y0,x1,y1,...)
// with holes starting at the vertex offsets in holeIndices. It returns
// a triangle list of vertex indices into data (index k refers to
// coordinates data[2k], data[2k+1]).
//
// Degenerate input (fewer than 3 usable vertices) yields an empty
// slice, never an error.
func earcut(data []float64, holeIndices []int) []uint32 {
	hasHoles := len(holeIndices) > 0
	outerLen := len(data)
	if hasHoles {
		outerLen = holeIndices[0] * 2
	}

	outerNode := linkedList(data, 0, outerLen, true)
	if outerNode == nil || outerNode.next == outerNode.prev {
		return nil
	}

	if hasHoles {
		outerNode = eliminateHoles(data, holeIndices, outerNode)
	}

	triangles := make([]uint32, 0, len(data)/2*3)
	return earcutLinked(outerNode, triangles, 0)
}

// linkedList builds a circular list from a ring of coordinates,
// reversing the traversal direction when the ring's stored winding
// does not match the requested one. The outer ring and hole rings use
// opposite windings so bridge splicing yields a consistent ring.
func linkedList(data []float64, start, end int, clockwise bool) *node {
	var last *node

	if clockwise == (signedRingArea(data, start, end) > 0) {
		for i := start; i < end; i += 2 {
			last = insertNode(uint32(i/2), data[i], data[i+1], last)
		}
	} else {
		for i := end - 2; i >= start; i -= 2 {
			last = insertNode(uint32(i/2), data[i], data[i+1], last)
		}
	}

	if last != nil && equalPoints(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

// filterPoints removes collinear and duplicate vertices from the ring
// containing start, returning a surviving node (or nil if the ring
// collapsed).
func filterPoints(start, end *node) *node {
	if start == nil {
		return nil
	}
	if end == nil {
		end = start
	}

	p := start
	for {
		again := false
		if !p.steiner && (equalPoints(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				return nil
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// earcutLinked is the main clipping loop. pass tracks which fallback
// stage is active: 0 none, 1 after de-duplication, 2 after curing
// local self-intersections.
func earcutLinked(ear *node, triangles []uint32, pass int) []uint32 {
	if ear == nil {
		return triangles
	}

	stop := ear
	for ear.prev != ear.next {
		prev := ear.prev
		next := ear.next

		if isEar(ear) {
			triangles = append(triangles, prev.i, ear.i, next.i)
			removeNode(ear)

			// Skipping one vertex after a clip produces fewer
			// sliver triangles.
			ear = next.next
			stop = next.next
			continue
		}

		ear = next

		// The whole remaining ring was scanned without clipping an
		// ear: escalate through the fallback stages.
		if ear == stop {
			switch pass {
			case 0:
				ear = filterPoints(ear, nil)
				triangles = earcutLinked(ear, triangles, 1)
			case 1:
				ear = filterPoints(ear, nil)
				ear = cureLocalIntersections(ear, &triangles)
				triangles = earcutLinked(ear, triangles, 2)
			case 2:
				triangles = splitEarcut(ear, triangles)
			}
			return triangles
		}
	}
	return triangles
}

// isEar reports whether the triangle (ear.prev, ear, ear.next) is
// convex and contains no other vertex of the ring.
func isEar(ear *node) bool {
	a, b, c := ear.prev, ear, ear.next

	if area(a, b, c) >= 0 {
		return false // reflex or degenerate corner
	}

	p := ear.next.next
	for p != ear.prev {
		if pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
		p = p.next
	}
	return true
}

// cureLocalIntersections clips pairs of edges that intersect their
// immediate neighbor, a cheap repair for slightly self-touching rings.
func cureLocalIntersections(start *node, triangles *[]uint32) *node {
	p := start
	for {
		a, b := p.prev, p.next.next

		if !equalPoints(a, b) && intersects(a, p, p.next, b) &&
			locallyInside(a, b) && locallyInside(b, a) {
			*triangles = append(*triangles, a.i, p.i, b.i)

			removeNode(p)
			removeNode(p.next)

			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitEarcut is the last resort: split the ring along a valid
// diagonal and clip the two halves independently.
func splitEarcut(start *node, triangles []uint32) []uint32 {
	a := start
	for {
		b := a.next.next
		for b != a.prev {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)

				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)

				triangles = earcutLinked(a, triangles, 0)
				return earcutLinked(c, triangles, 0)
			}
			b = b.next
		}
		a = a.next
		if a == start {
			break
		}
	}
	return triangles
}

// eliminateHoles splices every hole ring into the outer ring with
// bridge edges, turning the polygon-with-holes into one ring.
func eliminateHoles(data []float64, holeIndices []int, outerNode *node) *node {
	queue := make([]*node, 0, len(holeIndices))

	for i, holeStart := range holeIndices {
		start := holeStart * 2
		end := len(data)
		if i < len(holeIndices)-1 {
			end = holeIndices[i+1] * 2
		}
		list := linkedList(data, start, end, false)
		if list == nil {
			continue
		}
		if list == list.next {
			list.steiner = true
		}
		queue = append(queue, leftmostNode(list))
	}

	// Process holes left to right so each bridge lands on the ring
	// built so far.
	for i := 1; i < len(queue); i++ {
		for j := i; j > 0 && queue[j].x < queue[j-1].x; j-- {
			queue[j], queue[j-1] = queue[j-1], queue[j]
		}
	}

	for _, hole := range queue {
		outerNode = eliminateHole(hole, outerNode)
	}
	return outerNode
}

// eliminateHole connects a single hole to the outer ring.
func eliminateHole(hole, outerNode *node) *node {
	bridge := findHoleBridge(hole, outerNode)
	if bridge == nil {
		return outerNode
	}

	bridgeReverse := splitPolygon(bridge, hole)

	filterPoints(bridgeReverse, bridgeReverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge locates an outer-ring vertex visible from the hole's
// leftmost vertex (David Eberly's horizontal-ray construction).
func findHoleBridge(hole, outerNode *node) *node {
	p := outerNode
	hx, hy := hole.x, hole.y
	qx := math.Inf(-1)
	var m *node

	// Find the rightmost intersection of a leftward horizontal ray
	// from the hole vertex with the outer ring edges.
	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p
				if p.x < p.next.x {
					m = p.next
				}
				if x == hx {
					return m // ray hits the vertex exactly
				}
			}
		}
		p = p.next
		if p == outerNode {
			break
		}
	}

	if m == nil {
		return nil
	}

	// The visible vertex is either m or, when the sector contains
	// other vertices, the reflex vertex inside the candidate triangle
	// minimizing the angle to the ray.
	stop := m
	mx, my := m.x, m.y
	tanMin := math.Inf(1)

	p = m
	for {
		ax, cx := qx, hx
		if hy < my {
			ax, cx = hx, qx
		}
		if hx >= p.x && p.x >= mx && hx != p.x &&
			pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := math.Abs(hy-p.y) / (hx - p.x)

			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

// pointInTriangle reports whether (px, py) lies inside or on the
// triangle (ax,ay)-(bx,by)-(cx,cy).
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// sectorContainsSector reports whether m's angular sector fully
// contains p's, breaking ties between equally-angled bridge targets.
func sectorContainsSector(m, p *node) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

// isValidDiagonal reports whether a–b is a chord of the ring lying
// inside the polygon and crossing no edges.
func isValidDiagonal(a, b *node) bool {
	return a.next.i != b.i && a.prev.i != b.i && !intersectsPolygon(a, b) &&
		(locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
			(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) ||
			equalPoints(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0)
}

// area returns twice the signed area of triangle (p, q, r).
// Positive when the triangle winds clockwise in Y-down coordinates.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func equalPoints(a, b *node) bool {
	return a.x == b.x && a.y == b.y
}

// intersects reports whether segments p1–q1 and p2–q2 intersect.
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// onSegment reports whether q lies on the segment p–r, assuming the
// three points are collinear.
func onSegment(p, q, r *node) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// intersectsPolygon reports whether diagonal a–b crosses any ring edge.
func intersectsPolygon(a, b *node) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i &&
			intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			break
		}
	}
	return false
}

// locallyInside reports whether diagonal a–b heads into the polygon
// interior at a.
func locallyInside(a, b *node) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

// middleInside reports whether the midpoint of a–b lies inside the
// polygon (even-odd ray cast).
func middleInside(a, b *node) bool {
	px := (a.x + b.x) / 2
	py := (a.y + b.y) / 2
	inside := false

	p := a
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			break
		}
	}
	return inside
}

// splitPolygon links a–b as a pair of bridge edges, splitting one ring
// into two (or merging a hole ring into the outer ring). It returns
// the node starting the second ring, using duplicates of a and b.
func splitPolygon(a, b *node) *node {
	a2 := &node{i: a.i, x: a.x, y: a.y}
	b2 := &node{i: b.i, x: b.x, y: b.y}
	an := a.next
	bp := b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

// insertNode appends a vertex after last in the circular list (or
// starts a new single-node ring) and returns the new node.
func insertNode(i uint32, x, y float64, last *node) *node {
	p := &node{i: i, x: x, y: y}

	if last == nil {
		p.prev = p
		p.next = p
	} else {
		p.next = last.next
		p.prev = last
		last.next.prev = p
		last.next = p
	}
	return p
}

func removeNode(p *node) {
	p.next.prev = p.prev
	p.prev.next = p.next
}

// leftmostNode returns the ring vertex with the smallest x (then y).
func leftmostNode(start *node) *node {
	p := start
	leftmost := start
	for {
		if p.x < leftmost.x || (p.x == leftmost.x && p.y < leftmost.y) {
			leftmost = p
		}
		p = p.next
		if p == start {
			break
		}
	}
	return leftmost
}

// signedRingArea returns twice the shoelace area of the coordinate
// ring data[start:end].
func signedRingArea(data []float64, start, end int) float64 {
	var sum float64
	j := end - 2
	for i := start; i < end; i += 2 {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}
