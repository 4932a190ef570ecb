package contour

import (
	"github.com/gogpu/textmesh"
)

// closeEpsilon is the maximum distance, in design units, at which a
// contour's trailing point is considered coincident with its start and
// stripped when the contour is flushed.
const closeEpsilon = 1e-4

// FromCommands walks a glyph's path commands and returns its closed
// contours, flattening curve segments with the given tolerance.
//
// MoveTo starts a new contour (flushing any pending one), LineTo
// appends a point, QuadTo/CubicTo append flattened polylines, and
// Close stitches the contour back to its start. An unterminated final
// contour is flushed as if closed. Contours with fewer than 3 points
// are dropped; they enclose no area.
func FromCommands(cmds []textmesh.PathCommand, tolerance float64) []*Contour {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		contours []*Contour
		points   []textmesh.Point
		start    textmesh.Point
		current  textmesh.Point
	)

	flush := func() {
		// The polyline closes implicitly (last point connects to
		// first), so an explicit closing point would leave a
		// zero-length edge. Strip it.
		for len(points) >= 2 && points[0].Distance(points[len(points)-1]) <= closeEpsilon {
			points = points[:len(points)-1]
		}
		if len(points) >= 3 {
			contours = append(contours, &Contour{Points: points})
		}
		points = nil
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case textmesh.MoveTo:
			flush()
			start = c.Point
			current = c.Point
			points = append(points, c.Point)

		case textmesh.LineTo:
			points = append(points, c.Point)
			current = c.Point

		case textmesh.QuadTo:
			points = FlattenQuadratic(points, current, c.Control, c.Point, tolerance)
			current = c.Point

		case textmesh.CubicTo:
			points = FlattenCubic(points, current, c.Control1, c.Control2, c.Point, tolerance)
			current = c.Point

		case textmesh.Close:
			flush()
			current = start
		}
	}
	flush()

	return contours
}
