// Package triangulate fills resolved glyph contours with triangles
// using ear clipping with hole support, producing flat vertex and
// index buffers.
package triangulate

import (
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/contour"
)

// glyphStride is the number of float32 values per triangulated glyph
// vertex: x, y and a fixed z of 0.
const glyphStride = 3

// Glyph is the triangulated filled shape of one glyph, in the
// coordinate space of its outline (font design units, Y-up).
type Glyph struct {
	// Vertices holds three float32 values (x, y, 0) per vertex.
	Vertices []float32

	// Indices is the triangle list. Every value is < VertexCount().
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (g *Glyph) VertexCount() int {
	return len(g.Vertices) / glyphStride
}

// TriangleCount returns the number of triangles.
func (g *Glyph) TriangleCount() int {
	return len(g.Indices) / 3
}

// IsEmpty reports whether the glyph produced no geometry, as happens
// for whitespace or fully degenerate outlines.
func (g *Glyph) IsEmpty() bool {
	return len(g.Indices) == 0
}

// IndexFormat returns the narrowest index format that addresses every
// vertex: Uint16 for up to 65535 vertices, Uint32 above.
func (g *Glyph) IndexFormat() gputypes.IndexFormat {
	if g.VertexCount() <= math.MaxUint16 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// Indices16 returns the index buffer narrowed to 16 bits, or nil when
// IndexFormat reports Uint32.
func (g *Glyph) Indices16() []uint16 {
	if g.VertexCount() > math.MaxUint16 {
		return nil
	}
	out := make([]uint16, len(g.Indices))
	for i, idx := range g.Indices {
		out[i] = uint16(idx)
	}
	return out
}

// Fill triangulates a set of root contours (holes resolved, as
// returned by contour.ResolveHierarchy) into one merged glyph. Each
// root and its holes are clipped independently; the per-root index
// lists are re-based onto the shared vertex buffer.
//
// Roots with fewer than 3 points contribute nothing; a glyph with no
// usable contours comes back empty, never as an error.
func Fill(roots []*contour.Contour) *Glyph {
	g := &Glyph{}

	for _, root := range roots {
		triangulateRoot(root, g)
	}
	return g
}

// triangulateRoot appends one root-plus-holes group to the glyph.
func triangulateRoot(root *contour.Contour, g *Glyph) {
	if len(root.Points) < 3 {
		return
	}

	pointCount := len(root.Points)
	for _, hole := range root.Holes {
		pointCount += len(hole.Points)
	}

	// Flat coordinate array: outline first, then each hole, recording
	// the vertex offset where each hole begins.
	data := make([]float64, 0, pointCount*2)
	holeIndices := make([]int, 0, len(root.Holes))

	for _, p := range root.Points {
		data = append(data, p.X, p.Y)
	}
	for _, hole := range root.Holes {
		if len(hole.Points) < 3 {
			continue
		}
		holeIndices = append(holeIndices, len(data)/2)
		for _, p := range hole.Points {
			data = append(data, p.X, p.Y)
		}
	}

	indices := earcut(data, holeIndices)
	if len(indices) == 0 {
		return
	}

	base := uint32(g.VertexCount())
	for i := 0; i < len(data); i += 2 {
		g.Vertices = append(g.Vertices, float32(data[i]), float32(data[i+1]), 0)
	}
	for _, idx := range indices {
		g.Indices = append(g.Indices, base+idx)
	}
}

// FromCommands is a convenience that runs the full outline pipeline:
// flatten path commands into contours, resolve the hole hierarchy, and
// triangulate. tolerance <= 0 selects contour.DefaultTolerance.
func FromCommands(cmds []textmesh.PathCommand, tolerance float64) *Glyph {
	contours := contour.FromCommands(cmds, tolerance)
	roots := contour.ResolveHierarchy(contours)
	return Fill(roots)
}
