package triangulate

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/contour"
)

func squareContour(x, y, size float64) *contour.Contour {
	return &contour.Contour{Points: []textmesh.Point{
		textmesh.Pt(x, y),
		textmesh.Pt(x+size, y),
		textmesh.Pt(x+size, y+size),
		textmesh.Pt(x, y+size),
	}}
}

func starContour(cx, cy, outerR, innerR float64, points int) *contour.Contour {
	c := &contour.Contour{}
	for i := 0; i < points; i++ {
		outerAngle := float64(i)*2*math.Pi/float64(points) - math.Pi/2
		c.Points = append(c.Points, textmesh.Pt(
			cx+outerR*math.Cos(outerAngle),
			cy+outerR*math.Sin(outerAngle),
		))
		innerAngle := outerAngle + math.Pi/float64(points)
		c.Points = append(c.Points, textmesh.Pt(
			cx+innerR*math.Cos(innerAngle),
			cy+innerR*math.Sin(innerAngle),
		))
	}
	return c
}

// checkIndices verifies every index addresses a vertex.
func checkIndices(t *testing.T, g *Glyph) {
	t.Helper()
	n := uint32(g.VertexCount())
	for i, idx := range g.Indices {
		if idx >= n {
			t.Fatalf("index %d out of range: %d >= %d vertices", i, idx, n)
		}
	}
	if len(g.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(g.Indices))
	}
}

func TestFillSquare(t *testing.T) {
	g := Fill([]*contour.Contour{squareContour(0, 0, 100)})

	if g.VertexCount() != 4 {
		t.Errorf("got %d vertices, want 4", g.VertexCount())
	}
	if g.TriangleCount() != 2 {
		t.Errorf("got %d triangles, want 2", g.TriangleCount())
	}
	checkIndices(t, g)
}

func TestFillEmpty(t *testing.T) {
	tests := []struct {
		name  string
		roots []*contour.Contour
	}{
		{"nil", nil},
		{"no contours", []*contour.Contour{}},
		{"degenerate", []*contour.Contour{{Points: []textmesh.Point{textmesh.Pt(0, 0), textmesh.Pt(1, 0)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Fill(tt.roots)
			if !g.IsEmpty() {
				t.Errorf("got %d triangles, want empty", g.TriangleCount())
			}
			if len(g.Vertices) != 0 {
				t.Errorf("got %d vertex floats, want 0", len(g.Vertices))
			}
		})
	}
}

func TestFillStar(t *testing.T) {
	// Concave 10-gon; a simple polygon triangulates to n-2 triangles.
	g := Fill([]*contour.Contour{starContour(100, 100, 80, 30, 5)})

	if g.VertexCount() != 10 {
		t.Errorf("got %d vertices, want 10", g.VertexCount())
	}
	if g.TriangleCount() != 8 {
		t.Errorf("got %d triangles, want 8", g.TriangleCount())
	}
	checkIndices(t, g)
}

func TestFillSquareWithHole(t *testing.T) {
	outer := squareContour(0, 0, 100)
	hole := squareContour(30, 30, 40)
	outer.Holes = []*contour.Contour{hole}

	g := Fill([]*contour.Contour{outer})
	if g.IsEmpty() {
		t.Fatal("ring produced no triangles")
	}
	checkIndices(t, g)

	// No triangle may cover the hole interior. The hole rectangle is
	// axis-aligned, so a centroid strictly inside the (slightly
	// shrunk) hole means a covering triangle.
	for i := 0; i+2 < len(g.Indices); i += 3 {
		cx, cy := centroid(g, i)
		if cx > 31 && cx < 69 && cy > 31 && cy < 69 {
			t.Fatalf("triangle %d centroid (%v, %v) lies inside the hole", i/3, cx, cy)
		}
	}
}

func TestFillMultipleRoots(t *testing.T) {
	g := Fill([]*contour.Contour{
		squareContour(0, 0, 50),
		squareContour(100, 0, 50),
	})
	if g.VertexCount() != 8 {
		t.Errorf("got %d vertices, want 8", g.VertexCount())
	}
	if g.TriangleCount() != 4 {
		t.Errorf("got %d triangles, want 4", g.TriangleCount())
	}
	checkIndices(t, g)
}

func TestFillAreaPreserved(t *testing.T) {
	// Triangle areas must sum to the polygon area.
	g := Fill([]*contour.Contour{squareContour(0, 0, 100)})

	var sum float64
	for i := 0; i+2 < len(g.Indices); i += 3 {
		ax, ay := vertex(g, g.Indices[i])
		bx, by := vertex(g, g.Indices[i+1])
		cx, cy := vertex(g, g.Indices[i+2])
		sum += math.Abs((bx-ax)*(cy-ay)-(cx-ax)*(by-ay)) / 2
	}
	if math.Abs(sum-100*100) > 1e-3 {
		t.Errorf("triangle area sum %v, want 10000", sum)
	}
}

func TestFromCommandsDonut(t *testing.T) {
	p := textmesh.NewPath()
	p.Circle(100, 100, 80)
	p.Circle(100, 100, 30)

	g := FromCommands(p.Commands(), 0.5)
	if g.IsEmpty() {
		t.Fatal("donut produced no triangles")
	}
	checkIndices(t, g)

	// Triangle centroids stay in the ring.
	for i := 0; i+2 < len(g.Indices); i += 3 {
		cx, cy := centroid(g, i)
		d := math.Hypot(cx-100, cy-100)
		if d < 28 || d > 82 {
			t.Fatalf("triangle %d centroid at radius %v, want within ring [30, 80]", i/3, d)
		}
	}
}

func TestFromCommandsEmpty(t *testing.T) {
	g := FromCommands(nil, 0)
	if !g.IsEmpty() {
		t.Error("empty command list produced geometry")
	}
	if g.IndexFormat() != gputypes.IndexFormatUint16 {
		t.Errorf("empty glyph index format: got %v, want Uint16", g.IndexFormat())
	}
}

func TestGlyphIndices16(t *testing.T) {
	g := Fill([]*contour.Contour{squareContour(0, 0, 10)})
	if g.IndexFormat() != gputypes.IndexFormatUint16 {
		t.Fatalf("index format: got %v, want Uint16", g.IndexFormat())
	}
	narrow := g.Indices16()
	if len(narrow) != len(g.Indices) {
		t.Fatalf("got %d narrow indices, want %d", len(narrow), len(g.Indices))
	}
	for i, idx := range narrow {
		if uint32(idx) != g.Indices[i] {
			t.Fatalf("index %d: got %d, want %d", i, idx, g.Indices[i])
		}
	}
}

func vertex(g *Glyph, idx uint32) (float64, float64) {
	return float64(g.Vertices[idx*3]), float64(g.Vertices[idx*3+1])
}

func centroid(g *Glyph, i int) (float64, float64) {
	ax, ay := vertex(g, g.Indices[i])
	bx, by := vertex(g, g.Indices[i+1])
	cx, cy := vertex(g, g.Indices[i+2])
	return (ax + bx + cx) / 3, (ay + by + cy) / 3
}
