package contour

import (
	"testing"

	"github.com/gogpu/textmesh"
)

func squareContour(x, y, size float64) *Contour {
	return &Contour{Points: []textmesh.Point{
		textmesh.Pt(x, y),
		textmesh.Pt(x+size, y),
		textmesh.Pt(x+size, y+size),
		textmesh.Pt(x, y+size),
	}}
}

func TestContainsPoint(t *testing.T) {
	c := squareContour(0, 0, 100)

	tests := []struct {
		name string
		p    textmesh.Point
		want bool
	}{
		{"center", textmesh.Pt(50, 50), true},
		{"outside left", textmesh.Pt(-10, 50), false},
		{"outside right", textmesh.Pt(110, 50), false},
		{"outside above", textmesh.Pt(50, 110), false},
		{"near corner inside", textmesh.Pt(1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestResolveHierarchySingleShape(t *testing.T) {
	roots := ResolveHierarchy([]*Contour{squareContour(0, 0, 100)})
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if len(roots[0].Holes) != 0 {
		t.Errorf("got %d holes, want 0", len(roots[0].Holes))
	}
}

func TestResolveHierarchyShapeWithHole(t *testing.T) {
	outer := squareContour(0, 0, 100)
	inner := squareContour(25, 25, 50)

	roots := ResolveHierarchy([]*Contour{inner, outer})
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0] != outer {
		t.Fatal("outer contour is not the root")
	}
	if len(roots[0].Holes) != 1 || roots[0].Holes[0] != inner {
		t.Fatalf("inner contour not classified as hole")
	}
}

func TestResolveHierarchyTwoEyes(t *testing.T) {
	// An "8"-like glyph: one outer shape with two separate holes.
	outer := squareContour(0, 0, 100)
	top := squareContour(30, 55, 30)
	bottom := squareContour(30, 15, 30)

	roots := ResolveHierarchy([]*Contour{top, outer, bottom})
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if len(roots[0].Holes) != 2 {
		t.Errorf("got %d holes, want 2", len(roots[0].Holes))
	}
}

func TestResolveHierarchyIslandInHole(t *testing.T) {
	// Shape, hole in the shape, island in the hole. The island is a
	// root of its own, like the dot inside a "%" ring.
	outer := squareContour(0, 0, 100)
	hole := squareContour(10, 10, 80)
	island := squareContour(30, 30, 40)

	roots := ResolveHierarchy([]*Contour{island, hole, outer})
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if len(outer.Holes) != 1 || outer.Holes[0] != hole {
		t.Error("hole not attached to outer shape")
	}
	if len(island.Holes) != 0 {
		t.Error("island should carry no holes")
	}
}

func TestResolveHierarchySiblings(t *testing.T) {
	// Two disjoint shapes stay independent roots.
	a := squareContour(0, 0, 50)
	b := squareContour(100, 0, 50)

	roots := ResolveHierarchy([]*Contour{a, b})
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
}

func TestResolveHierarchyDropsDegenerate(t *testing.T) {
	degenerate := &Contour{Points: []textmesh.Point{textmesh.Pt(0, 0), textmesh.Pt(1, 1)}}
	roots := ResolveHierarchy([]*Contour{degenerate})
	if len(roots) != 0 {
		t.Errorf("degenerate contour survived: %d roots", len(roots))
	}
}

func TestSignedAreaWinding(t *testing.T) {
	ccw := squareContour(0, 0, 10)
	if area := ccw.SignedArea(); area <= 0 {
		t.Errorf("counter-clockwise square: area %v, want > 0", area)
	}

	cw := &Contour{Points: []textmesh.Point{
		textmesh.Pt(0, 0),
		textmesh.Pt(0, 10),
		textmesh.Pt(10, 10),
		textmesh.Pt(10, 0),
	}}
	if area := cw.SignedArea(); area >= 0 {
		t.Errorf("clockwise square: area %v, want < 0", area)
	}
}
