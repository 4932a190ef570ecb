package atlas

import (
	"math"
	"testing"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/layout"
)

func parseTestFont(t *testing.T) *Font {
	t.Helper()
	f, err := Parse([]byte(bmfontJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestBuildQuads(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	// Atlas generated at size 32; render at the same size so scale
	// stays 1 and pixel metrics carry through.
	mesh, metrics, err := b.Build("AB", font, layout.DefaultOptions(32))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if mesh.VertexCount() != 8 {
		t.Errorf("got %d vertices, want 8 (two quads)", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 4 {
		t.Errorf("got %d triangles, want 4", mesh.TriangleCount())
	}
	if metrics.Lines != 1 {
		t.Errorf("got %d lines, want 1", metrics.Lines)
	}

	n := uint32(mesh.VertexCount())
	for i, idx := range mesh.Indices {
		if idx >= n {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, n)
		}
	}
}

func TestBuildQuadPlacement(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	mesh, _, err := b.Build("A", font, layout.DefaultOptions(32))
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 4 {
		t.Fatalf("got %d vertices, want 4", mesh.VertexCount())
	}

	// 'A': xoffset 1, yoffset 8, 18x22 rect. The pen starts at x=0
	// with the baseline at base=30, so the line top is y=0.
	wantMinX, wantMinY := 1.0, 8.0
	wantMaxX, wantMaxY := 1.0+18, 8.0+22

	const eps = 1e-6
	if math.Abs(mesh.Bounds.MinX-wantMinX) > eps || math.Abs(mesh.Bounds.MinY-wantMinY) > eps {
		t.Errorf("quad min: (%v, %v), want (%v, %v)", mesh.Bounds.MinX, mesh.Bounds.MinY, wantMinX, wantMinY)
	}
	if math.Abs(mesh.Bounds.MaxX-wantMaxX) > eps || math.Abs(mesh.Bounds.MaxY-wantMaxY) > eps {
		t.Errorf("quad max: (%v, %v), want (%v, %v)", mesh.Bounds.MaxX, mesh.Bounds.MaxY, wantMaxX, wantMaxY)
	}
}

func TestBuildUVsNormalized(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	mesh, _, err := b.Build("AB", font, layout.DefaultOptions(32))
	if err != nil {
		t.Fatal(err)
	}

	for v := 0; v < mesh.VertexCount(); v++ {
		base := v * textmesh.FloatsPerVertex
		u, vv := mesh.Vertices[base+3], mesh.Vertices[base+4]
		if u < 0 || u > 1 || vv < 0 || vv > 1 {
			t.Fatalf("vertex %d uv (%v, %v) outside [0,1]", v, u, vv)
		}
	}

	// First quad's top-left vertex maps to 'A' at (10,20) in a
	// 256x256 atlas.
	u0 := mesh.Vertices[3]
	v0 := mesh.Vertices[4]
	if math.Abs(float64(u0)-10.0/256) > 1e-6 || math.Abs(float64(v0)-20.0/256) > 1e-6 {
		t.Errorf("'A' top-left uv: (%v, %v), want (%v, %v)", u0, v0, 10.0/256, 20.0/256)
	}
}

func TestBuildSpaceEmitsNoQuad(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	mesh, metrics, err := b.Build("A B", font, layout.DefaultOptions(32))
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 8 {
		t.Errorf("got %d vertices, want 8 (space emits none)", mesh.VertexCount())
	}

	// The space still advances the pen: B starts after A's advance
	// (12) plus the space advance (10), plus kerning 0, at xoffset 2.
	var bGlyph layout.Glyph
	for _, g := range metrics.Glyphs {
		if g.Rune == 'B' {
			bGlyph = g
		}
	}
	if bGlyph.X != 22 {
		t.Errorf("'B' pen x: got %v, want 22", bGlyph.X)
	}
}

func TestBuildScale(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	// Half the generation size halves every pixel metric.
	mesh, metrics, err := b.Build("A", font, layout.DefaultOptions(16))
	if err != nil {
		t.Fatal(err)
	}
	if got := mesh.Bounds.Width(); math.Abs(got-9) > 1e-6 {
		t.Errorf("width at half size: got %v, want 9", got)
	}
	if got := metrics.Width; math.Abs(got-6) > 1e-6 {
		t.Errorf("advance width at half size: got %v, want 6", got)
	}
}

func TestBuildKerningApplied(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	_, metrics, err := b.Build("AB", font, layout.DefaultOptions(32))
	if err != nil {
		t.Fatal(err)
	}
	// B at A's advance 12 plus kerning -2.
	if len(metrics.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(metrics.Glyphs))
	}
	if got := metrics.Glyphs[1].X; got != 10 {
		t.Errorf("'B' pen x: got %v, want 10", got)
	}
}

func TestBuildInvalidFont(t *testing.T) {
	b := NewBuilder()
	mesh, _, err := b.Build("x", nil, layout.DefaultOptions(16))
	if err != ErrInvalidFont {
		t.Errorf("nil font: got %v, want ErrInvalidFont", err)
	}
	// An empty mesh, never nil, so callers can inspect it regardless.
	if mesh == nil {
		t.Fatal("got nil mesh")
	}
	if mesh.VertexCount() != 0 || len(mesh.Indices) != 0 {
		t.Errorf("got %d vertices and %d indices, want empty mesh",
			mesh.VertexCount(), len(mesh.Indices))
	}
}

func TestBuildWraps(t *testing.T) {
	b := NewBuilder()
	font := parseTestFont(t)

	opts := layout.DefaultOptions(32)
	opts.MaxWidth = 20

	_, metrics, err := b.Build("A B", font, opts)
	if err != nil {
		t.Fatal(err)
	}
	if metrics.Lines != 2 {
		t.Errorf("got %d lines, want 2", metrics.Lines)
	}
}
