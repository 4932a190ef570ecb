package atlas

import (
	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/layout"
)

// Builder turns laid-out text into one textured quad per visible
// glyph, with texture coordinates into the font's atlas page.
//
// The zero value is ready to use. A Builder is stateless and safe for
// concurrent use.
type Builder struct{}

// NewBuilder returns a quad geometry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build lays out text with the font's pixel metrics and emits a quad
// mesh. Vertex positions are in the same space as the vector
// pipeline; texture coordinates are normalized atlas coordinates with
// a top-left origin.
//
// Glyphs with an empty atlas rectangle, such as spaces, advance the
// pen but emit no geometry.
func (b *Builder) Build(text string, font *Font, opts layout.Options) (*textmesh.Mesh, layout.Metrics, error) {
	if font == nil || font.Info.Size <= 0 || len(font.Glyphs) == 0 {
		return textmesh.NewMesh(0, 0), layout.Metrics{}, ErrInvalidFont
	}
	opts = opts.Normalized()

	metrics := layout.Layout(text, font, opts)

	scale := opts.FontSize / font.Info.Size
	invW, invH := 0.0, 0.0
	if font.Common.ScaleW > 0 {
		invW = 1.0 / font.Common.ScaleW
	}
	if font.Common.ScaleH > 0 {
		invH = 1.0 / font.Common.ScaleH
	}

	mesh := textmesh.NewMesh(len(metrics.Glyphs)*4, len(metrics.Glyphs)*6)
	lineTop := font.Common.Base * scale

	for _, pg := range metrics.Glyphs {
		g, ok := font.Glyphs[pg.Rune]
		if !ok || g.Width <= 0 || g.Height <= 0 {
			continue
		}

		x0 := pg.X + g.XOffset*scale
		y0 := pg.Y - lineTop + g.YOffset*scale
		x1 := x0 + g.Width*scale
		y1 := y0 + g.Height*scale

		u0 := g.X * invW
		v0 := g.Y * invH
		u1 := (g.X + g.Width) * invW
		v1 := (g.Y + g.Height) * invH

		tl := mesh.AppendVertex(float32(x0), float32(y0), 0, float32(u0), float32(v0))
		tr := mesh.AppendVertex(float32(x1), float32(y0), 0, float32(u1), float32(v0))
		br := mesh.AppendVertex(float32(x1), float32(y1), 0, float32(u1), float32(v1))
		bl := mesh.AppendVertex(float32(x0), float32(y1), 0, float32(u0), float32(v1))

		mesh.AppendTriangle(tl, br, tr)
		mesh.AppendTriangle(tl, bl, br)
	}

	return mesh, metrics, nil
}
