// Package vector builds triangulated text geometry from font glyph
// outlines: layout positions joined with per-glyph triangulations into
// one GPU-ready mesh.
package vector

import (
	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/contour"
	"github.com/gogpu/textmesh/glyphcache"
	"github.com/gogpu/textmesh/layout"
	"github.com/gogpu/textmesh/triangulate"
)

// Builder merges text layout with cached glyph triangulations. A
// Builder is cheap; the cache it wraps carries all reusable state and
// may be shared across builders.
type Builder struct {
	cache *glyphcache.Cache

	// Tolerance is the curve flattening tolerance in font design
	// units. Zero selects contour.DefaultTolerance.
	Tolerance float64
}

// NewBuilder creates a builder backed by the given cache. A nil cache
// gets a private one.
func NewBuilder(cache *glyphcache.Cache) *Builder {
	if cache == nil {
		cache = glyphcache.New()
	}
	return &Builder{cache: cache}
}

// Cache returns the glyph triangulation cache backing this builder.
func (b *Builder) Cache() *glyphcache.Cache {
	return b.cache
}

// Build lays out text and assembles one mesh from the triangulated
// outlines of every positioned glyph.
//
// Glyph-local coordinates are scaled by fontSize/unitsPerEm and
// Y-flipped (outlines are Y-up, layout is Y-down) around each glyph's
// baseline, then translated to the glyph's pen position. Indices are
// re-based onto the shared vertex buffer.
//
// A glyph whose outline fails to load contributes no geometry; the
// failure is logged and the rest of the string is unaffected.
func (b *Builder) Build(text string, face textmesh.Face, opts layout.Options) (*textmesh.Mesh, layout.Metrics, error) {
	if face == nil || face.UnitsPerEm() <= 0 {
		return textmesh.NewMesh(0, 0), layout.Metrics{}, ErrInvalidFace
	}

	opts = opts.Normalized()
	metrics := layout.Layout(text, face, opts)

	scale := opts.FontSize / face.UnitsPerEm()

	mesh := textmesh.NewMesh(len(metrics.Glyphs)*16, len(metrics.Glyphs)*48)

	for _, g := range metrics.Glyphs {
		glyph, err := b.cache.GetOrCompute(face.FontID(), g.ID, func() (*triangulate.Glyph, error) {
			return b.triangulateGlyph(face, g.ID)
		})
		if err != nil {
			textmesh.Logger().Warn("skipping glyph with unloadable outline",
				"glyph", uint16(g.ID), "rune", string(g.Rune), "error", err)
			continue
		}
		if glyph.IsEmpty() {
			continue
		}

		appendGlyph(mesh, glyph, scale, g.X, g.Y)
	}

	return mesh, metrics, nil
}

// triangulateGlyph runs the outline pipeline for one glyph.
func (b *Builder) triangulateGlyph(face textmesh.Face, gid textmesh.GlyphID) (*triangulate.Glyph, error) {
	cmds, err := face.GlyphCommands(gid)
	if err != nil {
		return nil, err
	}
	contours := contour.FromCommands(cmds, b.Tolerance)
	roots := contour.ResolveHierarchy(contours)
	return triangulate.Fill(roots), nil
}

// appendGlyph copies one triangulated glyph into the mesh, applying
// scale, Y flip and pen translation. The tex_coord attribute is zero
// filled; the vector pipeline carries no texture.
func appendGlyph(mesh *textmesh.Mesh, glyph *triangulate.Glyph, scale, penX, penY float64) {
	base := uint32(mesh.VertexCount())

	for i := 0; i+2 < len(glyph.Vertices); i += 3 {
		x := penX + float64(glyph.Vertices[i])*scale
		y := penY - float64(glyph.Vertices[i+1])*scale
		mesh.AppendVertex(float32(x), float32(y), 0, 0, 0)
	}
	for _, idx := range glyph.Indices {
		mesh.Indices = append(mesh.Indices, base+idx)
	}
}
