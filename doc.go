// Package textmesh converts font glyph outlines, or a pre-rasterized
// SDF/MSDF atlas, plus a text string into render-ready triangle
// geometry for the GoGPU ecosystem.
//
// # Overview
//
// textmesh is the geometry half of a text renderer. It knows nothing
// about GPUs, surfaces, or scene graphs: every operation is a pure
// function from in-memory inputs (outline commands, font metrics, or
// atlas descriptors) to flat vertex/index buffers described with
// gputypes vertex layouts, ready for any downstream render pipeline.
//
// # Pipelines
//
// The vector pipeline triangulates glyph outlines:
//
//	face, _ := opentype.ParseFace(ttfBytes)
//	b := vector.NewBuilder(glyphcache.New())
//	mesh, metrics, _ := b.Build("Hello\nWorld", face, layout.DefaultOptions(24))
//
// The atlas pipeline emits one textured quad per glyph from an SDF or
// MSDF atlas descriptor (msdf-atlas-gen JSON or BMFont JSON):
//
//	font, _ := atlas.Parse(descriptorJSON)
//	mesh, metrics, _ := atlas.NewBuilder().Build("Hello", font, layout.DefaultOptions(24))
//
// Both pipelines share the layout engine in package layout (wrapping,
// alignment, overflow, kerning), so measured text always agrees with
// rendered text.
//
// # Architecture
//
// The library is organized into:
//   - Root: shared primitives (Point, PathCommand, Face, Mesh, logging)
//   - contour: curve flattening and contour hierarchy resolution
//   - triangulate: ear-clipping triangulation with holes
//   - glyphcache: per-font memoization of triangulated glyphs
//   - layout: deterministic text layout
//   - vector, atlas: the two geometry builders
//   - opentype: sfnt and HarfBuzz font collaborator adapters
//
// # Concurrency
//
// Everything is synchronous, allocation-bounded, and free of I/O.
// Values are immutable after return. The only shared mutable state is
// glyphcache.Cache, which is safe for concurrent use.
package textmesh
