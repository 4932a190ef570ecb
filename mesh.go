package textmesh

import (
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex in every mesh produced by
// this module. Layout per vertex:
//
//	position  (vec3<f32>) = 12 bytes (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 20 bytes per vertex. The vector pipeline writes zero
// tex_coords; the atlas pipeline writes normalized atlas UVs. Keeping
// one layout lets both pipelines share a downstream render pipeline.
const VertexStride = 20

// FloatsPerVertex is the number of float32 values per vertex.
const FloatsPerVertex = 5

// maxUint16Vertices is the largest vertex count addressable with
// 16-bit indices.
const maxUint16Vertices = math.MaxUint16

// Mesh is a flat, GPU-ready triangle list: one interleaved vertex
// buffer plus one index buffer. Index width is chosen from the vertex
// count; see IndexFormat.
type Mesh struct {
	// Vertices holds FloatsPerVertex float32 values per vertex,
	// interleaved per VertexLayout.
	Vertices []float32

	// Indices is the triangle list, three indices per triangle. Values
	// are always < VertexCount(). Use Indices16 when IndexFormat
	// reports gputypes.IndexFormatUint16.
	Indices []uint32

	// Bounds is the axis-aligned bounding box of all vertex positions.
	Bounds Rect
}

// NewMesh returns an empty mesh with pre-allocated capacity for the
// given number of vertices and indices.
func NewMesh(vertexCap, indexCap int) *Mesh {
	return &Mesh{
		Vertices: make([]float32, 0, vertexCap*FloatsPerVertex),
		Indices:  make([]uint32, 0, indexCap),
		Bounds:   EmptyRect(),
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh contains no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// IndexFormat returns the narrowest gputypes index format that can
// address every vertex: Uint16 for up to 65535 vertices, Uint32 above.
func (m *Mesh) IndexFormat() gputypes.IndexFormat {
	if m.VertexCount() <= maxUint16Vertices {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// Indices16 returns the index buffer narrowed to 16 bits. It must only
// be called when IndexFormat reports Uint16; wider meshes return nil.
func (m *Mesh) Indices16() []uint16 {
	if m.VertexCount() > maxUint16Vertices {
		return nil
	}
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out
}

// AppendVertex adds one vertex and returns its index.
func (m *Mesh) AppendVertex(x, y, z, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices, x, y, z, u, v)
	m.Bounds.ExpandToInclude(Pt(float64(x), float64(y)))
	return idx
}

// AppendTriangle adds one triangle by vertex indices.
func (m *Mesh) AppendTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexLayout returns the vertex buffer layout shared by all meshes
// produced by this module. Matches VertexInput in a downstream shader:
//
//	location 0: position  (vec3<f32>)
//	location 1: tex_coord (vec2<f32>)
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}

// Topology returns the primitive topology of every mesh produced by
// this module.
func Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}
