package textmesh

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestMeshAppend(t *testing.T) {
	m := NewMesh(3, 3)

	a := m.AppendVertex(0, 0, 0, 0, 0)
	b := m.AppendVertex(10, 0, 0, 1, 0)
	c := m.AppendVertex(0, 10, 0, 0, 1)
	m.AppendTriangle(a, b, c)

	if m.VertexCount() != 3 {
		t.Errorf("got %d vertices, want 3", m.VertexCount())
	}
	if m.TriangleCount() != 1 {
		t.Errorf("got %d triangles, want 1", m.TriangleCount())
	}
	if m.IsEmpty() {
		t.Error("mesh with a triangle reported empty")
	}
	if len(m.Vertices) != 3*FloatsPerVertex {
		t.Errorf("got %d floats, want %d", len(m.Vertices), 3*FloatsPerVertex)
	}

	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if m.Bounds != want {
		t.Errorf("bounds: got %+v, want %+v", m.Bounds, want)
	}
}

func TestMeshIndexFormat(t *testing.T) {
	m := NewMesh(0, 0)
	if m.IndexFormat() != gputypes.IndexFormatUint16 {
		t.Errorf("empty mesh: got %v, want Uint16", m.IndexFormat())
	}

	for i := 0; i < 65536; i++ {
		m.AppendVertex(float32(i), 0, 0, 0, 0)
	}
	// 65536 vertices need index 65535 and one more.
	if m.IndexFormat() != gputypes.IndexFormatUint32 {
		t.Errorf("wide mesh: got %v, want Uint32", m.IndexFormat())
	}
	if m.Indices16() != nil {
		t.Error("Indices16 returned a buffer for a wide mesh")
	}
}

func TestMeshIndices16(t *testing.T) {
	m := NewMesh(3, 3)
	m.AppendVertex(0, 0, 0, 0, 0)
	m.AppendVertex(1, 0, 0, 0, 0)
	m.AppendVertex(0, 1, 0, 0, 0)
	m.AppendTriangle(0, 1, 2)

	narrow := m.Indices16()
	if len(narrow) != 3 {
		t.Fatalf("got %d narrow indices, want 3", len(narrow))
	}
	for i, idx := range narrow {
		if uint32(idx) != m.Indices[i] {
			t.Errorf("index %d: got %d, want %d", i, idx, m.Indices[i])
		}
	}
}

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d buffer layouts, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("stride: got %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("step mode: got %v", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}

	pos, uv := l.Attributes[0], l.Attributes[1]
	if pos.Format != gputypes.VertexFormatFloat32x3 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute: %+v", pos)
	}
	if uv.Format != gputypes.VertexFormatFloat32x2 || uv.Offset != 12 || uv.ShaderLocation != 1 {
		t.Errorf("tex coord attribute: %+v", uv)
	}
}

func TestTopology(t *testing.T) {
	if Topology() != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("topology: got %v, want TriangleList", Topology())
	}
}
