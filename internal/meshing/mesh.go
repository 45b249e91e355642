package meshing

import (
	"errors"
	"fmt"
)

const (
	// VertexStride is number of float32 per vertex (pos.xyz + uv)
	VertexStride = 5
	// UVOffset is the float offset of the texture coordinate inside a vertex
	UVOffset = 3

	VerticesPerFace = 4
	IndicesPerFace  = 6
)

var (
	ErrVertexStride = errors.New("meshing: vertex data is not a multiple of the vertex stride")
	ErrIndexCount   = errors.New("meshing: index count is not a multiple of a face")
	ErrIndexRange   = errors.New("meshing: index references a missing vertex")
)

type corner struct {
	x, y, z float32
	u, v    float32
}

// Two index patterns; which one a face uses decides its winding. Both give
// counter-clockwise triangles seen from outside the block for the face they are assigned to.
var (
	windNegative = [IndicesPerFace]uint32{0, 3, 2, 0, 2, 1}
	windPositive = [IndicesPerFace]uint32{0, 1, 2, 0, 2, 3}
)

type faceGeometry struct {
	corners [VerticesPerFace]corner
	indices [IndicesPerFace]uint32
}

var faceTable = [6]faceGeometry{
	FaceFront: {
		corners: [4]corner{{0, 0, 0, 0, 0}, {1, 0, 0, 1, 0}, {1, 1, 0, 1, 1}, {0, 1, 0, 0, 1}},
		indices: windNegative,
	},
	FaceBack: {
		corners: [4]corner{{0, 0, 1, 1, 0}, {1, 0, 1, 0, 0}, {1, 1, 1, 0, 1}, {0, 1, 1, 1, 1}},
		indices: windPositive,
	},
	FaceTop: {
		corners: [4]corner{{0, 1, 0, 0, 0}, {1, 1, 0, 1, 0}, {1, 1, 1, 1, 1}, {0, 1, 1, 0, 1}},
		indices: windNegative,
	},
	FaceBottom: {
		corners: [4]corner{{0, 0, 0, 0, 0}, {1, 0, 0, 1, 0}, {1, 0, 1, 1, 1}, {0, 0, 1, 0, 1}},
		indices: windPositive,
	},
	FaceLeft: {
		corners: [4]corner{{0, 0, 0, 1, 0}, {0, 1, 0, 1, 1}, {0, 1, 1, 0, 1}, {0, 0, 1, 0, 0}},
		indices: windNegative,
	},
	FaceRight: {
		corners: [4]corner{{1, 0, 0, 0, 0}, {1, 1, 0, 0, 1}, {1, 1, 1, 1, 1}, {1, 0, 1, 1, 0}},
		indices: windPositive,
	},
}

// Mesh is an indexed triangle list with interleaved pos+uv vertices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// NewMesh returns a mesh with room for faceHint faces.
func NewMesh(faceHint int) *Mesh {
	if faceHint < 0 {
		faceHint = 0
	}
	return &Mesh{
		Vertices: make([]float32, 0, faceHint*VerticesPerFace*VertexStride),
		Indices:  make([]uint32, 0, faceHint*IndicesPerFace),
	}
}

// Reset empties the mesh but keeps its buffers.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// VertexCount returns the number of whole vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// FaceCount returns the number of emitted quads.
func (m *Mesh) FaceCount() int {
	return len(m.Indices) / IndicesPerFace
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// AddFace appends the quad for face f of the unit block whose minimum corner is (x, y, z).
// Indices continue from the current vertex count.
func (m *Mesh) AddFace(x, y, z float32, f Face) {
	if f < FaceFront || f > FaceRight {
		return
	}
	geom := &faceTable[f]
	base := uint32(m.VertexCount())
	for _, c := range geom.corners {
		m.Vertices = append(m.Vertices, x+c.x, y+c.y, z+c.z, c.u, c.v)
	}
	for _, i := range geom.indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Validate checks that the buffers can be uploaded as an indexed triangle list.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%VertexStride != 0 {
		return fmt.Errorf("%w: %d floats", ErrVertexStride, len(m.Vertices))
	}
	if len(m.Indices)%IndicesPerFace != 0 {
		return fmt.Errorf("%w: %d indices", ErrIndexCount, len(m.Indices))
	}
	count := uint32(m.VertexCount())
	for _, i := range m.Indices {
		if i >= count {
			return fmt.Errorf("%w: index %d, %d vertices", ErrIndexRange, i, count)
		}
	}
	return nil
}
