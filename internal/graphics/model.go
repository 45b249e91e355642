package graphics

import (
	"fmt"

	"mini-voxel/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Model is an indexed triangle mesh on the GPU.
// Vertex layout: location 0 = vec3 position, location 1 = vec2 uv.
type Model struct {
	vao, vbo, ibo uint32
	count         int32
}

// LoadModel validates the buffers and uploads them to a new VAO.
// Empty buffers produce a model whose Draw does nothing.
func LoadModel(vertices []float32, indices []uint32) (*Model, error) {
	m := &meshing.Mesh{Vertices: vertices, Indices: indices}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	model := &Model{count: int32(len(indices))}
	if model.count == 0 {
		return model, nil
	}

	gl.GenVertexArrays(1, &model.vao)
	gl.BindVertexArray(model.vao)

	gl.GenBuffers(1, &model.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, model.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &model.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, model.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, meshing.UVOffset*4)

	gl.BindVertexArray(0)
	return model, nil
}

// Draw issues one indexed draw call.
func (m *Model) Draw() {
	if m.count == 0 || m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

// Delete frees the GPU buffers. Safe to call more than once.
func (m *Model) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
	m.vao, m.vbo, m.ibo, m.count = 0, 0, 0, 0
}

func (m *Model) IndexCount() int {
	return int(m.count)
}
