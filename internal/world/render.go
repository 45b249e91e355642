package world

import "github.com/go-gl/mathgl/mgl32"

// ChunkCoord identifies a chunk in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// Model is a drawable mesh living on the GPU.
type Model interface {
	Draw()
	Delete()
	IndexCount() int
}

// ModelLoader uploads interleaved pos+uv vertices and triangle indices.
type ModelLoader interface {
	Load(vertices []float32, indices []uint32) (Model, error)
}

// ModelLoaderFunc adapts a function to the ModelLoader interface.
type ModelLoaderFunc func(vertices []float32, indices []uint32) (Model, error)

func (f ModelLoaderFunc) Load(vertices []float32, indices []uint32) (Model, error) {
	return f(vertices, indices)
}

// Uniforms receives per-chunk shader parameters.
type Uniforms interface {
	SetVector3(name string, x, y, z float32)
	SetMatrix4(name string, value *float32)
}

// ViewProjector supplies the camera's combined view-projection matrix.
type ViewProjector interface {
	ViewProjection() mgl32.Mat4
}

// Uniform names used by the chunk shader.
const (
	UniformColor = "color"
	UniformMVP   = "MVP"
)

// Render draws every loaded chunk with its debug colour. No culling is done.
func (w *World) Render(u Uniforms, cam ViewProjector) {
	viewProj := cam.ViewProjection()
	w.chunks.Each(func(_, _, _ int, ch *Chunk) {
		if ch == nil || ch.model == nil {
			return
		}
		col := ChunkColor(ch.Coord())
		u.SetVector3(UniformColor, col.X(), col.Y(), col.Z())
		mvp := viewProj.Mul4(ch.ModelMatrix())
		u.SetMatrix4(UniformMVP, &mvp[0])
		ch.model.Draw()
	})
}
