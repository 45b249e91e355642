package renderer

import (
	"fmt"

	"mini-voxel/internal/graphics"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ClearColor is the sky colour behind the chunks.
var ClearColor = [3]float32{0.1, 0.7, 1.0}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state and initialises every renderable in order.
// A GL context must be current.
func NewRenderer(camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], 1.0)

	r := &Renderer{camera: camera}
	for _, rd := range rs {
		if err := rd.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init renderable %T: %w", rd, err)
		}
		r.renderables = append(r.renderables, rd)
	}
	return r, nil
}

// Render clears the frame and draws all features
func (r *Renderer) Render(w *world.World, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		World:  w,
		DT:     dt,
	}
	for _, rd := range r.renderables {
		rd.Render(ctx)
	}
}

// Dispose cleans up all initialised renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// UpdateViewport resizes the GL viewport and notifies the camera and renderables
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rd := range r.renderables {
		rd.SetViewport(width, height)
	}
}
