package game

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/graphics/renderables/chunks"
	"mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/input"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// slowFrame is the processing time above which a frame is logged with its top timings.
const slowFrame = 16 * time.Millisecond

var spawn = mgl32.Vec3{0, 2, 0}

// App owns the window and everything drawn into it.
type App struct {
	window *glfw.Window
	input  *input.InputManager
	cfg    config.Config
	log    *slog.Logger

	camera   *graphics.Camera
	fly      FlyController
	world    *world.World
	textures *graphics.TextureCache
	renderer *renderer.Renderer

	limiter  *FPSLimiter
	counter  FrameCounter
	lastTime time.Time
}

// NewApp builds the camera, the chunk window and the renderer. The window's
// GL context must be current.
func NewApp(window *glfw.Window, cfg config.Config, log *slog.Logger) (*App, error) {
	width, height := window.GetFramebufferSize()
	cam := graphics.NewCamera(width, height, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	cam.SetPosition(spawn)

	opts, err := worldOptions(cfg.World, world.ModelLoaderFunc(loadChunkModel), log)
	if err != nil {
		return nil, err
	}
	w, err := world.New(opts)
	if err != nil {
		return nil, err
	}

	textures := graphics.NewTextureCache()
	r, err := renderer.NewRenderer(cam,
		chunks.NewChunks(cfg.Assets.VertexShader, cfg.Assets.FragmentShader, cfg.Assets.Texture, textures),
	)
	if err != nil {
		w.Close()
		textures.Delete()
		return nil, err
	}
	r.UpdateViewport(width, height)

	a := &App{
		window:   window,
		input:    input.NewInputManager(),
		cfg:      cfg,
		log:      log,
		camera:   cam,
		fly:      NewFlyController(cfg.Camera),
		world:    w,
		textures: textures,
		renderer: r,
		limiter:  NewFPSLimiter(cfg.Window.FPSLimit),
		lastTime: time.Now(),
	}
	a.setCallbacks()
	// the spawn point may already lie outside chunk (0,0,0) on a followed axis
	w.UpdatePos(spawn.X(), spawn.Y(), spawn.Z())

	log.Info("world ready",
		"chunks", fmt.Sprintf("%dx%dx%d", cfg.World.Width, cfg.World.Height, cfg.World.Depth),
		"chunk_size", cfg.World.ChunkSize,
		"generator", cfg.World.Generator,
		"pending", w.PendingCount())
	return a, nil
}

func (a *App) setCallbacks() {
	a.input.SetCallbacks(a.window)
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
	})
}

// Run drives frames until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()
	a.handleActions()

	a.fly.Update(a.camera, a.input, dt)
	pos := a.camera.Position()
	a.world.UpdatePos(pos.X(), pos.Y(), pos.Z())
	// deferred chunks, and retries of failed immediate uploads
	a.world.FlushPending(a.cfg.World.UploadBudget)

	a.renderer.Render(a.world, dt)

	if took := time.Since(start); took > slowFrame {
		a.log.Warn("slow frame", "took", took, "top", profiling.TopN(5))
	}
	a.window.SwapBuffers()
	a.input.PostUpdate()

	if a.counter.Tick(time.Now()) {
		a.updateTitle()
	}
	a.limiter.Wait()
}

func (a *App) handleActions() {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionToggleCursor) {
		mode := glfw.CursorDisabled
		if a.window.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled {
			mode = glfw.CursorNormal
		}
		a.window.SetInputMode(glfw.CursorMode, mode)
		a.input.ResetCursor()
	}
}

func (a *App) updateTitle() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	a.window.SetTitle(windowTitle(a.cfg.Window.Title, a.counter.FPS(), &mem))

	st := a.world.Stats()
	a.log.Debug("frame stats",
		"fps", a.counter.FPS(),
		"pos", a.world.Pos(),
		"generated", st.Generated,
		"released", st.Released,
		"shifts", st.Shifts,
		"jumps", st.Jumps,
		"pending", a.world.PendingCount())
}

// Close releases GPU resources in reverse order of creation.
func (a *App) Close() {
	a.renderer.Dispose()
	a.world.Close()
	a.textures.Delete()
}
