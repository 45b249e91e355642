package chunks

import (
	"fmt"

	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"
)

const samplerUniform = "blockTexture"

// Chunks draws the world's chunk window with one shader and one texture.
type Chunks struct {
	vertexPath   string
	fragmentPath string
	texturePath  string

	textures *graphics.TextureCache
	shader   *graphics.Shader
	texture  *graphics.Texture
}

// NewChunks creates the renderable. An empty texturePath selects the
// procedural checker.
func NewChunks(vertexPath, fragmentPath, texturePath string, textures *graphics.TextureCache) *Chunks {
	return &Chunks{
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		texturePath:  texturePath,
		textures:     textures,
	}
}

func (c *Chunks) Init() error {
	shader, err := graphics.NewShader(c.vertexPath, c.fragmentPath)
	if err != nil {
		return fmt.Errorf("chunk shader: %w", err)
	}
	tex, err := c.textures.Get(c.texturePath)
	if err != nil {
		shader.Delete()
		return fmt.Errorf("chunk texture: %w", err)
	}
	c.shader = shader
	c.texture = tex

	c.shader.Bind()
	c.shader.SetInt(samplerUniform, 0)
	return nil
}

func (c *Chunks) Render(ctx renderer.RenderContext) {
	if ctx.World == nil {
		return
	}
	defer profiling.Track("chunks.Render")()

	c.shader.Bind()
	c.texture.Bind(0)
	ctx.World.Render(c.shader, ctx.Camera)
}

// Dispose frees the shader. Textures belong to the cache.
func (c *Chunks) Dispose() {
	if c.shader != nil {
		c.shader.Delete()
		c.shader = nil
	}
}

func (c *Chunks) SetViewport(width, height int) {}
