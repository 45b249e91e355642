package world

import (
	"errors"
	"fmt"

	"mini-voxel/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultChunkSize is the edge length of a chunk in blocks.
const DefaultChunkSize = 16

// ErrNoLoader is returned when a chunk upload is requested without a ModelLoader.
var ErrNoLoader = errors.New("world: no model loader")

// NeighborLookup reports the occupancy of a world cell outside a chunk.
// ok is false when the cell is unknown; the face is then treated as visible.
type NeighborLookup func(x, y, z int) (solid, ok bool)

// Chunk is a cube of size^3 cells and the mesh of its visible faces.
type Chunk struct {
	X, Y, Z int

	size      int
	blocks    *Grid[*Block]
	neighbors NeighborLookup

	mesh      *meshing.Mesh
	model     Model
	transform mgl32.Mat4

	// dirty: occupancy changed since the mesh was built
	dirty bool
	// pending: mesh built, GPU upload deferred
	pending bool
}

// NewChunk creates an empty chunk at the specified chunk coordinates.
func NewChunk(x, y, z, size int) *Chunk {
	return &Chunk{
		X:         x,
		Y:         y,
		Z:         z,
		size:      size,
		blocks:    NewGrid[*Block](size, size, size),
		mesh:      meshing.NewMesh(0),
		transform: mgl32.Ident4(),
		dirty:     true,
	}
}

// Coord returns the chunk coordinates.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Y: c.Y, Z: c.Z}
}

// Size returns the edge length in blocks.
func (c *Chunk) Size() int {
	return c.size
}

// origin returns the world coordinates of local cell (0,0,0).
func (c *Chunk) origin() (int, int, int) {
	return c.X * c.size, c.Y * c.size, c.Z * c.size
}

// SetNeighborLookup installs the occupancy source used for cells across the chunk border.
func (c *Chunk) SetNeighborLookup(fn NeighborLookup) {
	c.neighbors = fn
}

// UpdateBlocks fills the chunk from gen and recomputes face visibility.
func (c *Chunk) UpdateBlocks(gen Generator) {
	ox, oy, oz := c.origin()
	for i := 0; i < c.size; i++ {
		for j := 0; j < c.size; j++ {
			for k := 0; k < c.size; k++ {
				var b *Block
				if gen.Solid(ox+i, oy+j, oz+k) {
					b = NewBlock(ox+i, oy+j, oz+k)
				}
				c.blocks.Set(i, j, k, b)
			}
		}
	}
	c.UpdateFaces()
}

// UpdateFaces recomputes the visibility flags of every block.
func (c *Chunk) UpdateFaces() {
	c.blocks.Each(func(i, j, k int, b *Block) {
		c.refreshBlock(b, i, j, k)
	})
	c.dirty = true
}

func (c *Chunk) refreshBlock(b *Block, i, j, k int) {
	if b == nil {
		return
	}
	for _, f := range meshing.AllFaces {
		dx, dy, dz := f.Normal()
		b.SetVisible(f, c.emptyAt(i+dx, j+dy, k+dz))
	}
}

// emptyAt reports whether the local cell is empty. Cells outside the chunk
// are empty unless the neighbour lookup knows better.
func (c *Chunk) emptyAt(i, j, k int) bool {
	if c.blocks.InBounds(i, j, k) {
		return c.blocks.At(i, j, k) == nil
	}
	if c.neighbors != nil {
		ox, oy, oz := c.origin()
		if solid, ok := c.neighbors(ox+i, oy+j, oz+k); ok {
			return !solid
		}
	}
	return true
}

// Block returns the block at local coordinates, or nil for an empty or out of range cell.
func (c *Chunk) Block(i, j, k int) *Block {
	return c.blocks.At(i, j, k)
}

// IsSolid reports whether the local cell is occupied.
func (c *Chunk) IsSolid(i, j, k int) bool {
	return c.blocks.At(i, j, k) != nil
}

// SetSolid changes the occupancy of a local cell and refreshes the flags of it
// and its neighbours. The mesh is stale until the next GenModel.
func (c *Chunk) SetSolid(i, j, k int, solid bool) bool {
	if !c.blocks.InBounds(i, j, k) {
		return false
	}
	if c.IsSolid(i, j, k) == solid {
		return true
	}
	var b *Block
	if solid {
		ox, oy, oz := c.origin()
		b = NewBlock(ox+i, oy+j, oz+k)
	}
	c.blocks.Set(i, j, k, b)
	c.refreshBlock(b, i, j, k)
	for _, f := range meshing.AllFaces {
		dx, dy, dz := f.Normal()
		c.refreshBlock(c.blocks.At(i+dx, j+dy, k+dz), i+dx, j+dy, k+dz)
	}
	c.dirty = true
	return true
}

// SolidCount returns the number of occupied cells.
func (c *Chunk) SolidCount() int {
	n := 0
	c.blocks.Each(func(_, _, _ int, b *Block) {
		if b != nil {
			n++
		}
	})
	return n
}

// GenModel rebuilds the mesh from the visible faces. With now set the mesh is
// uploaded immediately; otherwise, or if that upload fails, the chunk stays
// pending until Upload succeeds.
func (c *Chunk) GenModel(loader ModelLoader, now bool) error {
	c.buildMesh()
	c.dirty = false
	c.pending = true
	if !now {
		return nil
	}
	return c.Upload(loader)
}

func (c *Chunk) buildMesh() {
	c.mesh.Reset()
	c.blocks.Each(func(_, _, _ int, b *Block) {
		if b == nil {
			return
		}
		x, y, z := float32(b.X), float32(b.Y), float32(b.Z)
		for _, f := range meshing.AllFaces {
			if b.Visible(f) {
				c.mesh.AddFace(x, y, z, f)
			}
		}
	})
}

// Upload hands the current mesh to loader, replacing any previous model.
func (c *Chunk) Upload(loader ModelLoader) error {
	if loader == nil {
		return ErrNoLoader
	}
	model, err := loader.Load(c.mesh.Vertices, c.mesh.Indices)
	if err != nil {
		return fmt.Errorf("upload chunk %v: %w", c.Coord(), err)
	}
	c.Release()
	c.model = model
	c.pending = false
	return nil
}

// Release frees the GPU model. The CPU mesh is kept.
func (c *Chunk) Release() {
	if c.model != nil {
		c.model.Delete()
		c.model = nil
	}
}

// Mesh returns the CPU-side mesh.
func (c *Chunk) Mesh() *meshing.Mesh {
	return c.mesh
}

// Model returns the uploaded model, nil before the first upload.
func (c *Chunk) Model() Model {
	return c.model
}

// ModelMatrix returns the chunk transform. Vertices are already in world space.
func (c *Chunk) ModelMatrix() mgl32.Mat4 {
	return c.transform
}

// IsDirty returns whether occupancy changed since the mesh was built.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// IsPending returns whether the mesh waits for a deferred upload.
func (c *Chunk) IsPending() bool {
	return c.pending
}
