package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"mini-voxel/internal/profiling"
)

var (
	ErrInvalidChunkSize = errors.New("world: chunk size must be positive")
	ErrInvalidWindow    = errors.New("world: window dimensions must be positive")
)

// Options configures a World.
type Options struct {
	// ChunkSize is the chunk edge length in blocks.
	ChunkSize int
	// Width, Height and Depth are the number of chunks kept loaded along X, Y and Z.
	Width, Height, Depth int
	// Generator decides cell occupancy. Defaults to HorizonGenerator.
	Generator Generator
	// Loader uploads chunk meshes. With a nil Loader meshes are built but never uploaded.
	Loader ModelLoader
	// Log receives streaming diagnostics. Defaults to slog.Default().
	Log *slog.Logger
	// FollowY streams along Y as well; otherwise the viewer's chunk Y stays 0.
	FollowY bool
	// DeferUpload leaves new chunks pending until FlushPending.
	DeferUpload bool
	// CullSeams hides faces against solid cells of neighbouring chunks by asking the generator.
	CullSeams bool
}

// Stats counts streaming work since the world was created.
type Stats struct {
	Generated int
	Released  int
	Shifts    int
	Jumps     int
}

// World keeps a W*H*D window of chunks centred on the viewer's chunk.
type World struct {
	pos       ChunkCoord
	w, h, d   int
	chunkSize int
	chunks    *Grid[*Chunk]

	gen         Generator
	loader      ModelLoader
	log         *slog.Logger
	followY     bool
	deferUpload bool
	cullSeams   bool

	stats Stats
}

// New validates opts and generates the initial window around chunk (0,0,0).
func New(opts Options) (*World, error) {
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, opts.ChunkSize)
	}
	if opts.Width <= 0 || opts.Height <= 0 || opts.Depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidWindow, opts.Width, opts.Height, opts.Depth)
	}
	if opts.Generator == nil {
		opts.Generator = HorizonGenerator{}
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	w := &World{
		w:           opts.Width,
		h:           opts.Height,
		d:           opts.Depth,
		chunkSize:   opts.ChunkSize,
		chunks:      NewGrid[*Chunk](opts.Width, opts.Height, opts.Depth),
		gen:         opts.Generator,
		loader:      opts.Loader,
		log:         opts.Log,
		followY:     opts.FollowY,
		deferUpload: opts.DeferUpload,
		cullSeams:   opts.CullSeams,
	}
	w.generate(w.pos)
	return w, nil
}

// Pos returns the viewer's chunk coordinate the window is centred on.
func (w *World) Pos() ChunkCoord {
	return w.pos
}

// Dims returns the window size in chunks.
func (w *World) Dims() (width, height, depth int) {
	return w.w, w.h, w.d
}

// ChunkSize returns the chunk edge length in blocks.
func (w *World) ChunkSize() int {
	return w.chunkSize
}

// Stats returns the streaming counters.
func (w *World) Stats() Stats {
	return w.stats
}

// ChunkAt returns the chunk in window slot (i, j, k).
func (w *World) ChunkAt(i, j, k int) *Chunk {
	return w.chunks.At(i, j, k)
}

// Chunk returns the loaded chunk with the given coordinates, or nil.
func (w *World) Chunk(c ChunkCoord) *Chunk {
	return w.chunks.At(c.X-w.pos.X+w.w/2, c.Y-w.pos.Y+w.h/2, c.Z-w.pos.Z+w.d/2)
}

// Each visits every window slot.
func (w *World) Each(fn func(i, j, k int, ch *Chunk)) {
	w.chunks.Each(fn)
}

// ChunkCoordAt converts a world position to the chunk coordinate used for streaming.
func (w *World) ChunkCoordAt(x, y, z float32) ChunkCoord {
	s := float64(w.chunkSize)
	c := ChunkCoord{
		X: int(math.Floor(float64(x) / s)),
		Z: int(math.Floor(float64(z) / s)),
	}
	if w.followY {
		c.Y = int(math.Floor(float64(y) / s))
	}
	return c
}

// slotCoord returns the chunk coordinate held by slot (i, j, k) of a window centred on center.
func (w *World) slotCoord(i, j, k int, center ChunkCoord) ChunkCoord {
	return ChunkCoord{
		X: i - w.w/2 + center.X,
		Y: j - w.h/2 + center.Y,
		Z: k - w.d/2 + center.Z,
	}
}

// UpdatePos moves the window to follow the viewer at world position (x, y, z).
// Axes are handled X, then Y, then Z. A move longer than the window along an
// axis regenerates everything; shorter moves shift the window and build only
// the slabs that come into view.
func (w *World) UpdatePos(x, y, z float32) {
	if !finite(x) || !finite(y) || !finite(z) {
		w.log.Warn("ignoring non-finite viewer position", "x", x, "y", y, "z", z)
		return
	}
	next := w.ChunkCoordAt(x, y, z)
	if next == w.pos {
		return
	}
	defer profiling.Track("world.UpdatePos")()

	center := w.pos
	for axis := 0; axis < 3; axis++ {
		delta := axisOf(next, axis) - axisOf(center, axis)
		if delta == 0 {
			continue
		}
		if abs(delta) > w.dim(axis) {
			w.log.Debug("chunk window jump", "from", w.pos, "to", next, "axis", axisNames[axis], "delta", delta)
			w.generate(next)
			w.stats.Jumps++
			break
		}
		center = withAxis(center, axis, axisOf(next, axis))
		w.shift(axis, delta, center)
	}
	w.pos = next
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// generate discards the window and builds every slot around center.
func (w *World) generate(center ChunkCoord) {
	defer profiling.Track("world.generate")()
	w.chunks.Each(func(_, _, _ int, ch *Chunk) {
		if ch != nil {
			w.release(ch)
		}
	})
	next := NewGrid[*Chunk](w.w, w.h, w.d)
	next.Each(func(i, j, k int, _ *Chunk) {
		next.Set(i, j, k, w.spawn(w.slotCoord(i, j, k, center)))
	})
	w.chunks = next
}

// shift moves every chunk delta slots against the direction of travel along
// axis, releases the ones that fall off and fills the exposed slots.
func (w *World) shift(axis, delta int, center ChunkCoord) {
	defer profiling.Track("world.shift")()
	next := NewGrid[*Chunk](w.w, w.h, w.d)
	w.chunks.Each(func(i, j, k int, ch *Chunk) {
		if ch == nil {
			return
		}
		s := [3]int{i, j, k}
		s[axis] -= delta
		if !next.Set(s[0], s[1], s[2], ch) {
			w.release(ch)
		}
	})
	built := 0
	next.Each(func(i, j, k int, ch *Chunk) {
		if ch != nil {
			return
		}
		next.Set(i, j, k, w.spawn(w.slotCoord(i, j, k, center)))
		built++
	})
	w.chunks = next
	w.stats.Shifts++
	w.log.Debug("chunk window shift", "axis", axisNames[axis], "delta", delta, "center", center, "built", built)
}

// spawn creates a chunk and runs occupancy, visibility and meshing.
func (w *World) spawn(c ChunkCoord) *Chunk {
	ch := NewChunk(c.X, c.Y, c.Z, w.chunkSize)
	if w.cullSeams {
		ch.SetNeighborLookup(w.generatedNeighbor)
	}
	ch.UpdateBlocks(w.gen)
	now := !w.deferUpload && w.loader != nil
	if err := ch.GenModel(w.loader, now); err != nil {
		w.log.Error("chunk upload failed", "chunk", c, "err", err)
	}
	w.stats.Generated++
	return ch
}

func (w *World) generatedNeighbor(x, y, z int) (bool, bool) {
	return w.gen.Solid(x, y, z), true
}

func (w *World) release(ch *Chunk) {
	ch.Release()
	w.stats.Released++
}

// FlushPending uploads up to budget pending chunks (all of them when budget <= 0)
// and returns how many were uploaded.
func (w *World) FlushPending(budget int) int {
	if w.loader == nil {
		return 0
	}
	defer profiling.Track("world.FlushPending")()
	n := 0
	w.chunks.Each(func(_, _, _ int, ch *Chunk) {
		if ch == nil || !ch.IsPending() {
			return
		}
		if budget > 0 && n >= budget {
			return
		}
		if err := ch.Upload(w.loader); err != nil {
			w.log.Error("chunk upload failed", "chunk", ch.Coord(), "err", err)
			return
		}
		n++
	})
	return n
}

// PendingCount returns the number of chunks waiting for upload.
func (w *World) PendingCount() int {
	n := 0
	w.chunks.Each(func(_, _, _ int, ch *Chunk) {
		if ch != nil && ch.IsPending() {
			n++
		}
	})
	return n
}

// Close releases every loaded chunk.
func (w *World) Close() {
	w.chunks.Each(func(_, _, _ int, ch *Chunk) {
		if ch != nil {
			w.release(ch)
		}
	})
	w.chunks.Clear()
}

var axisNames = [3]string{"x", "y", "z"}

func (w *World) dim(axis int) int {
	switch axis {
	case 0:
		return w.w
	case 1:
		return w.h
	}
	return w.d
}

func axisOf(c ChunkCoord, axis int) int {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	}
	return c.Z
}

func withAxis(c ChunkCoord, axis, v int) ChunkCoord {
	switch axis {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
