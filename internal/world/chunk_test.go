package world

import (
	"errors"
	"testing"

	"mini-voxel/internal/meshing"
)

const testChunkSize = 4

func TestIsolatedBlockAllFacesVisible(t *testing.T) {
	c := NewChunk(0, 0, 0, testChunkSize)
	c.UpdateBlocks(singleCell(1, 1, 1))

	b := c.Block(1, 1, 1)
	if b == nil {
		t.Fatalf("Expected block at 1,1,1")
	}
	if b.X != 1 || b.Y != 1 || b.Z != 1 {
		t.Errorf("Expected world coords 1,1,1, got %d,%d,%d", b.X, b.Y, b.Z)
	}
	if n := b.VisibleFaces(); n != 6 {
		t.Errorf("Expected 6 visible faces, got %d", n)
	}

	loader := &fakeLoader{}
	if err := c.GenModel(loader, true); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if got := c.Mesh().VertexCount(); got != 24 {
		t.Errorf("Expected 24 vertices, got %d", got)
	}
	if got := len(c.Mesh().Indices); got != 36 {
		t.Errorf("Expected 36 indices, got %d", got)
	}
	if c.Model() == nil || c.Model().IndexCount() != 36 {
		t.Errorf("Expected uploaded model with 36 indices")
	}
	if c.IsDirty() || c.IsPending() {
		t.Errorf("Expected clean chunk after synchronous GenModel")
	}
}

func TestBuriedBlockHasNoVisibleFaces(t *testing.T) {
	// 3x3x3 cube in the corner of the chunk; its centre is fully enclosed
	cube := GeneratorFunc(func(x, y, z int) bool {
		return x >= 0 && x < 3 && y >= 0 && y < 3 && z >= 0 && z < 3
	})
	c := NewChunk(0, 0, 0, testChunkSize)
	c.UpdateBlocks(cube)

	if n := c.Block(1, 1, 1).VisibleFaces(); n != 0 {
		t.Errorf("Expected buried block to have 0 visible faces, got %d", n)
	}
	if err := c.GenModel(nil, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	// only the outer shell of the cube is emitted
	if got := c.Mesh().FaceCount(); got != 6*9 {
		t.Errorf("Expected %d faces, got %d", 6*9, got)
	}
}

func TestBoundaryFacesAlwaysVisible(t *testing.T) {
	c := NewChunk(0, 0, 0, testChunkSize)
	c.UpdateBlocks(solidEverywhere)

	last := testChunkSize - 1
	for i := 0; i < testChunkSize; i++ {
		for j := 0; j < testChunkSize; j++ {
			for k := 0; k < testChunkSize; k++ {
				b := c.Block(i, j, k)
				want := map[meshing.Face]bool{
					meshing.FaceLeft:   i == 0,
					meshing.FaceRight:  i == last,
					meshing.FaceBottom: j == 0,
					meshing.FaceTop:    j == last,
					meshing.FaceFront:  k == 0,
					meshing.FaceBack:   k == last,
				}
				for f, v := range want {
					if b.Visible(f) != v {
						t.Fatalf("block %d,%d,%d face %s: got %v, want %v", i, j, k, f, b.Visible(f), v)
					}
				}
			}
		}
	}

	if err := c.GenModel(nil, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	want := 6 * testChunkSize * testChunkSize
	if got := c.Mesh().FaceCount(); got != want {
		t.Errorf("Expected %d faces, got %d", want, got)
	}
}

func TestHorizonChunks(t *testing.T) {
	gen := HorizonGenerator{}

	above := NewChunk(0, 0, 0, testChunkSize)
	above.UpdateBlocks(gen)
	if n := above.SolidCount(); n != 0 {
		t.Errorf("Expected empty chunk above the horizon, got %d solid cells", n)
	}
	loader := &fakeLoader{}
	if err := above.GenModel(loader, true); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if !above.Mesh().Empty() || above.Mesh().VertexCount() != 0 {
		t.Errorf("Expected empty mesh")
	}
	if above.Model() == nil || above.Model().IndexCount() != 0 {
		t.Errorf("Expected a zero-element model for an empty chunk")
	}

	below := NewChunk(0, -1, 0, testChunkSize)
	below.UpdateBlocks(gen)
	if n := below.SolidCount(); n != 64 {
		t.Errorf("Expected 64 solid cells, got %d", n)
	}
	if b := below.Block(0, 0, 0); b.Y != -4 {
		t.Errorf("Expected bottom row at world Y -4, got %d", b.Y)
	}
	if b := below.Block(1, 3, 1); !b.Top || b.Bottom || b.Left || b.Right || b.Front || b.Back {
		t.Errorf("Expected only the top face of 1,3,1 visible, got %+v", *b)
	}
	if b := below.Block(1, 0, 1); !b.Bottom || b.Top {
		t.Errorf("Expected bottom face of 1,0,1 visible, got %+v", *b)
	}
	if n := below.Block(1, 1, 1).VisibleFaces(); n != 0 {
		t.Errorf("Expected interior block hidden, got %d faces", n)
	}
}

func TestNeighborLookupCullsSeams(t *testing.T) {
	gen := HorizonGenerator{}
	c := NewChunk(0, -1, 0, testChunkSize)
	c.SetNeighborLookup(func(x, y, z int) (bool, bool) {
		return gen.Solid(x, y, z), true
	})
	c.UpdateBlocks(gen)
	if err := c.GenModel(nil, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	// only the top layer borders air
	if got := c.Mesh().FaceCount(); got != testChunkSize*testChunkSize {
		t.Errorf("Expected %d faces, got %d", testChunkSize*testChunkSize, got)
	}

	unknown := NewChunk(0, -1, 0, testChunkSize)
	unknown.SetNeighborLookup(func(_, _, _ int) (bool, bool) { return true, false })
	unknown.UpdateBlocks(gen)
	if b := unknown.Block(0, 1, 1); !b.Left {
		t.Errorf("Expected unknown neighbour to leave face visible")
	}
}

func TestSetSolidRefreshesNeighbors(t *testing.T) {
	c := NewChunk(0, 0, 0, testChunkSize)
	c.UpdateBlocks(HorizonGenerator{})
	if err := c.GenModel(nil, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if c.IsDirty() {
		t.Fatalf("Expected clean chunk")
	}

	c.SetSolid(1, 1, 1, true)
	c.SetSolid(2, 1, 1, true)
	if !c.IsDirty() {
		t.Errorf("Expected dirty chunk after SetSolid")
	}
	if c.Block(1, 1, 1).Right {
		t.Errorf("Expected shared face hidden on 1,1,1")
	}
	if c.Block(2, 1, 1).Left {
		t.Errorf("Expected shared face hidden on 2,1,1")
	}
	if err := c.GenModel(nil, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if got := c.Mesh().FaceCount(); got != 10 {
		t.Errorf("Expected 10 faces, got %d", got)
	}

	c.SetSolid(2, 1, 1, false)
	if !c.Block(1, 1, 1).Right {
		t.Errorf("Expected face exposed again after removal")
	}
	if c.SetSolid(testChunkSize, 0, 0, true) {
		t.Errorf("Expected out of range SetSolid to fail")
	}
}

func TestDeferredGenModel(t *testing.T) {
	c := NewChunk(0, -1, 0, testChunkSize)
	c.UpdateBlocks(HorizonGenerator{})
	loader := &fakeLoader{}

	if err := c.GenModel(loader, false); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if !c.IsPending() || c.Model() != nil || len(loader.loaded) != 0 {
		t.Fatalf("Expected pending chunk without a model")
	}
	if err := c.Upload(nil); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Expected ErrNoLoader, got %v", err)
	}
	if err := c.Upload(loader); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if c.IsPending() || c.Model() == nil {
		t.Errorf("Expected uploaded chunk")
	}
}

func TestUploadReplacesModel(t *testing.T) {
	c := NewChunk(0, -1, 0, testChunkSize)
	c.UpdateBlocks(HorizonGenerator{})
	loader := &fakeLoader{}
	if err := c.GenModel(loader, true); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if err := c.GenModel(loader, true); err != nil {
		t.Fatalf("GenModel: %v", err)
	}
	if len(loader.loaded) != 2 {
		t.Fatalf("Expected 2 uploads, got %d", len(loader.loaded))
	}
	if !loader.loaded[0].deleted || loader.loaded[1].deleted {
		t.Errorf("Expected only the first model deleted")
	}

	c.Release()
	if !loader.loaded[1].deleted || c.Model() != nil {
		t.Errorf("Expected Release to delete the current model")
	}
}

func TestUploadErrorKeepsPending(t *testing.T) {
	boom := errors.New("boom")
	c := NewChunk(0, -1, 0, testChunkSize)
	c.UpdateBlocks(HorizonGenerator{})
	if err := c.GenModel(&fakeLoader{err: boom}, true); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped loader error, got %v", err)
	}
	if c.Model() != nil {
		t.Errorf("Expected no model after failed upload")
	}
	if !c.IsPending() {
		t.Errorf("Expected chunk left pending for a retry")
	}
	if err := c.Upload(&fakeLoader{}); err != nil || c.IsPending() {
		t.Errorf("Expected retry to succeed, got %v", err)
	}
}

func TestMeshIndexConsistency(t *testing.T) {
	// pseudo-random occupancy
	gen := GeneratorFunc(func(x, y, z int) bool {
		h := uint32(x*73856093) ^ uint32(y*19349663) ^ uint32(z*83492791)
		return h%3 == 0
	})
	for _, coord := range []ChunkCoord{{0, 0, 0}, {-1, 2, 5}, {3, -4, -2}} {
		c := NewChunk(coord.X, coord.Y, coord.Z, 8)
		c.UpdateBlocks(gen)
		if err := c.GenModel(nil, false); err != nil {
			t.Fatalf("GenModel: %v", err)
		}
		m := c.Mesh()
		if err := m.Validate(); err != nil {
			t.Errorf("chunk %v: %v", coord, err)
		}
		faces := 0
		c.blocks.Each(func(_, _, _ int, b *Block) {
			if b != nil {
				faces += b.VisibleFaces()
			}
		})
		if m.FaceCount() != faces {
			t.Errorf("chunk %v: Expected %d faces, got %d", coord, faces, m.FaceCount())
		}
	}
}

func BenchmarkChunkRegenerate(b *testing.B) {
	gen := NewNoiseGenerator(1)
	c := NewChunk(0, 0, 0, DefaultChunkSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.UpdateBlocks(gen)
		_ = c.GenModel(nil, false)
	}
}
