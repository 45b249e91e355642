package world

import "mini-voxel/internal/meshing"

// Block is a solid cell and the faces of it that border empty space.
// X, Y, Z are world coordinates in block units.
type Block struct {
	X, Y, Z int

	Front, Back, Top, Bottom, Left, Right bool
}

// NewBlock creates a block with every face hidden.
func NewBlock(x, y, z int) *Block {
	return &Block{X: x, Y: y, Z: z}
}

// Visible reports whether face f must be rendered.
func (b *Block) Visible(f meshing.Face) bool {
	switch f {
	case meshing.FaceFront:
		return b.Front
	case meshing.FaceBack:
		return b.Back
	case meshing.FaceTop:
		return b.Top
	case meshing.FaceBottom:
		return b.Bottom
	case meshing.FaceLeft:
		return b.Left
	case meshing.FaceRight:
		return b.Right
	}
	return false
}

// SetVisible sets the flag for face f.
func (b *Block) SetVisible(f meshing.Face, v bool) {
	switch f {
	case meshing.FaceFront:
		b.Front = v
	case meshing.FaceBack:
		b.Back = v
	case meshing.FaceTop:
		b.Top = v
	case meshing.FaceBottom:
		b.Bottom = v
	case meshing.FaceLeft:
		b.Left = v
	case meshing.FaceRight:
		b.Right = v
	}
}

// VisibleFaces counts the faces that must be rendered.
func (b *Block) VisibleFaces() int {
	n := 0
	for _, f := range meshing.AllFaces {
		if b.Visible(f) {
			n++
		}
	}
	return n
}
