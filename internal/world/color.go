package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkColor returns a stable debug colour for a chunk coordinate.
func ChunkColor(c ChunkCoord) mgl32.Vec3 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(int64(c.X)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.Z)))
	h := xxhash.Sum64(buf[:])

	r := float32(h>>16&0xff) / 255
	g := float32(h>>8&0xff) / 255
	b := float32(h&0xff) / 255
	return mgl32.Vec3{r, g, b}
}
