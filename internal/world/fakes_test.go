package world

import (
	"io"
	"log/slog"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeModel struct {
	indices int
	draws   int
	deleted bool
}

func (m *fakeModel) Draw()           { m.draws++ }
func (m *fakeModel) Delete()         { m.deleted = true }
func (m *fakeModel) IndexCount() int { return m.indices }

type fakeLoader struct {
	loaded []*fakeModel
	err    error
}

func (l *fakeLoader) Load(vertices []float32, indices []uint32) (Model, error) {
	if l.err != nil {
		return nil, l.err
	}
	m := &fakeModel{indices: len(indices)}
	l.loaded = append(l.loaded, m)
	return m, nil
}

type fakeUniforms struct {
	colors []mgl32.Vec3
	mvps   []mgl32.Mat4
}

func (u *fakeUniforms) SetVector3(name string, x, y, z float32) {
	if name == UniformColor {
		u.colors = append(u.colors, mgl32.Vec3{x, y, z})
	}
}

func (u *fakeUniforms) SetMatrix4(name string, value *float32) {
	if name != UniformMVP {
		return
	}
	var m mgl32.Mat4
	copy(m[:], unsafe.Slice(value, 16))
	u.mvps = append(u.mvps, m)
}

type fixedCamera struct {
	viewProj mgl32.Mat4
}

func (c fixedCamera) ViewProjection() mgl32.Mat4 {
	return c.viewProj
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// singleCell is solid only at the given world coordinates.
func singleCell(x, y, z int) Generator {
	return GeneratorFunc(func(cx, cy, cz int) bool {
		return cx == x && cy == y && cz == z
	})
}

var solidEverywhere = GeneratorFunc(func(_, _, _ int) bool { return true })
