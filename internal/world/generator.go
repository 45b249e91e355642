package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownGenerator is returned by NewGenerator for an unrecognised name.
var ErrUnknownGenerator = errors.New("world: unknown generator")

// Generator decides the occupancy of a world cell. Implementations must be
// deterministic: the same coordinates always produce the same answer.
type Generator interface {
	Solid(x, y, z int) bool
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(x, y, z int) bool

func (f GeneratorFunc) Solid(x, y, z int) bool {
	return f(x, y, z)
}

// HorizonGenerator makes every cell below Level solid.
type HorizonGenerator struct {
	Level int
}

func (g HorizonGenerator) Solid(_, y, _ int) bool {
	return y < g.Level
}

// NoiseGenerator fills columns up to an opensimplex heightmap.
type NoiseGenerator struct {
	noise       opensimplex.Noise
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewNoiseGenerator creates a heightmap generator with default settings.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		noise:       opensimplex.New(seed),
		scale:       1.0 / 48.0,
		baseHeight:  0,
		amp:         8,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// HeightAt returns the first empty Y of the column at world X,Z.
func (g *NoiseGenerator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	amplitude := 1.0
	total := 0.0
	norm := 0.0
	for i := 0; i < g.octaves; i++ {
		total += g.noise.Eval2(x, z) * amplitude
		norm += amplitude
		x *= g.lacunarity
		z *= g.lacunarity
		amplitude *= g.persistence
	}
	if norm > 0 {
		total /= norm
	}
	return g.baseHeight + int(math.Floor(total*g.amp))
}

func (g *NoiseGenerator) Solid(x, y, z int) bool {
	return y < g.HeightAt(x, z)
}

// NewGenerator builds a generator by name ("horizon" or "noise").
func NewGenerator(name string, seed int64) (Generator, error) {
	switch name {
	case "", "horizon":
		return HorizonGenerator{}, nil
	case "noise":
		return NewNoiseGenerator(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}
