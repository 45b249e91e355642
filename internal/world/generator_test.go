package world

import (
	"errors"
	"testing"
)

func TestGeneratorsImplementInterface(t *testing.T) {
	var _ Generator = HorizonGenerator{}
	var _ Generator = NewNoiseGenerator(123)
	var _ Generator = GeneratorFunc(func(_, _, _ int) bool { return false })
}

func TestHorizonGenerator(t *testing.T) {
	g := HorizonGenerator{}
	if !g.Solid(5, -1, -7) {
		t.Errorf("Expected y=-1 solid")
	}
	if g.Solid(5, 0, -7) {
		t.Errorf("Expected y=0 empty")
	}
	raised := HorizonGenerator{Level: 10}
	if !raised.Solid(0, 9, 0) || raised.Solid(0, 10, 0) {
		t.Errorf("Expected surface at level 10")
	}
}

func TestNoiseGeneratorDeterministic(t *testing.T) {
	a := NewNoiseGenerator(42)
	b := NewNoiseGenerator(42)
	for x := -64; x < 64; x += 7 {
		for z := -64; z < 64; z += 5 {
			if a.HeightAt(x, z) != b.HeightAt(x, z) {
				t.Fatalf("Expected equal heights at %d,%d", x, z)
			}
		}
	}
}

func TestNoiseGeneratorColumnsAreContiguous(t *testing.T) {
	g := NewNoiseGenerator(7)
	for x := -20; x < 20; x += 3 {
		for z := -20; z < 20; z += 3 {
			h := g.HeightAt(x, z)
			if !g.Solid(x, h-1, z) || g.Solid(x, h, z) {
				t.Fatalf("column %d,%d: Expected surface at %d", x, z, h)
			}
			if h < -8 || h > 8 {
				t.Errorf("column %d,%d: height %d outside amplitude", x, z, h)
			}
		}
	}
}

func TestNewGenerator(t *testing.T) {
	if g, err := NewGenerator("horizon", 0); err != nil || g == nil {
		t.Errorf("Expected horizon generator, got %v", err)
	}
	if g, err := NewGenerator("noise", 3); err != nil {
		t.Errorf("Expected noise generator, got %v", err)
	} else if _, ok := g.(*NoiseGenerator); !ok {
		t.Errorf("Expected *NoiseGenerator, got %T", g)
	}
	if _, err := NewGenerator("caves", 0); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("Expected ErrUnknownGenerator, got %v", err)
	}
}
