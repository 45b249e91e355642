package game

import (
	"log/slog"

	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/world"
)

// loadChunkModel uploads a chunk mesh. A failed upload must not produce a
// non-nil interface around a nil model.
func loadChunkModel(vertices []float32, indices []uint32) (world.Model, error) {
	m, err := graphics.LoadModel(vertices, indices)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// worldOptions translates the [world] section into world.Options.
func worldOptions(cfg config.WorldConfig, loader world.ModelLoader, log *slog.Logger) (world.Options, error) {
	gen, err := world.NewGenerator(cfg.Generator, cfg.Seed)
	if err != nil {
		return world.Options{}, err
	}
	return world.Options{
		ChunkSize:   cfg.ChunkSize,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Depth:       cfg.Depth,
		Generator:   gen,
		Loader:      loader,
		Log:         log.With("component", "world"),
		FollowY:     cfg.FollowY,
		DeferUpload: cfg.DeferUpload,
		CullSeams:   cfg.CullSeams,
	}, nil
}
