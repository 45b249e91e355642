package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the TOML configuration of the demo. Missing keys keep their
// Default values.
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	World  WorldConfig  `toml:"world"`
	Assets AssetsConfig `toml:"assets"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Title    string `toml:"title"`
	VSync    bool   `toml:"vsync"`
	FPSLimit int    `toml:"fps_limit" comment:"0 disables the limiter"`
}

type CameraConfig struct {
	FOV         float32 `toml:"fov" comment:"vertical field of view in degrees"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	Speed       float32 `toml:"speed" comment:"blocks per second"`
	Sensitivity float32 `toml:"sensitivity" comment:"degrees per pixel of mouse motion"`
	Boost       float32 `toml:"boost" comment:"speed multiplier while boost is held"`
}

type WorldConfig struct {
	ChunkSize    int    `toml:"chunk_size"`
	Width        int    `toml:"width" comment:"chunks kept loaded along X"`
	Height       int    `toml:"height"`
	Depth        int    `toml:"depth"`
	Generator    string `toml:"generator" comment:"horizon or noise"`
	Seed         int64  `toml:"seed"`
	FollowY      bool   `toml:"follow_y"`
	DeferUpload  bool   `toml:"defer_upload"`
	UploadBudget int    `toml:"upload_budget" comment:"chunks uploaded per frame when defer_upload is set, 0 uploads all"`
	CullSeams    bool   `toml:"cull_seams"`
}

type AssetsConfig struct {
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	Texture        string `toml:"texture" comment:"empty selects a procedural checker"`
}

type LogConfig struct {
	Level string `toml:"level" comment:"debug, info, warn or error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			Title:    "mini-voxel",
			VSync:    true,
			FPSLimit: 0,
		},
		Camera: CameraConfig{
			FOV:         70,
			Near:        0.03,
			Far:         1000,
			Speed:       5,
			Sensitivity: 0.3,
			Boost:       10,
		},
		World: WorldConfig{
			ChunkSize:    16,
			Width:        4,
			Height:       2,
			Depth:        4,
			Generator:    "horizon",
			UploadBudget: 4,
		},
		Assets: AssetsConfig{
			VertexShader:   filepath.Join("assets", "shaders", "chunk.vert"),
			FragmentShader: filepath.Join("assets", "shaders", "chunk.frag"),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(contents, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, keeping values for absent keys, and validates the result.
func Decode(contents []byte, cfg *Config) error {
	if len(bytes.TrimSpace(contents)) != 0 {
		if err := toml.Unmarshal(contents, cfg); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	}
	return cfg.Validate()
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Encode writes cfg as TOML in declaration order.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Order(toml.OrderPreserve).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate rejects values the demo cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, c.Window.FPSLimit)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.Speed < 0 || c.Camera.Boost < 0:
		return fmt.Errorf("%w: camera speed %v boost %v", ErrInvalid, c.Camera.Speed, c.Camera.Boost)
	case c.World.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk_size %d", ErrInvalid, c.World.ChunkSize)
	case c.World.Width <= 0 || c.World.Height <= 0 || c.World.Depth <= 0:
		return fmt.Errorf("%w: world window %dx%dx%d", ErrInvalid, c.World.Width, c.World.Height, c.World.Depth)
	case c.World.UploadBudget < 0:
		return fmt.Errorf("%w: upload_budget %d", ErrInvalid, c.World.UploadBudget)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}

// Logger builds a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
