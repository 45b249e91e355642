package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "mini-voxel.toml", "path to the TOML configuration file")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	log, err := cfg.Logger(os.Stderr)
	if err != nil {
		slog.Error("build logger", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	if *writeConfig {
		if err := config.Write(*configPath, cfg); err != nil {
			fatal(log, "write config", err)
		}
		log.Info("config written", "path", *configPath)
		return
	}

	sd := newShutdown()
	closer.Bind(sd.hook)

	if err := glfw.Init(); err != nil {
		fatal(log, "init glfw", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		fatal(log, "create window", err)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, cfg, log)
	if err != nil {
		fatal(log, "start", err)
	}

	sd.attach(window)
	app.Run()
	app.Close()
	sd.finish()

	log.Info("bye")
}

// fatal logs err and exits through closer so bound hooks still run.
func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err)
	closer.Exit(1)
}
