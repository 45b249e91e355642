package game

import (
	"mini-voxel/internal/config"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/input"
)

// FlyController turns input into free-flight camera motion.
type FlyController struct {
	Speed       float32
	Sensitivity float32
	Boost       float32
}

func NewFlyController(cfg config.CameraConfig) FlyController {
	return FlyController{Speed: cfg.Speed, Sensitivity: cfg.Sensitivity, Boost: cfg.Boost}
}

// Update applies mouse look and movement for a frame of dt seconds.
// Moving the mouse down pitches the camera down.
func (f FlyController) Update(cam *graphics.Camera, im *input.InputManager, dt float64) {
	dx, dy := im.ConsumeMouseDelta()
	cam.Rotate(float32(dx)*f.Sensitivity, -float32(dy)*f.Sensitivity)

	step := f.Speed * float32(dt)
	if im.IsActive(input.ActionBoost) {
		step *= f.Boost
	}
	cam.Move(
		im.Axis(input.ActionMoveBackward, input.ActionMoveForward)*step,
		im.Axis(input.ActionMoveLeft, input.ActionMoveRight)*step,
		im.Axis(input.ActionMoveDown, input.ActionMoveUp)*step,
	)
}
