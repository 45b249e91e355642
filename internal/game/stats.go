package game

import (
	"fmt"
	"runtime"
	"time"
)

// FrameCounter measures frames per second over one-second windows.
type FrameCounter struct {
	frames int
	start  time.Time
	fps    int
}

// Tick records a frame at now and reports whether a new FPS value is available.
func (c *FrameCounter) Tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < time.Second {
		return false
	}
	c.fps = int(float64(c.frames) / elapsed.Seconds())
	c.frames = 0
	c.start = now
	return true
}

func (c *FrameCounter) FPS() int {
	return c.fps
}

const mib = 1 << 20

// windowTitle formats the title bar: frames per second and heap in use of memory obtained from the OS.
func windowTitle(base string, fps int, mem *runtime.MemStats) string {
	return fmt.Sprintf("%s   %d fps   %d of %d MiB", base, fps, mem.HeapAlloc/mib, mem.Sys/mib)
}
