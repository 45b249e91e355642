package main

import (
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const shutdownGrace = 2 * time.Second

// shutdown lets a signal handled off the main thread stop the frame loop and
// wait until the main thread has released GL resources.
type shutdown struct {
	mu     sync.Mutex
	window *glfw.Window
	done   chan struct{}
	once   sync.Once
}

func newShutdown() *shutdown {
	return &shutdown{done: make(chan struct{})}
}

// attach marks the frame loop as running.
func (s *shutdown) attach(w *glfw.Window) {
	s.mu.Lock()
	s.window = w
	s.mu.Unlock()
}

// finish is called by the main thread after cleanup.
func (s *shutdown) finish() {
	s.mu.Lock()
	s.window = nil
	s.mu.Unlock()
	s.once.Do(func() { close(s.done) })
}

func (s *shutdown) hook() {
	s.mu.Lock()
	w := s.window
	s.mu.Unlock()
	if w == nil {
		return
	}
	// glfwSetWindowShouldClose may be called from any thread
	w.SetShouldClose(true)
	select {
	case <-s.done:
	case <-time.After(shutdownGrace):
	}
}
