package game

import (
	"math"

	"github.com/vkazanov/tui-runner/internal/core"
)

// Animation is a sprite sequence with a fractional playback phase.
// The phase advances by a fixed per-tick step and wraps modulo the sequence
// length, so playback speed is tied to the tick rate, not wall time.
type Animation struct {
	frames []core.Sprite
	phase  float64
	step   float64
}

// NewAnimation creates an animation over the given frames.
func NewAnimation(frames []core.Sprite, step float64) Animation {
	return Animation{frames: frames, step: step}
}

// Advance moves the phase forward one tick.
func (a *Animation) Advance() {
	if len(a.frames) == 0 {
		return
	}
	a.phase = math.Mod(a.phase+a.step, float64(len(a.frames)))
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	a.phase = 0
}

// Index returns the current whole-frame index.
func (a Animation) Index() int {
	if len(a.frames) == 0 {
		return 0
	}
	return core.Clamp(int(a.phase), 0, len(a.frames)-1)
}

// Frame returns the current sprite. Returns an empty sprite when the
// animation has no frames, so callers degrade to drawing nothing.
func (a Animation) Frame() core.Sprite {
	if len(a.frames) == 0 {
		return core.Sprite{}
	}
	return a.frames[a.Index()]
}

// Len returns the number of frames.
func (a Animation) Len() int {
	return len(a.frames)
}
