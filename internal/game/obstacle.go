package game

import (
	"math/rand"

	"github.com/vkazanov/tui-runner/internal/core"
)

// Obstacle is the single active ground hazard. It spawns fully off-screen
// to the right, scrolls left at the speed it captured at spawn time, and is
// replaced wholesale on pass-through or collision.
type Obstacle struct {
	x       float64
	y       int
	variant int
	sprite  core.Sprite
	speed   float64 // Captured from the session at spawn time
}

// NewObstacle spawns an obstacle with a uniformly random variant at
// screenW+jitter, resting on the ground line.
func NewObstacle(rng *rand.Rand, variants []core.Sprite, speed float64, screenW, groundY, jitter int) *Obstacle {
	o := &Obstacle{
		x:     float64(screenW + jitter),
		speed: speed,
	}
	if len(variants) > 0 {
		o.variant = rng.Intn(len(variants))
		o.sprite = variants[o.variant]
	}
	o.y = groundY - o.sprite.H
	return o
}

// Update moves the obstacle left. Horizontal motion is Δt-scaled so
// difficulty stays consistent across frame rates: speed is expressed in
// cells per tick at the nominal tick rate.
func (o *Obstacle) Update(dt float64, tickRate int) {
	o.x -= o.speed * dt * float64(tickRate)
}

// SetGround re-seats the obstacle on a moved ground line.
func (o *Obstacle) SetGround(groundY int) {
	o.y = groundY - o.sprite.H
}

// PassedLeft reports whether the obstacle has fully exited the left edge.
func (o *Obstacle) PassedLeft() bool {
	return o.Rect().Right() < 0
}

// Rect returns the obstacle's bounding box in screen coordinates.
func (o *Obstacle) Rect() core.Rect {
	return core.NewRect(int(o.x), o.y, o.sprite.W, o.sprite.H)
}

// Sprite returns the obstacle's raster.
func (o *Obstacle) Sprite() core.Sprite {
	return o.sprite
}

// Variant returns the variant index chosen at spawn.
func (o *Obstacle) Variant() int {
	return o.variant
}

// Speed returns the speed captured at spawn time.
func (o *Obstacle) Speed() float64 {
	return o.speed
}

// X returns the left edge as a whole cell column.
func (o *Obstacle) X() int {
	return int(o.x)
}

// Y returns the top edge.
func (o *Obstacle) Y() int {
	return o.y
}
