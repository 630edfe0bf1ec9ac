package game

import (
	"github.com/vkazanov/tui-runner/internal/config"
	"github.com/vkazanov/tui-runner/internal/core"
)

// PlayerAction is the player's movement state. The two states are mutually
// exclusive and select both the physics branch and the animation set.
type PlayerAction int

const (
	Running PlayerAction = iota
	Jumping
)

// blinkPeriod is the tick period of the invincibility blink. The player is
// drawn during the first half of each period (50% duty cycle).
const blinkPeriod = 10

// Player is the runner character: fixed x, gravity-driven y, health, and a
// damage-immunity window with a blink effect.
type Player struct {
	X int

	y     float64 // Top edge of the sprite
	landY float64 // Top edge when standing on the ground
	vy    float64

	action        PlayerAction
	health        int
	maxHealth     int
	invincibility int // Remaining immunity ticks

	run  Animation
	jump Animation

	phys config.PhysicsConfig
}

// NewPlayer creates a player standing on the ground line at groundY.
func NewPlayer(cfg config.Config, run, jump []core.Sprite, groundY int) *Player {
	height := 0
	if len(run) > 0 {
		height = run[0].H
	}
	landY := float64(groundY - height)

	return &Player{
		X:         cfg.Player.X,
		y:         landY,
		landY:     landY,
		action:    Running,
		health:    cfg.Player.Health,
		maxHealth: cfg.Player.Health,
		run:       NewAnimation(run, cfg.Player.AnimationStep),
		jump:      NewAnimation(jump, cfg.Player.AnimationStep),
		phys:      cfg.Physics,
	}
}

// Jump transitions Running into Jumping with the configured initial upward
// velocity and rewinds the jump animation. A no-op while already airborne,
// so there is no double jump.
func (p *Player) Jump() {
	if p.action != Running {
		return
	}
	p.action = Jumping
	p.vy = p.phys.JumpVelocity
	p.jump.Reset()
}

// Update advances the player by one simulation tick. Gravity, animation
// phase, and the invincibility countdown are per-tick quantities; see the
// session for the Δt-scaled horizontal motion.
func (p *Player) Update() {
	if p.run.Len() == 0 || p.jump.Len() == 0 {
		return
	}

	switch p.action {
	case Jumping:
		p.y += p.vy
		p.vy += p.phys.Gravity
		if p.vy > p.phys.MaxFallSpeed {
			p.vy = p.phys.MaxFallSpeed
		}
		// Landing
		if p.y >= p.landY {
			p.y = p.landY
			p.vy = 0
			p.action = Running
		}
	case Running:
		// Snap back if something left the player above the ground.
		if p.y < p.landY {
			p.y = p.landY
		}
	}

	p.activeAnim().Advance()

	if p.invincibility > 0 {
		p.invincibility--
	}
}

// activeAnim returns the animation for the current action.
func (p *Player) activeAnim() *Animation {
	if p.action == Jumping {
		return &p.jump
	}
	return &p.run
}

// SetGround moves the ground line, keeping a grounded player grounded.
// Called on window resize.
func (p *Player) SetGround(groundY int) {
	height := 0
	if sp := p.Sprite(); !sp.Empty() {
		height = sp.H
	}
	p.landY = float64(groundY - height)
	if p.action == Running {
		p.y = p.landY
	}
}

// Hit applies one point of damage and opens the immunity window.
// Health never goes below zero.
func (p *Player) Hit(immunityTicks int) {
	if p.health > 0 {
		p.health--
	}
	p.invincibility = immunityTicks
}

// Visible reports whether the player should be drawn this tick. While
// invincible the player blinks at a 50% duty cycle; this is purely a
// function of the remaining immunity ticks.
func (p *Player) Visible() bool {
	if p.invincibility <= 0 {
		return true
	}
	return p.invincibility%blinkPeriod < blinkPeriod/2
}

// Invincible reports whether the damage-immunity window is open.
func (p *Player) Invincible() bool {
	return p.invincibility > 0
}

// InvincibilityLeft returns the remaining immunity ticks.
func (p *Player) InvincibilityLeft() int {
	return p.invincibility
}

// Health returns the current health in [0, max].
func (p *Player) Health() int {
	return p.health
}

// MaxHealth returns the starting health.
func (p *Player) MaxHealth() int {
	return p.maxHealth
}

// Dead reports whether health is exhausted.
func (p *Player) Dead() bool {
	return p.health <= 0
}

// Action returns the current movement state.
func (p *Player) Action() PlayerAction {
	return p.action
}

// Velocity returns the current vertical velocity.
func (p *Player) Velocity() float64 {
	return p.vy
}

// Y returns the top edge of the player sprite.
func (p *Player) Y() int {
	return int(p.y)
}

// OnGround reports whether the player rests exactly on the ground line.
func (p *Player) OnGround() bool {
	return p.y >= p.landY
}

// Sprite returns the current animation frame.
func (p *Player) Sprite() core.Sprite {
	return p.activeAnim().Frame()
}

// FrameIndex returns the current animation frame index.
func (p *Player) FrameIndex() int {
	return p.activeAnim().Index()
}

// Rect returns the player's bounding box in screen coordinates.
func (p *Player) Rect() core.Rect {
	sp := p.Sprite()
	return core.NewRect(p.X, p.Y(), sp.W, sp.H)
}
