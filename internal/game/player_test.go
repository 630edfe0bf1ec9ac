package game

import (
	"testing"

	"github.com/vkazanov/tui-runner/internal/config"
	"github.com/vkazanov/tui-runner/internal/core"
)

func testPlayer() *Player {
	set := testSprites()
	return NewPlayer(config.Default(), set.PlayerRun, set.PlayerJump, 14)
}

func TestPlayerStartsOnGround(t *testing.T) {
	p := testPlayer()

	if p.Action() != Running {
		t.Errorf("action = %v, want Running", p.Action())
	}
	if !p.OnGround() {
		t.Error("player should start on the ground")
	}
	if got := p.Y(); got != 14-2 {
		t.Errorf("y = %d, want %d (ground minus sprite height)", got, 12)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := testPlayer()
	p.Jump()

	if p.Action() != Jumping {
		t.Fatalf("action = %v, want Jumping after Jump", p.Action())
	}
	if p.Velocity() >= 0 {
		t.Fatalf("velocity = %v, want negative right after Jump", p.Velocity())
	}

	// The arc must leave the ground, come back down, and land exactly on
	// the ground line in bounded time.
	left := false
	for i := 0; i < 1000; i++ {
		p.Update()
		if !p.OnGround() {
			left = true
		}
		if left && p.Action() == Running {
			break
		}
	}

	if !left {
		t.Error("player never left the ground")
	}
	if p.Action() != Running {
		t.Fatal("player never landed")
	}
	if !p.OnGround() {
		t.Errorf("landed at y = %d, want ground level", p.Y())
	}
	if p.Velocity() != 0 {
		t.Errorf("velocity = %v after landing, want 0", p.Velocity())
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p := testPlayer()
	p.Jump()

	// Let the jump progress a bit, then try to jump again mid-air.
	for i := 0; i < 3; i++ {
		p.Update()
	}
	y, vy := p.Y(), p.Velocity()
	p.Jump()

	if p.Y() != y || p.Velocity() != vy {
		t.Error("mid-air Jump must be a no-op")
	}
}

func TestPlayerFallSpeedCapped(t *testing.T) {
	cfg := config.Default()
	set := testSprites()
	p := NewPlayer(cfg, set.PlayerRun, set.PlayerJump, 1000)
	p.Jump()

	for i := 0; i < 500; i++ {
		p.Update()
		if p.Velocity() > cfg.Physics.MaxFallSpeed {
			t.Fatalf("velocity %v exceeds max fall speed %v", p.Velocity(), cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestPlayerHit(t *testing.T) {
	p := testPlayer()
	start := p.Health()

	p.Hit(60)
	if got := p.Health(); got != start-1 {
		t.Errorf("health = %d, want %d", got, start-1)
	}
	if !p.Invincible() {
		t.Error("hit must open the immunity window")
	}
	if got := p.InvincibilityLeft(); got != 60 {
		t.Errorf("invincibility = %d, want 60", got)
	}
}

func TestPlayerHealthNeverNegative(t *testing.T) {
	p := testPlayer()
	for i := 0; i < 10; i++ {
		p.Hit(0)
	}
	if got := p.Health(); got != 0 {
		t.Errorf("health = %d, want 0 floor", got)
	}
	if !p.Dead() {
		t.Error("player at zero health must be dead")
	}
}

func TestPlayerInvincibilityCountsDown(t *testing.T) {
	p := testPlayer()
	p.Hit(5)

	for i := 0; i < 5; i++ {
		if !p.Invincible() {
			t.Fatalf("window closed after %d ticks, want 5", i)
		}
		p.Update()
	}
	if p.Invincible() {
		t.Error("window still open after 5 ticks")
	}
}

func TestPlayerBlinkDutyCycle(t *testing.T) {
	p := testPlayer()

	if !p.Visible() {
		t.Fatal("player must be visible while not invincible")
	}

	p.Hit(60)
	visible := 0
	for i := 0; i < 60; i++ {
		if p.Visible() {
			visible++
		}
		p.Update()
	}
	// 10-tick blink period at 50% duty.
	if visible != 30 {
		t.Errorf("visible for %d of 60 immunity ticks, want 30", visible)
	}
	if !p.Visible() {
		t.Error("player must be visible again after the window closes")
	}
}

func TestPlayerBlinkIsPureFunctionOfCounter(t *testing.T) {
	cases := []struct {
		left    int
		visible bool
	}{
		{0, true},
		{1, true},
		{4, true},
		{5, false},
		{9, false},
		{11, true},
		{14, true},
		{15, false},
		{60, true},
	}

	for _, tc := range cases {
		p := testPlayer()
		p.Hit(tc.left)
		if got := p.Visible(); got != tc.visible {
			t.Errorf("Visible() with %d ticks left = %v, want %v", tc.left, got, tc.visible)
		}
	}
}

func TestPlayerAnimationSwitchesWithAction(t *testing.T) {
	set := testSprites()
	p := NewPlayer(config.Default(), set.PlayerRun, set.PlayerJump, 14)

	if got := p.Sprite().At(0, 0); got != 'P' {
		t.Errorf("running sprite rune = %q, want 'P'", got)
	}
	p.Jump()
	if got := p.Sprite().At(0, 0); got != 'J' {
		t.Errorf("jumping sprite rune = %q, want 'J'", got)
	}
}

func TestPlayerRectTracksSprite(t *testing.T) {
	p := testPlayer()
	want := core.NewRect(p.X, p.Y(), 2, 2)
	if got := p.Rect(); got != want {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}

func TestPlayerEmptyFramesNoPanic(t *testing.T) {
	p := NewPlayer(config.Default(), nil, nil, 14)
	p.Jump()
	p.Update()
	_ = p.Sprite()
	_ = p.Rect()
}
