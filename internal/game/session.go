// Package game implements the endless-runner simulation: the mode state
// machine, player physics, the recycled obstacle, mask collision, parallax
// scrolling, and the score-driven speed ratchet. The package is pure logic;
// it consumes discrete input events and emits Frame snapshots, and never
// talks to a terminal or an audio device directly.
package game

import (
	"math/rand"
	"time"

	"github.com/vkazanov/tui-runner/internal/assets"
	"github.com/vkazanov/tui-runner/internal/config"
	"github.com/vkazanov/tui-runner/internal/core"
)

// Mode is the active game screen. Exactly one mode is active at a time and
// only its input handling and update logic run each frame.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeInstructions
	ModeSettings
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeInstructions:
		return "Instructions"
	case ModeSettings:
		return "Settings"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Settings knobs shared with the storage layer.
const (
	volumeStep    = 0.1
	defaultVolume = 0.5
)

// gameOverFade is how long the music takes to fade after the last hit.
const gameOverFade = 500 * time.Millisecond

// Session is one run of the program: configuration, RNG, sprites, audio,
// and all mutable game state. It replaces any notion of package-level
// globals; tests construct as many sessions as they like.
type Session struct {
	cfg     config.Config
	rt      core.RuntimeConfig
	rng     *rand.Rand
	sprites assets.Set
	audio   AudioController

	mode   Mode
	cursor int
	quit   bool

	player   *Player
	obstacle *Obstacle
	parallax *Parallax
	heart    Animation

	score int
	speed float64

	volume  float64
	track   Track
	musicOn bool

	screenW, screenH int
	groundY          int
}

// NewSession builds a session in the main menu. A zero rt.Seed seeds the
// RNG from the clock; any other value makes the run reproducible.
func NewSession(cfg config.Config, rt core.RuntimeConfig, sprites assets.Set, audio AudioController) *Session {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		rt:      rt,
		rng:     rand.New(rand.NewSource(seed)),
		sprites: sprites,
		audio:   audio,
		mode:    ModeMainMenu,
		heart:   NewAnimation(sprites.Heart, cfg.Player.AnimationStep),
		volume:  defaultVolume,
	}
	s.Resize(rt.ScreenW, rt.ScreenH)
	s.resetGame()
	return s
}

// Resize adapts the session to a new viewport. The ground line keeps its
// configured offset from the bottom edge.
func (s *Session) Resize(w, h int) {
	s.screenW = core.Max(w, 1)
	s.screenH = core.Max(h, 1)
	s.groundY = s.screenH - s.cfg.Player.GroundOffset
	if s.player != nil {
		s.player.SetGround(s.groundY)
	}
	if s.obstacle != nil {
		s.obstacle.SetGround(s.groundY)
	}
}

// resetGame restores the playfield to its initial state: full health, zero
// score, starting speed, fresh obstacle, zeroed parallax. The current mode
// is left alone.
func (s *Session) resetGame() {
	s.score = 0
	s.speed = s.cfg.Speed.Start
	s.player = NewPlayer(s.cfg, s.sprites.PlayerRun, s.sprites.PlayerJump, s.groundY)
	s.parallax = NewParallax(s.sprites.Layers, s.cfg.Parallax.Factor)
	s.heart.Reset()
	s.spawnObstacle()
}

// spawnObstacle replaces the active obstacle with a fresh one off-screen
// right, at the current global speed, with random jitter and variant.
func (s *Session) spawnObstacle() {
	jitter := s.cfg.Obstacles.SpawnJitterMin
	if span := s.cfg.Obstacles.SpawnJitterMax - s.cfg.Obstacles.SpawnJitterMin; span > 0 {
		jitter += s.rng.Intn(span + 1)
	}
	s.obstacle = NewObstacle(s.rng, s.sprites.Obstacles, s.speed, s.screenW, s.groundY, jitter)
}

// startGame begins a run from the main menu or the game-over screen.
func (s *Session) startGame() {
	s.resetGame()
	s.mode = ModePlaying
	s.cursor = 0
	s.audioSetVolume(s.volume)
	s.audioPlay(s.track)
	s.musicOn = true
}

// toMainMenu abandons the current run and stops the music.
func (s *Session) toMainMenu() {
	s.mode = ModeMainMenu
	s.cursor = 0
	s.audioStop()
	s.musicOn = false
}

// pause suspends the run, keeping all state and the music position.
func (s *Session) pause() {
	s.mode = ModePaused
	s.cursor = 0
	s.audioPause()
}

// unpause resumes a paused run.
func (s *Session) unpause() {
	s.mode = ModePlaying
	s.audioResume()
}

// gameOver ends the run after the last hit. The music fades out rather
// than cutting off.
func (s *Session) gameOver() {
	s.mode = ModeGameOver
	s.cursor = 0
	s.audioFadeOut(gameOverFade)
	s.musicOn = false
}

// HandleEvent feeds one input event to the active mode. Events for modes
// other than the active one do not exist: the transition table below is
// the whole input surface.
func (s *Session) HandleEvent(ev core.Event) {
	if ev.Kind == core.EventKey && ev.Action == core.ActionQuit {
		s.requestQuit()
		return
	}

	switch ev.Kind {
	case core.EventKey:
		s.handleAction(ev.Action)
	case core.EventClick:
		buttons := buttonsFor(s.mode, s.screenW, s.screenH)
		if i := buttonAt(buttons, ev.X, ev.Y); i >= 0 {
			s.activate(buttons[i].ID)
		}
	}
}

// handleAction dispatches a key-derived action in the active mode.
func (s *Session) handleAction(a core.Action) {
	switch s.mode {
	case ModePlaying:
		switch a {
		// Up doubles as jump while playing: space, w, and the up arrow
		// all read as "jump" to a player mid-run.
		case core.ActionJump, core.ActionUp:
			s.player.Jump()
		case core.ActionBack:
			s.pause()
		}
	case ModeMainMenu, ModePaused, ModeGameOver:
		s.handleMenuAction(a)
	case ModeInstructions:
		if a == core.ActionBack || a == core.ActionConfirm {
			s.mode = ModeMainMenu
			s.cursor = 0
		}
	case ModeSettings:
		s.handleSettingsAction(a)
	}
}

// handleMenuAction implements cursor navigation and activation for the
// stacked-button screens.
func (s *Session) handleMenuAction(a core.Action) {
	buttons := buttonsFor(s.mode, s.screenW, s.screenH)
	if len(buttons) == 0 {
		return
	}

	switch a {
	case core.ActionUp:
		s.cursor = (s.cursor + len(buttons) - 1) % len(buttons)
	case core.ActionDown:
		s.cursor = (s.cursor + 1) % len(buttons)
	case core.ActionConfirm:
		s.activate(buttons[core.Clamp(s.cursor, 0, len(buttons)-1)].ID)
	case core.ActionBack:
		if s.mode == ModePaused {
			s.unpause()
		}
	}
}

// handleSettingsAction maps keys onto the settings widgets: up/down steps
// the volume, jump cycles the track, back returns to the menu.
func (s *Session) handleSettingsAction(a core.Action) {
	switch a {
	case core.ActionUp:
		s.stepVolume(volumeStep)
	case core.ActionDown:
		s.stepVolume(-volumeStep)
	case core.ActionJump, core.ActionConfirm:
		s.cycleTrack(1)
	case core.ActionBack:
		s.mode = ModeMainMenu
		s.cursor = 0
	}
}

// activate performs a button's effect. IDs are screen-independent so the
// same handler serves clicks and keyboard confirmation.
func (s *Session) activate(id ButtonID) {
	switch id {
	case ButtonStart, ButtonRetry:
		s.startGame()
	case ButtonInstructions:
		s.mode = ModeInstructions
		s.cursor = 0
	case ButtonSettings:
		s.mode = ModeSettings
		s.cursor = 0
	case ButtonResume:
		s.unpause()
	case ButtonMainMenu:
		s.toMainMenu()
	case ButtonBack:
		s.mode = ModeMainMenu
		s.cursor = 0
	case ButtonQuit:
		s.requestQuit()
	case ButtonVolumeDown:
		s.stepVolume(-volumeStep)
	case ButtonVolumeUp:
		s.stepVolume(volumeStep)
	case ButtonTrackPrev:
		s.cycleTrack(-1)
	case ButtonTrackNext:
		s.cycleTrack(1)
	}
}

// stepVolume nudges the volume by delta, clamped to [0, 1], and applies it
// immediately.
func (s *Session) stepVolume(delta float64) {
	s.volume = core.ClampF(s.volume+delta, 0, 1)
	s.audioSetVolume(s.volume)
}

// cycleTrack selects the next or previous music track. If music is
// playing the new track starts immediately.
func (s *Session) cycleTrack(dir int) {
	n := int(TrackCount)
	s.track = Track((int(s.track) + dir + n) % n)
	if s.musicOn {
		s.audioPlay(s.track)
	}
}

// requestQuit ends the program on the next frame.
func (s *Session) requestQuit() {
	s.quit = true
	s.audioStop()
	s.musicOn = false
}

// QuitRequested reports whether the session asked the platform to exit.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Step advances the simulation by one frame. dt is the wall-clock seconds
// since the previous frame; only horizontal motion is scaled by it. Modes
// other than Playing are static.
func (s *Session) Step(dt float64) {
	if s.mode != ModePlaying {
		return
	}

	s.player.Update()
	s.obstacle.Update(dt, s.rt.TickRate)
	s.parallax.Update(dt, s.rt.TickRate, s.speed)
	s.heart.Advance()

	if s.obstacle.PassedLeft() {
		s.awardPoint()
		s.spawnObstacle()
		return
	}

	s.resolveCollision()
}

// awardPoint bumps the score and ratchets the speed every Interval points
// while below the cap. Speed never decreases within a run.
func (s *Session) awardPoint() {
	s.score++
	spd := s.cfg.Speed
	if spd.Interval > 0 && s.score%spd.Interval == 0 && s.speed < spd.Max {
		s.speed = core.ClampF(s.speed+spd.Increment, 0, spd.Max)
	}
}

// resolveCollision applies contact damage. The test is a cell-mask overlap
// so transparent sprite regions never collide, and it is skipped entirely
// while the immunity window is open.
func (s *Session) resolveCollision() {
	if s.player.Invincible() {
		return
	}
	if !core.MaskOverlap(s.player.Sprite(), s.player.X, s.player.Y(),
		s.obstacle.Sprite(), s.obstacle.X(), s.obstacle.Y()) {
		return
	}

	s.player.Hit(s.cfg.Player.InvincibilityTicks)
	s.spawnObstacle()

	if s.player.Dead() {
		s.gameOver()
	}
}

// ApplySettings installs persisted settings before the first frame.
func (s *Session) ApplySettings(volume float64, track Track) {
	s.volume = core.ClampF(volume, 0, 1)
	if track >= 0 && track < TrackCount {
		s.track = track
	}
	s.audioSetVolume(s.volume)
}

// Mode returns the active mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current global scroll speed.
func (s *Session) Speed() float64 {
	return s.speed
}

// Player returns the player for inspection.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacle returns the active obstacle for inspection.
func (s *Session) Obstacle() *Obstacle {
	return s.obstacle
}

// Parallax returns the background scroll state.
func (s *Session) Parallax() *Parallax {
	return s.parallax
}

// Volume returns the current music volume in [0, 1].
func (s *Session) Volume() float64 {
	return s.volume
}

// MusicTrack returns the selected music track.
func (s *Session) MusicTrack() Track {
	return s.track
}
