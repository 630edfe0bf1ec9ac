package game

import (
	"time"

	"github.com/vkazanov/tui-runner/internal/assets"
	"github.com/vkazanov/tui-runner/internal/config"
	"github.com/vkazanov/tui-runner/internal/core"
)

// testSprites builds a minimal, fully solid sprite set so collisions are
// pure bounding-box overlaps and geometry is easy to reason about.
func testSprites() assets.Set {
	return assets.Set{
		PlayerRun:  []core.Sprite{core.SolidSprite(2, 2, 'P')},
		PlayerJump: []core.Sprite{core.SolidSprite(2, 2, 'J')},
		Obstacles:  []core.Sprite{core.SolidSprite(2, 2, 'O')},
		Heart:      []core.Sprite{core.SolidSprite(1, 1, '+')},
		Layers: []core.Sprite{
			core.SolidSprite(8, 1, '^'),
			core.SolidSprite(8, 1, '~'),
		},
	}
}

// testRuntime is a small deterministic viewport.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 16, TickRate: 60, Seed: 1}
}

// newTestSession builds a seeded session with a recording audio stub.
func newTestSession(cfg config.Config) (*Session, *audioRecorder) {
	rec := &audioRecorder{}
	return NewSession(cfg, testRuntime(), testSprites(), rec), rec
}

// startPlaying drives a session from the main menu into the playing mode.
func startPlaying(s *Session) {
	s.HandleEvent(core.KeyEvent(core.ActionConfirm))
}

// tick advances one frame at the nominal tick duration.
func tick(s *Session) {
	s.Step(1.0 / float64(testRuntime().TickRate))
}

// audioRecorder records controller calls for transition assertions.
type audioRecorder struct {
	calls  []string
	volume float64
	track  Track
}

func (r *audioRecorder) Play(t Track) {
	r.calls = append(r.calls, "play")
	r.track = t
}

func (r *audioRecorder) Pause()  { r.calls = append(r.calls, "pause") }
func (r *audioRecorder) Resume() { r.calls = append(r.calls, "resume") }
func (r *audioRecorder) Stop()   { r.calls = append(r.calls, "stop") }

func (r *audioRecorder) FadeOut(d time.Duration) { r.calls = append(r.calls, "fadeout") }

func (r *audioRecorder) SetVolume(v float64) {
	r.calls = append(r.calls, "volume")
	r.volume = v
}

func (r *audioRecorder) last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

func (r *audioRecorder) saw(call string) bool {
	for _, c := range r.calls {
		if c == call {
			return true
		}
	}
	return false
}
