// Package audio plays the looped background music through the system
// speaker. Tracks are synthesized, not decoded from files. When no audio
// device is available the controller degrades to silent no-ops so the game
// runs unchanged.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vkazanov/tui-runner/internal/game"
)

// fadeSteps is how many volume decrements a fade-out is split into.
const fadeSteps = 20

// Controller implements game.AudioController on top of the beep speaker.
// All methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	enabled bool

	ctrl   *beep.Ctrl
	vol    *effects.Volume
	volume float64

	// fadeGen invalidates in-flight fade goroutines whenever playback
	// changes underneath them.
	fadeGen int
}

// NewController initializes the speaker. On failure it logs a warning and
// returns a silent controller rather than an error: missing audio must
// never stop the game.
func NewController() *Controller {
	c := &Controller{volume: 1}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Warn("audio unavailable, running silent", "err", err)
		return c
	}
	c.enabled = true
	return c
}

// Play starts the given track from the beginning, looping until stopped.
// Any previous playback is replaced.
func (c *Controller) Play(t game.Track) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}

	c.fadeGen++
	speaker.Clear()

	c.ctrl = &beep.Ctrl{Streamer: newMelodyStreamer(melodyFor(t))}
	c.vol = &effects.Volume{
		Streamer: c.ctrl,
		Base:     2,
		Volume:   volumeGain(c.volume),
		Silent:   c.volume <= 0,
	}
	speaker.Play(c.vol)
}

// Pause suspends playback keeping position.
func (c *Controller) Pause() {
	c.setPaused(true)
}

// Resume continues paused playback.
func (c *Controller) Resume() {
	c.setPaused(false)
}

func (c *Controller) setPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled || c.ctrl == nil {
		return
	}
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop halts playback and discards position.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.fadeGen++
	speaker.Clear()
	c.ctrl = nil
	c.vol = nil
}

// SetVolume sets playback volume, v in [0, 1], applied immediately.
func (c *Controller) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = v
	if !c.enabled || c.vol == nil {
		return
	}
	speaker.Lock()
	c.vol.Volume = volumeGain(v)
	c.vol.Silent = v <= 0
	speaker.Unlock()
}

// FadeOut ramps the volume to silence over d, then stops. A Play, Stop, or
// second FadeOut issued meanwhile cancels the ramp.
func (c *Controller) FadeOut(d time.Duration) {
	c.mu.Lock()
	if !c.enabled || c.vol == nil {
		c.mu.Unlock()
		return
	}
	c.fadeGen++
	gen := c.fadeGen
	vol := c.vol
	start := c.volume
	c.mu.Unlock()

	go func() {
		step := d / fadeSteps
		for i := 1; i <= fadeSteps; i++ {
			time.Sleep(step)

			c.mu.Lock()
			if c.fadeGen != gen {
				c.mu.Unlock()
				return
			}
			v := start * float64(fadeSteps-i) / fadeSteps
			speaker.Lock()
			vol.Volume = volumeGain(v)
			vol.Silent = v <= 0
			speaker.Unlock()
			c.mu.Unlock()
		}

		c.mu.Lock()
		if c.fadeGen == gen {
			speaker.Clear()
			c.ctrl = nil
			c.vol = nil
		}
		c.mu.Unlock()
	}()
}

// volumeGain maps a linear [0, 1] volume onto the exponential gain scale
// of effects.Volume: 1 is unity, lower values attenuate.
func volumeGain(v float64) float64 {
	return (v - 1) * 5
}
