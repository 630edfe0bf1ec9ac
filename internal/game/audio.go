package game

import "time"

// Track identifies a music track by stable index.
type Track int

const (
	TrackChiptune Track = iota
	TrackCalm
	TrackCount
)

// String returns the track's display name.
func (t Track) String() string {
	switch t {
	case TrackChiptune:
		return "Chiptune"
	case TrackCalm:
		return "Calm"
	default:
		return "Unknown"
	}
}

// AudioController is the session's view of music playback. Implementations
// must tolerate being driven from the game loop: every method is
// best-effort and never blocks on the audio device.
type AudioController interface {
	// Play starts the given track from the beginning, looping.
	Play(t Track)
	// Pause suspends playback keeping position.
	Pause()
	// Resume continues paused playback.
	Resume()
	// Stop halts playback and discards position.
	Stop()
	// FadeOut ramps the volume to silence over d, then stops.
	FadeOut(d time.Duration)
	// SetVolume sets playback volume, v in [0, 1].
	SetVolume(v float64)
}

// The session treats a nil controller as "no audio": all calls become
// no-ops so game logic stays testable without a speaker.

func (s *Session) audioPlay(t Track) {
	if s.audio != nil {
		s.audio.Play(t)
	}
}

func (s *Session) audioPause() {
	if s.audio != nil {
		s.audio.Pause()
	}
}

func (s *Session) audioResume() {
	if s.audio != nil {
		s.audio.Resume()
	}
}

func (s *Session) audioStop() {
	if s.audio != nil {
		s.audio.Stop()
	}
}

func (s *Session) audioFadeOut(d time.Duration) {
	if s.audio != nil {
		s.audio.FadeOut(d)
	}
}

func (s *Session) audioSetVolume(v float64) {
	if s.audio != nil {
		s.audio.SetVolume(v)
	}
}
