package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/vkazanov/tui-runner/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// note is one melody step: a frequency in Hz (0 is a rest) and a length
// in beats.
type note struct {
	freq  float64
	beats float64
}

// melody is a loopable note sequence with its instrument and tempo.
type melody struct {
	notes []note
	wave  int
	bpm   float64
}

// Note frequencies, equal temperament.
const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	g5 = 783.99
	r  = 0 // rest
)

// chiptuneMelody is the default track: a brisk square-wave run.
var chiptuneMelody = melody{
	wave: waveSquare,
	bpm:  150,
	notes: []note{
		{c4, 0.5}, {e4, 0.5}, {g4, 0.5}, {c5, 0.5},
		{g4, 0.5}, {e4, 0.5}, {g4, 1},
		{d4, 0.5}, {f4, 0.5}, {a4, 0.5}, {d5, 0.5},
		{a4, 0.5}, {f4, 0.5}, {a4, 1},
		{e4, 0.5}, {g4, 0.5}, {b4, 0.5}, {e5, 0.5},
		{b4, 0.5}, {g4, 0.5}, {b4, 1},
		{c5, 0.5}, {b4, 0.5}, {a4, 0.5}, {g4, 0.5},
		{e4, 0.5}, {d4, 0.5}, {c4, 1}, {r, 1},
	},
}

// calmMelody is the alternative track: a slower triangle-wave line.
var calmMelody = melody{
	wave: waveTriangle,
	bpm:  84,
	notes: []note{
		{e4, 1}, {g4, 1}, {a4, 2},
		{g4, 1}, {e4, 1}, {d4, 2},
		{c4, 1}, {e4, 1}, {g4, 2},
		{e4, 1}, {d4, 1}, {c4, 1}, {r, 1},
	},
}

// melodyFor maps a track id to its melody. Unknown ids fall back to the
// default track.
func melodyFor(t game.Track) melody {
	switch t {
	case game.TrackCalm:
		return calmMelody
	default:
		return chiptuneMelody
	}
}

// envelope fraction of each note spent ramping in and out, to avoid clicks
// at note boundaries.
const noteEnvelope = 0.08

// melodyStreamer synthesizes a melody as an endless beep stream. The
// sequence wraps internally, so no seeking support is needed for looping.
type melodyStreamer struct {
	m melody

	noteIdx     int
	noteSamples int // Total samples of the current note
	notePos     int // Samples already emitted for the current note
	phase       float64
}

// newMelodyStreamer starts the melody from its first note.
func newMelodyStreamer(m melody) *melodyStreamer {
	ms := &melodyStreamer{m: m}
	ms.loadNote(0)
	return ms
}

// loadNote positions the streamer at the start of note i.
func (ms *melodyStreamer) loadNote(i int) {
	ms.noteIdx = i
	ms.notePos = 0
	ms.phase = 0

	beatSeconds := 60.0 / ms.m.bpm
	ms.noteSamples = int(ms.m.notes[i].beats * beatSeconds * float64(sampleRate))
	if ms.noteSamples < 1 {
		ms.noteSamples = 1
	}
}

// Stream fills samples with the synthesized melody. It never ends: the
// note index wraps modulo the sequence.
func (ms *melodyStreamer) Stream(samples [][2]float64) (int, bool) {
	if len(ms.m.notes) == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	for i := range samples {
		if ms.notePos >= ms.noteSamples {
			ms.loadNote((ms.noteIdx + 1) % len(ms.m.notes))
		}

		v := ms.sample()
		samples[i] = [2]float64{v, v}
		ms.notePos++
	}
	return len(samples), true
}

func (ms *melodyStreamer) Err() error {
	return nil
}

// sample synthesizes one mono sample of the current note.
func (ms *melodyStreamer) sample() float64 {
	n := ms.m.notes[ms.noteIdx]
	if n.freq == 0 {
		return 0
	}

	var v float64
	switch ms.m.wave {
	case waveSquare:
		if ms.phase < 0.5 {
			v = 0.25
		} else {
			v = -0.25
		}
	case waveTriangle:
		v = (1 - 4*math.Abs(ms.phase-0.5)) * 0.4
	default:
		v = math.Sin(2*math.Pi*ms.phase) * 0.4
	}

	ms.phase += n.freq / float64(sampleRate)
	if ms.phase >= 1 {
		ms.phase -= 1
	}

	return v * ms.envelope()
}

// envelope ramps the note's edges linearly to avoid boundary clicks.
func (ms *melodyStreamer) envelope() float64 {
	edge := int(noteEnvelope * float64(ms.noteSamples))
	if edge == 0 {
		return 1
	}
	if ms.notePos < edge {
		return float64(ms.notePos) / float64(edge)
	}
	if left := ms.noteSamples - ms.notePos; left < edge {
		return float64(left) / float64(edge)
	}
	return 1
}
