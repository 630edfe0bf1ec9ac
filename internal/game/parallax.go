package game

import "github.com/vkazanov/tui-runner/internal/core"

// Parallax tracks horizontal scroll offsets for the background layers.
// Layer 0 is the farthest; deeper indices scroll faster. Offsets stay in
// (-w, 0] so tiling a layer at offset, offset+w, offset+2w... always covers
// the screen without a visible seam.
type Parallax struct {
	layers  []core.Sprite
	offsets []float64
	factor  float64
}

// NewParallax builds the scroll state for the given layer strips.
func NewParallax(layers []core.Sprite, factor float64) *Parallax {
	return &Parallax{
		layers:  layers,
		offsets: make([]float64, len(layers)),
		factor:  factor,
	}
}

// Update advances every layer by depth*speed*factor, Δt-scaled like
// obstacle motion so backgrounds and hazards stay in lockstep.
func (p *Parallax) Update(dt float64, tickRate int, speed float64) {
	for i := range p.offsets {
		p.offsets[i] -= float64(i+1) * speed * p.factor * dt * float64(tickRate)
		w := float64(p.layers[i].W)
		if w <= 0 {
			continue
		}
		for p.offsets[i] <= -w {
			p.offsets[i] += w
		}
	}
}

// Reset zeroes all offsets.
func (p *Parallax) Reset() {
	for i := range p.offsets {
		p.offsets[i] = 0
	}
}

// Layers returns the layer strips, farthest first.
func (p *Parallax) Layers() []core.Sprite {
	return p.layers
}

// Offset returns the current offset of layer i in whole cells.
func (p *Parallax) Offset(i int) int {
	return int(p.offsets[i])
}

// Offsets returns a copy of the raw fractional offsets.
func (p *Parallax) Offsets() []float64 {
	out := make([]float64, len(p.offsets))
	copy(out, p.offsets)
	return out
}
