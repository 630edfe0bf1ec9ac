package game

import (
	"testing"

	"github.com/vkazanov/tui-runner/internal/core"
)

func testLayers() []core.Sprite {
	return []core.Sprite{
		core.SolidSprite(8, 1, '^'),
		core.SolidSprite(6, 1, '~'),
		core.SolidSprite(4, 1, '.'),
	}
}

func TestParallaxDeeperLayersScrollFaster(t *testing.T) {
	p := NewParallax(testLayers(), 0.25)
	p.Update(1.0/60, 60, 1.0)

	offs := p.Offsets()
	if len(offs) != 3 {
		t.Fatalf("got %d offsets, want 3", len(offs))
	}
	for i := 1; i < len(offs); i++ {
		if offs[i] >= offs[i-1] {
			t.Errorf("layer %d offset %v not faster than layer %d offset %v",
				i, offs[i], i-1, offs[i-1])
		}
	}
}

func TestParallaxOffsetsStayBounded(t *testing.T) {
	layers := testLayers()
	p := NewParallax(layers, 0.25)

	for i := 0; i < 10000; i++ {
		p.Update(1.0/60, 60, 1.5)
		for j, off := range p.Offsets() {
			w := float64(layers[j].W)
			if off > 0 || off <= -w {
				t.Fatalf("tick %d: layer %d offset %v outside (-%v, 0]", i, j, off, w)
			}
		}
	}
}

func TestParallaxRatioMatchesDepth(t *testing.T) {
	// With widths large enough to avoid wrapping, the offsets must stay in
	// exact 1:2:3 ratio.
	layers := []core.Sprite{
		core.SolidSprite(1000, 1, '^'),
		core.SolidSprite(1000, 1, '~'),
		core.SolidSprite(1000, 1, '.'),
	}
	p := NewParallax(layers, 0.25)
	for i := 0; i < 100; i++ {
		p.Update(1.0/60, 60, 1.0)
	}

	offs := p.Offsets()
	for i := 1; i < len(offs); i++ {
		want := offs[0] * float64(i+1)
		if diff := offs[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("layer %d offset %v, want %v (depth ratio)", i, offs[i], want)
		}
	}
}

func TestParallaxReset(t *testing.T) {
	p := NewParallax(testLayers(), 0.25)
	for i := 0; i < 50; i++ {
		p.Update(1.0/60, 60, 1.0)
	}
	p.Reset()

	for i, off := range p.Offsets() {
		if off != 0 {
			t.Errorf("layer %d offset %v after Reset, want 0", i, off)
		}
	}
}

func TestParallaxNoLayers(t *testing.T) {
	p := NewParallax(nil, 0.25)
	p.Update(1.0/60, 60, 1.0)
	if got := len(p.Offsets()); got != 0 {
		t.Errorf("got %d offsets for zero layers", got)
	}
}
