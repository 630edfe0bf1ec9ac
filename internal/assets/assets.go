// Package assets provides the sprite sheets used by the runner. Sheets are
// embedded ASCII rasters keyed by logical name; a missing or unreadable
// sheet degrades to a deterministic solid placeholder so gameplay continues
// without the art.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vkazanov/tui-runner/internal/core"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// frameSeparator splits a sheet file into animation frames.
const frameSeparator = "---"

// Provider loads sprite sheets by logical name from a filesystem.
type Provider struct {
	fsys fs.FS
}

// NewProvider returns a provider backed by the embedded sprite sheets.
func NewProvider() *Provider {
	return &Provider{fsys: spriteFS}
}

// NewProviderFS returns a provider backed by an arbitrary filesystem.
// Used by tests to simulate missing or malformed sheets.
func NewProviderFS(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys}
}

// Animation loads the named sheet and returns its frames in file order.
// On any failure it logs a warning and returns a single solid placeholder
// frame of the given fallback size, mirroring what the game would show for
// a missing image asset.
func (p *Provider) Animation(name string, fallbackW, fallbackH int) []core.Sprite {
	frames, err := p.load(name)
	if err != nil {
		log.Warn("assets: falling back to placeholder", "sheet", name, "err", err)
		return []core.Sprite{core.SolidSprite(fallbackW, fallbackH, '█')}
	}
	return frames
}

// load reads and parses a sheet, failing on empty results.
func (p *Provider) load(name string) ([]core.Sprite, error) {
	data, err := fs.ReadFile(p.fsys, "sprites/"+name+".txt")
	if err != nil {
		return nil, err
	}

	frames := parseSheet(string(data))
	if len(frames) == 0 {
		return nil, fmt.Errorf("sheet %s has no frames", name)
	}
	return frames, nil
}

// parseSheet splits sheet text into frames on separator lines.
// Blank-only frames are dropped.
func parseSheet(text string) []core.Sprite {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var frames []core.Sprite
	var rows []string

	flush := func() {
		// Trim trailing blank rows left by the file layout.
		for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
			rows = rows[:len(rows)-1]
		}
		if len(rows) > 0 {
			frames = append(frames, core.NewSprite(rows))
		}
		rows = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimRight(line, " ") == frameSeparator {
			flush()
			continue
		}
		rows = append(rows, line)
	}
	flush()

	return frames
}

// Set bundles every sprite the session needs, in draw-ready form.
type Set struct {
	PlayerRun  []core.Sprite // Running animation frames
	PlayerJump []core.Sprite // Jumping animation frames
	Obstacles  []core.Sprite // One sprite per obstacle variant
	Heart      []core.Sprite // HUD heart animation frames
	Layers     []core.Sprite // Parallax strips, farthest first
}

// obstacleSheets lists the obstacle variants in spawn-index order.
var obstacleSheets = []string{"obstacle_rock1", "obstacle_rock2", "obstacle_rock3", "obstacle_spikes"}

// layerSheets lists the parallax strips from farthest to nearest.
var layerSheets = []string{"bg_mountains", "bg_trees", "bg_bushes"}

// Load builds the full sprite set from this provider.
func (p *Provider) Load() Set {
	set := Set{
		PlayerRun:  p.Animation("player_run", 3, 4),
		PlayerJump: p.Animation("player_jump", 3, 4),
		Heart:      p.Animation("heart", 1, 1),
	}

	for _, name := range obstacleSheets {
		frames := p.Animation(name, 2, 2)
		set.Obstacles = append(set.Obstacles, frames[0])
	}
	for _, name := range layerSheets {
		frames := p.Animation(name, 16, 2)
		set.Layers = append(set.Layers, frames[0])
	}

	return set
}
