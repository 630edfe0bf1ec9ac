package game

import (
	"fmt"
	"strings"

	"github.com/vkazanov/tui-runner/internal/assets"
	"github.com/vkazanov/tui-runner/internal/core"
)

// Render composes the current session state into the screen buffer.
// The buffer is resized to the session's viewport if needed.
func (s *Session) Render(dst *core.Screen) {
	dst.Resize(s.screenW, s.screenH)
	dst.Clear()
	renderFrame(s.Frame(), s.sprites, dst)
}

// layerColors pairs the parallax depths with colors, farthest first.
var layerColors = []core.Color{core.ColorGray, core.ColorGreen, core.ColorBrightGreen}

// obstacleColors by variant index; spawn indices beyond the list reuse the
// last entry.
var obstacleColors = []core.Color{core.ColorGray, core.ColorGray, core.ColorGray, core.ColorRed}

// renderFrame draws one frame snapshot. The playfield (sky, parallax,
// ground, actors, HUD) is drawn for every mode so menus overlay a live
// scene; the mode then adds its own chrome on top.
func renderFrame(f Frame, set assets.Set, dst *core.Screen) {
	drawPlayfield(f, set, dst)

	switch f.Mode {
	case ModeMainMenu:
		drawTitle(dst, "T U I   R U N N E R")
		drawButtons(f, dst)
	case ModeInstructions:
		drawInstructions(dst)
		drawButtons(f, dst)
	case ModeSettings:
		drawSettings(f, dst)
		drawButtons(f, dst)
	case ModePlaying:
		drawHUD(f, set, dst)
	case ModePaused:
		drawHUD(f, set, dst)
		drawOverlayBox(dst, "PAUSED")
		drawButtons(f, dst)
	case ModeGameOver:
		drawOverlayBox(dst, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2-1, fmt.Sprintf("Final score: %d", f.Score))
		drawButtons(f, dst)
	}
}

// drawPlayfield renders the scrolling world back to front: sky, parallax
// layers, ground line, obstacle, player.
func drawPlayfield(f Frame, set assets.Set, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Static sky: a sparse band of clouds above the farthest layer.
	for x := 3; x < w; x += 13 {
		dst.DrawTextColored(x, 1+((x/13)%2), "~", core.ColorSky)
	}

	for i, layer := range set.Layers {
		if layer.Empty() || i >= len(f.LayerOffsets) {
			continue
		}
		color := core.ColorDefault
		if i < len(layerColors) {
			color = layerColors[i]
		}
		y := f.GroundY - layer.H
		// One spare tile each side keeps the wrap seamless.
		for x := f.LayerOffsets[i] - layer.W; x < w+layer.W; x += layer.W {
			dst.DrawSprite(layer, x, y, color)
		}
	}

	if f.GroundY >= 0 && f.GroundY < h {
		dst.DrawHLine(0, f.GroundY, w, '─')
	}

	if !f.Obstacle.Sprite.Empty() {
		color := obstacleColors[len(obstacleColors)-1]
		if f.Obstacle.Variant < len(obstacleColors) {
			color = obstacleColors[f.Obstacle.Variant]
		}
		dst.DrawSprite(f.Obstacle.Sprite, f.Obstacle.X, f.Obstacle.Y, color)
	}

	// The player blinks while invincible: skipped frames are the blink.
	if f.Player.Visible && !f.Player.Sprite.Empty() {
		dst.DrawSprite(f.Player.Sprite, f.Player.X, f.Player.Y, core.ColorBrightYellow)
	}
}

// drawHUD renders the score and the heart row for the playing state.
func drawHUD(f Frame, set assets.Set, dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorBrightWhite)

	if len(set.Heart) == 0 {
		// No heart art: plain text fallback.
		dst.DrawText(2, 1, fmt.Sprintf("Health: %d/%d", f.Health, f.MaxHealth))
		return
	}

	frame := core.Clamp(f.HeartFrame, 0, len(set.Heart)-1)
	heart := set.Heart[frame]
	for i := 0; i < f.Health; i++ {
		dst.DrawSprite(heart, 2+i*(heart.W+1), 1, core.ColorBrightRed)
	}
}

// drawButtons renders a mode's buttons, highlighting the cursor's entry.
func drawButtons(f Frame, dst *core.Screen) {
	for i, b := range f.Buttons {
		label := b.Label
		color := core.ColorWhite
		if i == f.Cursor {
			label = "> " + label + " <"
			color = core.ColorBrightYellow
		}
		x := b.Box.X + (b.Box.W-len([]rune(label)))/2
		dst.DrawTextColored(x, b.Box.Y, label, color)
	}
}

// drawTitle renders the banner line of the main menu.
func drawTitle(dst *core.Screen, title string) {
	y := core.Max(dst.Height()/2-6, 1)
	dst.DrawTextCentered(y, title)
	dst.DrawTextCentered(y+1, strings.Repeat("═", len([]rune(title))+4))
}

// instructionLines is the static help text of the instructions screen.
var instructionLines = []string{
	"Jump over the obstacles rolling in from the right.",
	"",
	"space / w / up ... jump",
	"esc .............. pause",
	"q ................ quit",
	"",
	"Every obstacle you clear is worth one point, and the",
	"world speeds up as your score grows. You can take a",
	"few hits, then the run is over.",
}

func drawInstructions(dst *core.Screen) {
	top := core.Max(dst.Height()/2-len(instructionLines)/2-2, 1)
	dst.DrawTextCentered(top, "HOW TO PLAY")
	for i, line := range instructionLines {
		dst.DrawTextCentered(top+2+i, line)
	}
}

// drawSettings renders the volume and track read-outs between their
// stepper buttons.
func drawSettings(f Frame, dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(core.Max(cy-5, 0), "SETTINGS")
	dst.DrawTextCentered(cy-2, fmt.Sprintf("Volume %3.0f%%", f.Volume*100))
	dst.DrawTextCentered(cy, fmt.Sprintf("Track: %s", f.Track))
}

// drawOverlayBox frames the center of the screen with a titled box for the
// pause and game-over overlays.
func drawOverlayBox(dst *core.Screen, title string) {
	w := core.Min(dst.Width()-4, 40)
	h := core.Min(dst.Height()-2, 12)
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
}
