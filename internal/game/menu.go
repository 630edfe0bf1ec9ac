package game

import "github.com/vkazanov/tui-runner/internal/core"

// ButtonID identifies a menu action independent of which screen hosts it.
type ButtonID int

const (
	ButtonStart ButtonID = iota
	ButtonInstructions
	ButtonSettings
	ButtonQuit
	ButtonResume
	ButtonMainMenu
	ButtonRetry
	ButtonBack
	ButtonVolumeDown
	ButtonVolumeUp
	ButtonTrackPrev
	ButtonTrackNext
)

// Button is a clickable menu entry: a label and its screen-space hit box.
type Button struct {
	ID    ButtonID
	Label string
	Box   core.Rect
}

// buttonWidth is the fixed width of stacked menu buttons.
const buttonWidth = 24

// buttonsFor lays out the buttons of the given mode for a screen of the
// given size. Layouts are recomputed on every frame so they track window
// resizes. Playing has no buttons.
func buttonsFor(mode Mode, screenW, screenH int) []Button {
	switch mode {
	case ModeMainMenu:
		return stackButtons(screenW, screenH/2-2, []labeled{
			{ButtonStart, "Start"},
			{ButtonInstructions, "Instructions"},
			{ButtonSettings, "Settings"},
			{ButtonQuit, "Quit"},
		})
	case ModePaused:
		return stackButtons(screenW, screenH/2-1, []labeled{
			{ButtonResume, "Resume"},
			{ButtonMainMenu, "Main Menu"},
			{ButtonQuit, "Quit"},
		})
	case ModeGameOver:
		return stackButtons(screenW, screenH/2+1, []labeled{
			{ButtonRetry, "Retry"},
			{ButtonMainMenu, "Main Menu"},
		})
	case ModeInstructions:
		return stackButtons(screenW, screenH-4, []labeled{
			{ButtonBack, "Back"},
		})
	case ModeSettings:
		return settingsButtons(screenW, screenH)
	default:
		return nil
	}
}

type labeled struct {
	id    ButtonID
	label string
}

// stackButtons centers a vertical stack of uniform buttons starting at
// startY, one row of spacing between entries.
func stackButtons(screenW, startY int, entries []labeled) []Button {
	x := (screenW - buttonWidth) / 2
	buttons := make([]Button, 0, len(entries))
	for i, e := range entries {
		buttons = append(buttons, Button{
			ID:    e.id,
			Label: e.label,
			Box:   core.NewRect(x, startY+i*2, buttonWidth, 1),
		})
	}
	return buttons
}

// settingsButtons lays out the volume stepper, the track selector, and the
// back button. The −/+ pair flanks the volume read-out; the track arrows
// flank the track name.
func settingsButtons(screenW, screenH int) []Button {
	cx := screenW / 2
	volY := screenH/2 - 2
	trackY := screenH / 2

	return []Button{
		{ID: ButtonVolumeDown, Label: "-", Box: core.NewRect(cx-10, volY, 3, 1)},
		{ID: ButtonVolumeUp, Label: "+", Box: core.NewRect(cx+8, volY, 3, 1)},
		{ID: ButtonTrackPrev, Label: "<", Box: core.NewRect(cx-10, trackY, 3, 1)},
		{ID: ButtonTrackNext, Label: ">", Box: core.NewRect(cx+8, trackY, 3, 1)},
		{ID: ButtonBack, Label: "Back", Box: core.NewRect((screenW-buttonWidth)/2, trackY+3, buttonWidth, 1)},
	}
}

// buttonAt returns the index of the button whose box contains (x, y),
// or -1 when the click misses every button.
func buttonAt(buttons []Button, x, y int) int {
	for i, b := range buttons {
		if b.Box.Contains(x, y) {
			return i
		}
	}
	return -1
}
