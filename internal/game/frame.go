package game

import "github.com/vkazanov/tui-runner/internal/core"

// Frame is an immutable snapshot of everything a renderer needs for one
// frame. The session hands Frames outward and never touches the terminal,
// so the simulation stays testable without a display.
type Frame struct {
	Mode  Mode
	Score int
	Speed float64

	Health    int
	MaxHealth int

	Player   PlayerFrame
	Obstacle ObstacleFrame

	GroundY      int
	LayerOffsets []int

	HeartFrame int

	Buttons []Button
	Cursor  int

	Volume float64
	Track  Track
}

// PlayerFrame is the drawable state of the player.
type PlayerFrame struct {
	X, Y    int
	Sprite  core.Sprite
	Visible bool
}

// ObstacleFrame is the drawable state of the active obstacle.
type ObstacleFrame struct {
	X, Y    int
	Variant int
	Sprite  core.Sprite
}

// Frame captures the current session state as a render snapshot.
func (s *Session) Frame() Frame {
	f := Frame{
		Mode:       s.mode,
		Score:      s.score,
		Speed:      s.speed,
		GroundY:    s.groundY,
		HeartFrame: s.heart.Index(),
		Buttons:    buttonsFor(s.mode, s.screenW, s.screenH),
		Cursor:     s.cursor,
		Volume:     s.volume,
		Track:      s.track,
	}

	if s.player != nil {
		f.Health = s.player.Health()
		f.MaxHealth = s.player.MaxHealth()
		f.Player = PlayerFrame{
			X:       s.player.X,
			Y:       s.player.Y(),
			Sprite:  s.player.Sprite(),
			Visible: s.player.Visible(),
		}
	}
	if s.obstacle != nil {
		f.Obstacle = ObstacleFrame{
			X:       s.obstacle.X(),
			Y:       s.obstacle.Y(),
			Variant: s.obstacle.Variant(),
			Sprite:  s.obstacle.Sprite(),
		}
	}

	f.LayerOffsets = make([]int, 0, len(s.parallax.Layers()))
	for i := range s.parallax.Layers() {
		f.LayerOffsets = append(f.LayerOffsets, s.parallax.Offset(i))
	}

	return f
}
