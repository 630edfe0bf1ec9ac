// runner is a single-screen endless-runner arcade game for the terminal.
//
// Usage:
//
//	runner                    - Start the game
//
// Flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to custom game config YAML
//	--db <path>          - Set database path (default: ~/.runner/settings.db)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkazanov/tui-runner/internal/assets"
	"github.com/vkazanov/tui-runner/internal/audio"
	"github.com/vkazanov/tui-runner/internal/config"
	"github.com/vkazanov/tui-runner/internal/core"
	"github.com/vkazanov/tui-runner/internal/game"
	"github.com/vkazanov/tui-runner/internal/platform/tui"
	"github.com/vkazanov/tui-runner/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDBPath     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless runner for your terminal",
	Long: `An endless-runner arcade game played entirely in the terminal:
jump over obstacles, collect points, and watch the world speed up.

Controls:
  Space/W/Up - Jump
  Esc        - Pause / back
  Enter      - Select menu entry
  Q/Ctrl+C   - Quit

Examples:
  runner
  runner --difficulty hard
  runner --config ./my-runner.yaml
  runner --fps 30 --seed 42`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.runner/settings.db", "Path to settings database")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runGame(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open settings storage; the game runs fine without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open settings database", "err", err)
		store = nil
	}

	settings := storage.DefaultSettings()
	if store != nil {
		if loaded, loadErr := store.LoadSettings(); loadErr == nil {
			settings = loaded
		} else {
			log.Warn("could not load settings", "err", loadErr)
		}
	}

	// The flag wins over the persisted difficulty.
	difficulty := settings.Difficulty
	if flagDifficulty != "" {
		difficulty = flagDifficulty
	}
	config.ApplyPreset(&gameCfg, config.Preset(difficulty))

	// Probe terminal size before Bubble Tea takes over.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h - 1 // Help bar row
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sprites := assets.NewProvider().Load()
	player := audio.NewController()

	session := game.NewSession(gameCfg, rt, sprites, player)
	session.ApplySettings(settings.Volume, game.Track(settings.Track))

	runErr := tui.Run(session, rt)

	player.Stop()

	if store != nil {
		settings.Volume = session.Volume()
		settings.Track = int(session.MusicTrack())
		settings.Difficulty = difficulty
		if settings.Difficulty == "" {
			settings.Difficulty = string(config.PresetNormal)
		}
		if saveErr := store.SaveSettings(settings); saveErr != nil {
			log.Warn("could not save settings", "err", saveErr)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
