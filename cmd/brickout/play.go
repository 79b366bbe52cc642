package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vdmtrv/brickout/internal/audio"
	"github.com/vdmtrv/brickout/internal/config"
	"github.com/vdmtrv/brickout/internal/core"
	"github.com/vdmtrv/brickout/internal/platform/tui"
	"github.com/vdmtrv/brickout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  A/D, arrows, H/L  - Move paddle
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  brickout play
  brickout play --difficulty hard
  brickout play --config ./my-brickout.yaml
  brickout play --theme ./my-theme.yaml --no-sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// Registered on the root so that a bare 'brickout' accepts them too.
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom background theme YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	difficulty := "custom"
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
			difficulty = flagDifficulty
		default:
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	// The background theme must load before the program starts; a broken
	// theme is a startup error, not something to limp past mid-game.
	theme, err := tui.LoadTheme(flagTheme)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database; playing without persistence", "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sounds := audio.NewEngine(!flagNoSound)
	if err := sounds.Init(); err != nil {
		logger.Warn("audio unavailable; playing silent", "err", err)
	}
	defer sounds.Close()

	return tui.Run(tui.Options{
		GameConfig: cfg,
		Runtime:    rt,
		Theme:      theme,
		Difficulty: difficulty,
		Scores:     store,
		Sounds:     sounds,
		Logger:     logger,
	})
}
