package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/games/airhockey"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
	"github.com/vovakirdan/tui-hockey/internal/platform/tui"
	"github.com/vovakirdan/tui-hockey/internal/storage"
)

var (
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play at the table",
	Long: `Open the table. Without --mode or --difficulty you start at the menu.

Controls:
  Mouse              - Move your paddle (multi player: top half moves P2)
  Arrows             - Nudge the bottom paddle
  WASD               - Nudge the top paddle (multi player)
  P/Esc              - Pause
  Double-click centre - Pause / resume
  Enter/Space        - Select
  R                  - Play again (after game over)
  Tab                - Scoreboard
  Ctrl+S             - Screenshot
  Q/Ctrl+C           - Quit

Examples:
  hockey play
  hockey play --difficulty hard
  hockey play --mode multi
  hockey play --config ./my-table.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "single", "Start directly: single or multi")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Computer level: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := fileLogger()
	defer closeLog()

	opts := []airhockey.Option{airhockey.WithLogger(logger)}

	// Skip the menu only when asked to
	if cmd.Flags().Changed("mode") || cmd.Flags().Changed("difficulty") {
		mode, err := hockey.ParseMode(flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, airhockey.WithStart(mode, difficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := airhockey.New(cfg, opts...)
	runErr := tui.Run(game, store, runtime,
		tui.WithModelLogger(logger),
		tui.WithProfiles(cfg.AI.Profiles),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
