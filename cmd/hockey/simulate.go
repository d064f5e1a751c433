package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/core"
	"github.com/vovakirdan/tui-hockey/internal/games/airhockey"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
)

var (
	flagSimTicks      int
	flagSimCols       int
	flagSimRows       int
	flagSimMode       string
	flagSimDifficulty string
	flagSimFrame      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless match and print the result",
	Long: `Run a match without a terminal UI. The bottom paddle (and the top one in
multi player) is driven by a simple scripted chaser through the same key
input a player would use. Time is simulated, so a 90 second match takes a
fraction of a second and --seed makes the run reproducible.

Examples:
  hockey simulate
  hockey simulate --difficulty hard --seed 7
  hockey simulate --mode multi --ticks 3600 --frame`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Maximum ticks to run (0 = until the match ends)")
	simulateCmd.Flags().IntVar(&flagSimCols, "cols", 50, "Virtual screen width in cells")
	simulateCmd.Flags().IntVar(&flagSimRows, "rows", 34, "Virtual screen height in cells")
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "single", "single or multi")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "medium", "Computer level: easy, medium, hard")
	simulateCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the final frame")
}

// simClock advances only when the simulation says so.
type simClock struct {
	now time.Time
}

func (c *simClock) Now() time.Time { return c.now }

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := stderrLogger("hockey-sim")

	mode, err := hockey.ParseMode(flagSimMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := max(flagFPS, 1)
	maxTicks := flagSimTicks
	if maxTicks <= 0 {
		// Enough for a timed match; multi player has no clock.
		maxTicks = (cfg.Match.DurationSecs + 1) * fps
	}

	clock := &simClock{now: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}
	game := airhockey.New(cfg,
		airhockey.WithLogger(logger),
		airhockey.WithClock(clock),
		airhockey.WithStart(mode, difficulty),
	)
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagSimCols,
		ScreenH:  flagSimRows,
		TickRate: fps,
		Seed:     seed,
	})

	interval := time.Second / time.Duration(fps)
	ticks := 0
	for ticks < maxTicks {
		snap := game.Snapshot()
		in := core.NewMultiInputFrame()
		in.Update(core.Player1, chase(snap, core.Player1, cfg.Display.KeyStep))
		if mode == hockey.ModeMulti {
			in.Update(core.Player2, chase(snap, core.Player2, cfg.Display.KeyStep))
		}

		res := game.Step(in)
		clock.now = clock.now.Add(interval)
		ticks++
		if res.State.GameOver {
			break
		}
	}

	snap := game.Snapshot()
	fmt.Printf("seed:       %d\n", seed)
	fmt.Printf("ticks:      %d\n", ticks)
	fmt.Printf("mode:       %s\n", snap.Mode)
	if snap.Mode == hockey.ModeSingle {
		fmt.Printf("difficulty: %s\n", snap.Difficulty)
		fmt.Printf("time left:  %s\n", airhockey.FormatClock(snap.TimeLeft))
	}
	fmt.Printf("score:      %d - %d\n", snap.Score1, snap.Score2)
	fmt.Printf("status:     %s\n", snap.Status)
	if snap.Winner != hockey.WinnerNone {
		fmt.Printf("result:     %s\n", airhockey.WinnerBanner(snap.Mode, snap.Winner))
	}

	if flagSimFrame {
		screen := core.NewScreen(flagSimCols, flagSimRows)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}
}

// chase steers a paddle at the puck while it is in the paddle's half and
// back towards its own goal otherwise.
func chase(snap hockey.Snapshot, side core.PlayerID, step float64) func(*core.InputFrame) {
	pad, guard := snap.P1, snap.Dims.Height*0.85
	inHalf := snap.Puck.Y > snap.Dims.Height/2
	if side == core.Player2 {
		pad, guard = snap.P2, snap.Dims.Height*0.15
		inHalf = !inHalf
	}

	target := core.V(snap.Puck.X, guard)
	if inHalf {
		target = snap.Puck
	}
	d := target.Sub(pad)

	return func(f *core.InputFrame) {
		switch {
		case d.X < -step/2:
			f.Set(core.ActionLeft)
		case d.X > step/2:
			f.Set(core.ActionRight)
		}
		switch {
		case d.Y < -step/2:
			f.Set(core.ActionUp)
		case d.Y > step/2:
			f.Set(core.ActionDown)
		}
	}
}
