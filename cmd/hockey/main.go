// hockey is a terminal air hockey table with a computer opponent.
//
// Usage:
//
//	hockey play              - Play at the table
//	hockey serve             - Start SSH server for remote play
//	hockey scores            - Show the leaderboard and match history
//	hockey simulate          - Run a headless match and print the result
//	hockey config            - Print the table configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--config <path> - Use a custom table config YAML
//	--log <path>    - Write game logs to a file
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hockey/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hockey",
	Short: "Neon Hockey - air hockey in your terminal",
	Long: `Neon Hockey is a terminal air hockey table. Play against the computer
on three difficulty levels or against a friend on the same keyboard.

Available commands:
  play      - Play at the table
  serve     - Start SSH server for remote play
  scores    - View the leaderboard and match history
  simulate  - Run a headless match
  config    - Print the table configuration

Examples:
  hockey play
  hockey play --difficulty hard
  hockey play --mode multi
  hockey serve --ssh :2222
  hockey simulate --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the table tuning or exits.
func loadConfig() config.HockeyConfig {
	cfg, err := config.LoadHockey(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// fileLogger returns a logger for the --log file. The TUI owns the terminal,
// so without --log game logs are discarded. The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hockey",
	})
	setLevel(logger)
	return logger, func() { f.Close() }
}

// stderrLogger returns a timestamped logger on stderr.
func stderrLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	setLevel(logger)
	return logger
}

func setLevel(logger *log.Logger) {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
}
