package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hockey/internal/config"
	"github.com/vovakirdan/tui-hockey/internal/hockey"
	"github.com/vovakirdan/tui-hockey/internal/platform/tui"
	"github.com/vovakirdan/tui-hockey/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresHistory    bool
	flagScoresBrowse     bool
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and match history",
	Long: `Display the top 10 single player results, the win/loss record against
the computer, or the most recent matches.

Examples:
  hockey scores
  hockey scores --difficulty hard
  hockey scores --history
  hockey scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one level: easy, medium, hard")
	scoresCmd.Flags().BoolVar(&flagScoresHistory, "history", false, "Show recent matches instead of the leaderboard")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the leaderboard and the stored best")
}

func runScores(_ *cobra.Command, _ []string) {
	var difficulty string
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(hockey.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
	case flagScoresBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, hockey.GameID, loadConfig().AI.Profiles, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
	case flagScoresHistory:
		printHistory(store)
	default:
		printLeaderboard(store, difficulty)
	}
}

func printLeaderboard(store *storage.Store, difficulty string) {
	scores, err := store.TopScores(hockey.GameID, difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "all levels"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - Neon Hockey (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hockey play' and beat the computer to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Goals", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(hockey.GameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if st, err := store.SinglePlayerStats(difficulty); err == nil && st.Played > 0 {
		fmt.Printf("Record vs computer: %d won, %d lost, %d drawn (goals %d:%d)\n",
			st.Wins, st.Losses, st.Draws, st.GoalsFor, st.GoalsAgainst)
	}
}

func printHistory(store *storage.Store) {
	matches, err := store.RecentMatches(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Matches - Neon Hockey")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %-6s  %s\n", "Date", "Mode", "Level", "Score", "Result", "Time")
	fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %-6s  %s\n", "----", "----", "-----", "-----", "------", "----")

	for _, r := range matches {
		level := r.Difficulty
		if r.Mode != hockey.ModeSingle.String() {
			level = "-"
		}
		fmt.Printf("  %-16s  %-6s  %-8s  %-6s  %-6s  %d:%02d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Mode,
			level,
			fmt.Sprintf("%d-%d", r.Score1, r.Score2),
			r.Winner,
			r.DurationSecs/60, r.DurationSecs%60,
		)
	}
}
