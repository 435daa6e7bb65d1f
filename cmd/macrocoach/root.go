package macrocoach

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath    string
	profileID int64
)

var rootCmd = &cobra.Command{
	Use:   "macrocoach",
	Short: "macrocoach tracks meals, workouts, and weight with an AI coach",
	Long:  "macrocoach is a local-first nutrition and fitness tracker. It aggregates your logged meals, workouts, and weigh-ins into daily snapshots, streaks, and behavioral patterns, and feeds them to a coaching model so its advice is grounded in your actual data.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().Int64Var(&profileID, "profile", 0, "Profile id (default: active profile)")
}
