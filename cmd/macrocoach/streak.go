package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and best target streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			state := service.StreakForProfile(sqldb, id)
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d days\n", state.CurrentStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Best streak: %d days\n", state.BestStreak)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
