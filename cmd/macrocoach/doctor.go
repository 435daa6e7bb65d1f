package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan meals: %d\n", report.OrphanMeals)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan workouts: %d\n", report.OrphanWorkouts)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan weigh-ins: %d\n", report.OrphanWeighIns)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed dates: %d\n", report.BadDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Insights over cap: %d\n", report.ExcessInsights)
			fmt.Fprintf(cmd.OutOrStdout(), "Chat rows without session: %d\n", report.DanglingSessions)
			if !report.Clean() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
