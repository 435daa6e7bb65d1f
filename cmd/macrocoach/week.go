package macrocoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the trailing-week report and detected patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			profile, err := service.GetProfile(sqldb, id)
			if err != nil {
				return err
			}
			report, err := service.BuildWeeklyReport(sqldb, id, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Window: %s to %s\n", report.FromDate, report.ToDate)
			fmt.Fprintf(cmd.OutOrStdout(), "Days tracked: %d\n", report.DaysTracked)
			if report.DaysTracked > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Averages: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n", report.AvgCalories, report.AvgProteinG, report.AvgCarbsG, report.AvgFatG)
				fmt.Fprintf(cmd.OutOrStdout(), "Hit calories %d days, protein %d days, both %d days\n", report.DaysHitCalories, report.DaysHitProtein, report.DaysHitBoth)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workouts: %d\n", report.WorkoutCount)

			patterns := service.DetectPatterns(report.Days, service.EffectiveTargets(profile))
			if len(patterns) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Patterns:")
				for _, p := range patterns {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", p)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
