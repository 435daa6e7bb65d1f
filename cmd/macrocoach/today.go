package macrocoach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's totals and live progress state",
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
			targets := service.EffectiveTargets(profile)

			now := time.Now()
			snap, err := service.BuildDailySnapshot(sqldb, id, now.Format("2006-01-02"))
			if err != nil {
				return err
			}
			state := service.ClassifyProgress(snap.Calories, snap.ProteinG, targets, now.Hour())

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", snap.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d / %d kcal\n", snap.Calories, targets.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0f / %.0f g\n", snap.ProteinG, targets.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: C %.0fg | F %.0fg\n", snap.CarbsG, snap.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Meals logged: %d; workouts: %d\n", len(snap.Meals), len(snap.Workouts))
			fmt.Fprintf(cmd.OutOrStdout(), "State: %s\n", state)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
