package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var (
	workoutType     string
	workoutExercise string
	workoutDuration int
	workoutBurned   int
	workoutDate     string
	workoutListDate string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and manage workouts",
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			in := service.LogWorkoutInput{
				ProfileID:      id,
				WorkoutType:    workoutType,
				Exercise:       workoutExercise,
				CaloriesBurned: workoutBurned,
				Date:           workoutDate,
			}
			if cmd.Flags().Changed("duration") {
				in.DurationMin = &workoutDuration
			}
			workoutID, err := service.LogWorkout(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged workout %d: %s\n", workoutID, workoutType)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			workouts, err := service.WorkoutsForDate(sqldb, id, workoutListDate)
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged")
				return nil
			}
			for _, w := range workouts {
				duration := "-"
				if w.DurationMin != nil {
					duration = fmt.Sprintf("%d min", *w.DurationMin)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d kcal burned\n", w.ID, w.LoggedDate, w.WorkoutType, duration, w.CaloriesBurned)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd)

	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type, e.g. strength, run")
	workoutAddCmd.Flags().StringVar(&workoutExercise, "exercise", "", "Exercise detail")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().IntVar(&workoutBurned, "burned", 0, "Calories burned")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = workoutAddCmd.MarkFlagRequired("type")

	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
