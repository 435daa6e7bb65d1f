package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var (
	mealName     string
	mealCalories int
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealTime     string
	mealDate     string
	mealListDate string
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and manage meals",
}

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			mealID, err := service.LogMeal(sqldb, service.LogMealInput{
				ProfileID: id,
				Name:      mealName,
				Calories:  mealCalories,
				ProteinG:  mealProtein,
				CarbsG:    mealCarbs,
				FatG:      mealFat,
				TimeOfDay: mealTime,
				Date:      mealDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal %d: %s (%d kcal)\n", mealID, mealName, mealCalories)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			meals, err := service.MealsForDate(sqldb, id, mealListDate)
			if err != nil {
				return err
			}
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged")
				return nil
			}
			for _, m := range meals {
				slot := m.TimeOfDay
				if slot == "" {
					slot = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d kcal\tP %.0fg C %.0fg F %.0fg\n", m.ID, m.LoggedDate, slot, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mealID, err := parseInt64Arg("meal id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteMeal(sqldb, id, mealID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %d\n", mealID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal description")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein (g)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carbs (g)")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat (g)")
	mealAddCmd.Flags().StringVar(&mealTime, "time", "", "Time of day: breakfast, lunch, dinner, snack")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = mealAddCmd.MarkFlagRequired("name")
	_ = mealAddCmd.MarkFlagRequired("calories")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
