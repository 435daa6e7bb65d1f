package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var (
	weightKg      float64
	weightBodyFat float64
	weightDate    string
	weightFrom    string
	weightTo      string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and review weigh-ins",
}

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			in := service.LogWeighInInput{
				ProfileID: id,
				WeightKg:  weightKg,
				Date:      weightDate,
			}
			if cmd.Flags().Changed("body-fat") {
				in.BodyFatPct = &weightBodyFat
			}
			weighInID, err := service.LogWeighIn(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged weigh-in %d: %.1f kg\n", weighInID, weightKg)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weigh-ins in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if weightFrom == "" || weightTo == "" {
			return fmt.Errorf("--from and --to are required")
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			weighIns, err := service.WeighInsForDateRange(sqldb, id, weightFrom, weightTo)
			if err != nil {
				return err
			}
			if len(weighIns) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weigh-ins logged")
				return nil
			}
			for _, w := range weighIns {
				if w.BodyFatPct != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f kg\t%.1f%% bf\n", w.ID, w.LoggedDate, w.WeightKg, *w.BodyFatPct)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f kg\n", w.ID, w.LoggedDate, w.WeightKg)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightKg, "kg", 0, "Weight in kilograms")
	weightAddCmd.Flags().Float64Var(&weightBodyFat, "body-fat", 0, "Body fat percentage")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = weightAddCmd.MarkFlagRequired("kg")

	weightListCmd.Flags().StringVar(&weightFrom, "from", "", "Start date YYYY-MM-DD")
	weightListCmd.Flags().StringVar(&weightTo, "to", "", "End date YYYY-MM-DD")
}
