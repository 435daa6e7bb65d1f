package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var (
	insightCategory string
	insightContent  string
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Manage the coach's long-term memory",
}

var insightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			insights, err := service.ActiveInsights(sqldb, id)
			if err != nil {
				return err
			}
			if len(insights) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No active insights")
				return nil
			}
			for _, ins := range insights {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t[%s]\t%s\n", ins.ID, ins.Category, ins.Content)
			}
			return nil
		})
	},
}

var insightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save an insight about the user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			insightID, err := service.AddInsight(sqldb, service.AddInsightInput{
				ProfileID: id,
				Category:  insightCategory,
				Content:   insightContent,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved insight %d\n", insightID)
			return nil
		})
	},
}

var insightDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate an insight (it is kept, not deleted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		insightID, err := parseInt64Arg("insight id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeactivateInsight(sqldb, id, insightID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deactivated insight %d\n", insightID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)
	insightCmd.AddCommand(insightListCmd, insightAddCmd, insightDeactivateCmd)

	insightAddCmd.Flags().StringVar(&insightCategory, "category", "", "Category: pattern, preference, constraint, goal_context")
	insightAddCmd.Flags().StringVar(&insightContent, "content", "", "Insight text")
	_ = insightAddCmd.MarkFlagRequired("category")
	_ = insightAddCmd.MarkFlagRequired("content")
}
