package macrocoach

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileCalories int
	profileProtein  float64
	profileCarbs    float64
	profileFat      float64
	profileGoal     string
	profileNotes    string
	profileStart    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage tracked profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a profile and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in := service.CreateProfileInput{
				Name:          profileName,
				Goal:          profileGoal,
				CoachingNotes: profileNotes,
				StartDate:     profileStart,
			}
			if cmd.Flags().Changed("calories") {
				in.DailyCalories = &profileCalories
			}
			if cmd.Flags().Changed("protein") {
				in.DailyProtein = &profileProtein
			}
			if cmd.Flags().Changed("carbs") {
				in.DailyCarbs = &profileCarbs
			}
			if cmd.Flags().Changed("fat") {
				in.DailyFat = &profileFat
			}
			id, err := service.CreateProfile(sqldb, in)
			if err != nil {
				return err
			}
			if err := service.SetActiveProfile(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %d (%s), now active\n", id, profileName)
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update targets, goal, or coaching notes on the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			in := service.UpdateProfileInput{ID: id}
			if cmd.Flags().Changed("calories") {
				in.DailyCalories = &profileCalories
			}
			if cmd.Flags().Changed("protein") {
				in.DailyProtein = &profileProtein
			}
			if cmd.Flags().Changed("carbs") {
				in.DailyCarbs = &profileCarbs
			}
			if cmd.Flags().Changed("fat") {
				in.DailyFat = &profileFat
			}
			if cmd.Flags().Changed("goal") {
				in.Goal = &profileGoal
			}
			if cmd.Flags().Changed("notes") {
				in.CoachingNotes = &profileNotes
			}
			if err := service.UpdateProfile(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %d\n", id)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile's targets and goal",
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
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %d: %s\n", profile.ID, profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", service.EffectiveGoal(profile))
			fmt.Fprintf(cmd.OutOrStdout(), "Targets: %d kcal | P %.0fg | C %.0fg | F %.0fg\n", targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
			if !service.HasExplicitTargets(profile) {
				fmt.Fprintln(cmd.OutOrStdout(), "Note: calorie/protein targets are defaults; set them explicitly to enable streaks")
			}
			if profile.CoachingNotes != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Coaching notes: %s\n", profile.CoachingNotes)
			}
			return nil
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("profile id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.GetProfile(sqldb, id); err != nil {
				return err
			}
			if err := service.SetActiveProfile(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active profile is now %d\n", id)
			return nil
		})
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profiles, err := service.ListProfiles(sqldb)
			if err != nil {
				return err
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Name, service.EffectiveGoal(&p))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd, profileSetCmd, profileShowCmd, profileUseCmd, profileListCmd)

	for _, c := range []*cobra.Command{profileCreateCmd, profileSetCmd} {
		c.Flags().IntVar(&profileCalories, "calories", 0, "Daily calorie target")
		c.Flags().Float64Var(&profileProtein, "protein", 0, "Daily protein target (g)")
		c.Flags().Float64Var(&profileCarbs, "carbs", 0, "Daily carb target (g)")
		c.Flags().Float64Var(&profileFat, "fat", 0, "Daily fat target (g)")
		c.Flags().StringVar(&profileGoal, "goal", "", "Goal direction: lose, maintain, or gain")
		c.Flags().StringVar(&profileNotes, "notes", "", "Free-text coaching notes")
	}
	profileCreateCmd.Flags().StringVar(&profileName, "name", "", "Profile name")
	profileCreateCmd.Flags().StringVar(&profileStart, "start", "", "Tracking start date YYYY-MM-DD")
	_ = profileCreateCmd.MarkFlagRequired("name")
}
