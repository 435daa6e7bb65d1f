package macrocoach

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/app"
	"github.com/mdivincenzo/macrocoach/internal/coach"
	"github.com/mdivincenzo/macrocoach/internal/config"
	"github.com/mdivincenzo/macrocoach/internal/service"
	"github.com/spf13/cobra"
)

var coachSession string

var coachCmd = &cobra.Command{
	Use:   "coach <message>",
	Short: "Talk to the coach; it can log meals, workouts, and weigh-ins for you",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		configPath, err := app.DefaultConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		client, err := coach.NewClient(cfg)
		if err != nil {
			return err
		}

		return withDB(func(sqldb *sql.DB) error {
			id, err := resolveProfileID(sqldb)
			if err != nil {
				return err
			}
			session := coachSession
			if session == "" {
				session = service.NewChatSessionID()
			}
			reply, err := client.Chat(cmd.Context(), sqldb, id, session, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(coachCmd)
	coachCmd.Flags().StringVar(&coachSession, "session", "", "Chat session id (default: new session)")
}
