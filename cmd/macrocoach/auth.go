package macrocoach

import (
	"fmt"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/app"
	"github.com/mdivincenzo/macrocoach/internal/config"
	"github.com/spf13/cobra"
)

var (
	authAPIKey    string
	authModel     string
	authMaxTokens int
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Configure the coaching model backend",
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the Anthropic API key and model choice",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.DefaultConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if key := strings.TrimSpace(authAPIKey); key != "" {
			cfg.APIKey = key
		}
		if model := strings.TrimSpace(authModel); model != "" {
			cfg.Model = model
		}
		if authMaxTokens > 0 {
			cfg.MaxTokens = authMaxTokens
		}
		if err := app.EnsureDir(path); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved coach config to %s\n", path)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the coach backend is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.DefaultConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "API key: not configured")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "API key: configured")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Model: %s\n", cfg.Model)
		fmt.Fprintf(cmd.OutOrStdout(), "Max tokens: %d\n", cfg.MaxTokens)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authStatusCmd)

	authSetCmd.Flags().StringVar(&authAPIKey, "api-key", "", "Anthropic API key")
	authSetCmd.Flags().StringVar(&authModel, "model", "", "Model name")
	authSetCmd.Flags().IntVar(&authMaxTokens, "max-tokens", 0, "Max response tokens")
}
