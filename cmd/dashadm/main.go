package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/orgtools/dashadm/config/dashenv"
	"github.com/orgtools/dashadm/domain/model"
	"github.com/orgtools/dashadm/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashadm",
		Short:   "Dashboard admin CLI",
		Long:    "Manage administrator accounts across dashboard organizations",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("api-key", "", "Dashboard API key (env "+dashenv.APIKeyEnvKey+")")
	cmd.PersistentFlags().String("base-url", "", "Dashboard API base URL (env "+dashenv.BaseURLEnvKey+")")
	cmd.PersistentFlags().String("orgs", model.FilterAll, "Organization name filter ("+model.FilterAll+" or case-sensitive substring)")
	cmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout (env "+dashenv.TimeoutEnvKey+")")
	cmd.PersistentFlags().String("config", "", "Config file path (default ~/"+dashenv.ConfigDirName+"/"+dashenv.ConfigFileName+")")
	cmd.PersistentFlags().String("log-format", "", "Log format (human|text|json) (env "+dashenv.LogFormatEnvKey+")")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		flagFormat, _ := c.Flags().GetString("log-format")
		configPath, _ := c.Flags().GetString("config")
		format, err := dashenv.ResolveLogFormat(flagFormat, configPath)
		if err != nil {
			return err
		}
		level := slog.LevelInfo
		if debug, _ := c.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		l, err := logging.New(format, level)
		if err != nil {
			return err
		}
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdOrg())
	cmd.AddCommand(newCmdAdmin())
	return cmd
}

func main() {
	// Pick up DASHADM_* variables from a local .env when present.
	_ = godotenv.Load()

	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
