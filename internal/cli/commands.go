package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dyike/symplacheck/internal/config"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts the interactive dashboard.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "symplacheck",
		Short: "symplacheck - Sympla API checker",
		Long: `symplacheck is an interactive dashboard for the Sympla public API.
It fetches events, orders, and participants, renders them as tables and
bar charts, and exports them as CSV files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cfg.Debug = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return cfg.EnsureDirectories()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			defer logger.Sync()

			dashboard := NewDashboard(cfg, logger)
			return dashboard.Run(context.Background())
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of API calls")

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("symplacheck v1.0.0")
			fmt.Println("Sympla API checker and reporting dashboard")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Base URL:     %s\n", cfg.BaseURL)
			fmt.Printf("API version:  %s\n", valueOrUnset(cfg.APIVersion))
			fmt.Printf("Token:        %s\n", maskToken(cfg.Token))
			fmt.Printf("HTTP timeout: %s\n", cfg.HTTPTimeout)
			fmt.Printf("Export dir:   %s\n", cfg.ExportDir)
			fmt.Printf("Debug:        %t\n", cfg.Debug)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			fmt.Println("✅ Configuration is valid.")
			return nil
		},
	})

	return configCmd
}

// newLogger builds the debug logger for API call tracing. Without debug
// enabled the dashboard stays message-only.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return zapCfg.Build()
}

func maskToken(token string) string {
	if token == "" {
		return "(unset)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
