// Package root contains the root command for the application
package root

import (
	"fjacquet/bank-insights/internal/config"
	"fjacquet/bank-insights/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-insights",
		Short: "Deterministic transaction analytics: categorization, fraud scoring, and spending forecasts.",
		Long: `bank-insights analyzes account transaction exports and produces JSON reports:
keyword-based spending categorization, heuristic fraud risk scoring, and a
linear-regression 30-day spending forecast.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-insights!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
	}

	// SharedFlags are common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Account flags for commands that need the account snapshot
	Balance       string
	AccountNumber string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input transaction export (CSV or JSON)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json or csv (default from config)")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OutputFormat resolves the effective output format from flag and config.
func OutputFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if Cfg != nil {
		return Cfg.Output.Format
	}
	return "json"
}
