// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/expense-tracker/internal/config"
	"fjacquet/expense-tracker/internal/container"
	"fjacquet/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.GetLogger()

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "Turn free-form expense text into categorized, tagged records.",
		Long: `expense-tracker interprets free-form expense text ("Lunch at campus cafe $8")
into structured records: amount, description, category, tags and location.
Records can be stored, queried, summarized and exported, or served over HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			Cfg = cfg
			Log = config.NewLogger(cfg)
			logging.SetDefault(Log)
			return nil
		},
	}
)

// NewContainer wires application dependencies for a command.
func NewContainer(opts container.Options) (*container.Container, error) {
	return container.NewContainerWithOptions(Cfg, opts)
}
