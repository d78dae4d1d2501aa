package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abrandt/huddle/internal/app"
	"github.com/abrandt/huddle/internal/backend"
	"github.com/abrandt/huddle/internal/config"
	"github.com/abrandt/huddle/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "huddle",
	Short: "TUI client for your team's messaging workspace",
	Long: `Huddle is a terminal client for a team messaging workspace: channels and
direct messages in a sidebar, a live-updating message pane, and a composer
with formatting, emoji, and mentions.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("huddle %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("huddle %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.GetBackendURL() == "" {
		return fmt.Errorf("no backend configured: set backend_url in ~/.huddle/config.json")
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	client := backend.NewHTTPClient(cfg.GetBackendURL(), cfg.GetAnonKey())

	// Create and run the app
	m := app.New(cfg, client, version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
