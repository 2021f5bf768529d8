// Package main provides navdemo, a small application demonstrating the
// navstack navigation model: a push/pop stack of screens, sheet /
// full-screen cover / popover presentations, and alert and confirmation
// dialog overlays, all driven from one navigation state container.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quayside/navstack/pkg/config"
	"github.com/quayside/navstack/pkg/logging"
	"github.com/quayside/navstack/pkg/navigation"
	"github.com/quayside/navstack/pkg/tui"
)

const version = "0.1.0"

var (
	flagConfigPath string
	flagThemeFile  string
	flagInitPath   string
	flagVersion    bool
)

var rootCmd = &cobra.Command{
	Use:   "navdemo",
	Short: "Interactive demo of the navstack navigation model",
	Long: `navdemo runs a terminal application whose screens, sheets, covers,
popovers, alerts and confirmation dialogs are all driven by a single
navigation state container.

Keys: p push profile, g push gallery, s sheet, f cover, o popover,
a alert, d dialog, r pop to root, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			fmt.Printf("navdemo v%s\n", version)
			return nil
		}
		return run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "config file path (default ~/.navstack/config.json)")
	rootCmd.Flags().StringVar(&flagThemeFile, "themes", "", "YAML file with additional themes")
	rootCmd.Flags().StringVar(&flagInitPath, "path", "", "initial navigation path, comma-separated destination IDs (e.g. profile/123,settings)")
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "print version and exit")
}

func run() error {
	if err := config.Initialize(flagConfigPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	ui := config.GetUI()
	tui.SetTheme(config.ResolveTheme(ui.GetTheme(), flagThemeFile))

	logger, err := logging.NewLogger("navdemo")
	if err != nil {
		// Fallback logger already reported the problem; keep going.
		logger.Warnf("file logging unavailable: %v", err)
	}
	defer logger.Close()

	state := navigation.NewState()
	if flagInitPath != "" {
		state.SetPath(parsePath(flagInitPath))
	}

	app := newApp(state, logger, ui)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logger.Infof("session %s starting", logger.SessionID())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	logger.Infof("session ended")
	return nil
}

// parsePath replays a deep link: a comma-separated list of destination IDs
// becomes the initial path, oldest first.
func parsePath(raw string) []navigation.Destination {
	var path []navigation.Destination
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if kind, param, ok := strings.Cut(id, "/"); ok {
			path = append(path, navigation.NewDestParam(kind, param))
		} else {
			path = append(path, navigation.NewDest(id))
		}
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
