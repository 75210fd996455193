package main

import (
	"os"

	"github.com/kischiman/sanctuary-timeline/internal/client"
	"github.com/kischiman/sanctuary-timeline/internal/ui"
	"github.com/spf13/cobra"
)

var (
	serverURL  string
	jsonOutput bool
	noColor    bool

	timelineClient client.TimelineClient
)

func defaultServerURL() string {
	if s := os.Getenv("TIMELINE_SERVER"); s != "" {
		return s
	}
	if u := activeProfileURL(); u != "" {
		return u
	}
	return "http://localhost:3000"
}

var rootCmd = &cobra.Command{
	Use:   "timeline <command>",
	Short: "CLI client for the residency timeline server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		timelineClient = client.NewHTTPClient(serverURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if timelineClient != nil {
			timelineClient.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "timeline", Title: "Timeline:"},
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Timeline
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(slotCmd)
	rootCmd.AddCommand(configCmd)

	// Views
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(watchCmd)

	// System
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
