package main

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stuffbucket/linewire/internal/logging"
	"github.com/stuffbucket/linewire/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lw",
	Short: "Linewire - line protocol toolkit for serial-attached devices",
	Long: `Linewire serves and speaks a line-oriented key=value command protocol.
A device profile declares the states a device exposes and the commands
peers may send; lw turns it into a running protocol endpoint.`,
	Version: version,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logging.SetLevel(charmlog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lw version %s (commit: %s, built: %s)\n", version, commit, date))

	// Prepend the banner to help output when running interactively.
	defaultHelp := rootCmd.HelpTemplate()
	rootCmd.SetHelpTemplate("{{banner}}" + defaultHelp)
	cobra.AddTemplateFunc("banner", ui.Banner)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}
