package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio/internal/adapters/static"
	"starfolio/internal/logging"
	"starfolio/internal/ports"
)

var (
	verbose bool
	content ports.ContentSource
	logger  = zap.NewNop()
)

// Listing colors
var (
	accent = color.New(color.FgHiBlue, color.Bold)
	subtle = color.New(color.FgHiBlack)
	good   = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "starfolio-cli",
	Short: "Browse the starfolio portfolio from the command line",
	Long: `starfolio-cli prints the portfolio panels, lists the constellation that
navigates them, and exports the star map as SVG or PNG.

The interactive version is the starfolio binary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l

		src, err := static.Load()
		if err != nil {
			return err
		}
		content = src
		logger.Debug("content loaded")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging to stderr")
}

// GetContent returns the loaded portfolio content
func GetContent() ports.ContentSource {
	return content
}
