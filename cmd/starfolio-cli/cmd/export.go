package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio/internal/adapters/snapshot"
	"starfolio/internal/application/commands"
)

var (
	exportOut     string
	exportFormat  string
	exportActive  string
	exportHovered string
	exportSky     string
	exportSize    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the star map as SVG or PNG",
	Long: `Render a constellation for a given active panel and write it as SVG or PNG.
The format defaults to the --out extension, then to svg. Without --out the
image is written to stdout.

Examples:
  starfolio-cli export --out nav.svg
  starfolio-cli export --active writings --hovered projects --out nav.png
  starfolio-cli export --sky background --format svg > background.svg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		format, err := snapshot.FormatFor(exportFormat, exportOut)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		var file *os.File
		if exportOut != "" && exportOut != "-" {
			file, err = os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			w = file
		}

		exp := commands.NewExportSkyCommand(GetContent(), snapshot.NewExporter(exportSize), w, exportSky, format, exportActive)
		exp.Hovered = exportHovered
		result, err := exp.Execute(ctx)
		if file != nil {
			if cerr := file.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("failed to write %s: %w", exportOut, cerr)
			}
		}
		if err != nil {
			return err
		}

		logger.Info("exported",
			zap.String("sky", result.Sky),
			zap.String("format", result.Format),
			zap.String("active", result.Active.String()),
			zap.Int("lines", result.Lines),
			zap.Int("markers", result.Markers))

		if file != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s, %d lines, %d stars, %d labels)\n",
				good.Sprint("Wrote"), exportOut, result.Format, result.Lines, result.Markers, result.Labels)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "svg or png (default from --out, then svg)")
	exportCmd.Flags().StringVarP(&exportActive, "active", "a", "home", "active panel")
	exportCmd.Flags().StringVar(&exportHovered, "hovered", "", "panel whose star is hovered")
	exportCmd.Flags().StringVar(&exportSky, "sky", "nav", "constellation to draw (nav or background)")
	exportCmd.Flags().IntVar(&exportSize, "size", snapshot.DefaultSize, "image width in pixels")
}
