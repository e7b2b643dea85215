package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio/internal/application/commands"
)

var (
	showTab   string
	showRaw   bool
	showWidth int
)

var showCmd = &cobra.Command{
	Use:   "show [view]",
	Short: "Print a panel",
	Long: `Print a panel as markdown, rendered for the terminal unless --raw is set.
Without a view the home panel is shown. --tab picks a writings shelf.

Examples:
  starfolio-cli show
  starfolio-cli show projects
  starfolio-cli show writings --tab games
  starfolio-cli show technical --raw > technical.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		view := ""
		if len(args) == 1 {
			view = args[0]
		}
		panel, err := commands.NewShowPanelCommand(GetContent(), view, showTab).Execute(ctx)
		if err != nil {
			return err
		}
		logger.Debug("panel rendered", zap.String("view", panel.View.String()), zap.String("tab", panel.Tab))

		if showRaw {
			fmt.Fprint(cmd.OutOrStdout(), panel.Markdown)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(showWidth),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		out, err := renderer.Render(panel.Markdown)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showTab, "tab", "t", "", "writings shelf (books or games)")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print markdown without terminal styling")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 80, "wrap width")
}
