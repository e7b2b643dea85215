package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio/internal/application/commands"
	"starfolio/internal/config"
	"starfolio/internal/domain"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List the panels and the stars that lead to them",
	Long: `List the four panels in navigation order. The panel the interactive
app opens on (default_view in the config file) is marked.

Examples:
  starfolio-cli views`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := config.Load()
		if err != nil {
			logger.Warn("using default config", zap.Error(err))
		}
		listCmd := commands.NewListViewsCommand(GetContent(), domain.ViewID(cfg.DefaultView))
		entries, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for i, e := range entries {
			marker := "  "
			if e.Active {
				marker = good.Sprint("▸ ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%d %-10s %-20s %s %s\n",
				marker, i+1, accent.Sprint(e.View), e.Title, e.Star, subtle.Sprintf("(%s)", e.Group))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewsCmd)
}
