package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"starfolio/internal/adapters/browser"
	"starfolio/internal/application/commands"
)

var linksOpen string

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the résumé and profile links",
	Long: `List the résumé and profile links shown on the home panel.
--open opens one of them, by kind, in the system browser.

Examples:
  starfolio-cli links
  starfolio-cli links --open github`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		links, err := commands.NewListLinksCommand(GetContent()).Execute(ctx)
		if err != nil {
			return err
		}

		if linksOpen == "" {
			for _, l := range links {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", accent.Sprint(l.Kind), l.URL)
			}
			return nil
		}

		for _, l := range links {
			if string(l.Kind) != linksOpen {
				continue
			}
			if err := browser.NewOpener().Open(l.URL); err != nil {
				return err
			}
			logger.Info("opened link", zap.String("kind", linksOpen), zap.String("url", l.URL))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", good.Sprint("Opened"), l.URL)
			return nil
		}
		return fmt.Errorf("no %s link", linksOpen)
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.Flags().StringVar(&linksOpen, "open", "", "open the link of this kind (resume, github, linkedin, email)")
}
