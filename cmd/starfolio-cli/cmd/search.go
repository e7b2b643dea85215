package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"starfolio/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the portfolio",
	Long: `Search skills, projects, technical topics and writing topics.

Results are ranked by relevance using fuzzy matching.

Examples:
  starfolio-cli search koopman
  starfolio-cli search slam`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		searchCmd := commands.NewSearchCommand(GetContent(), query)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found")
			return nil
		}

		for _, r := range results {
			where := r.View.String()
			if r.Tab != "" {
				where += "/" + r.Tab
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\n", accent.Sprint(where), r.Title, subtle.Sprint(r.Text))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
