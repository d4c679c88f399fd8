package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/issue-browser/internal/usecase"
)

// newRecentCommand creates the recent command.
func newRecentCommand(d *deps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently browsed repositories",
		Long: `List repositories opened in the browser, most recent first.

The number of entries defaults to [recent].limit from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.get()
			if err != nil {
				return err
			}
			uc := c.ListRecentUseCase()
			if uc == nil {
				return nil
			}
			if !cmd.Flags().Changed("limit") {
				limit = c.RecentLimit()
			}
			out, err := uc.Execute(usecase.ListRecentInput{Limit: limit})
			if err != nil {
				return err
			}
			for _, repo := range out.Repos {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), repo.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of entries (0 = no limit)")

	return cmd
}
