package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/issue-browser/internal/domain"
	"github.com/runoshun/issue-browser/internal/usecase"
)

// Output formats of the page command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// pageOutput is the serialized form of one fetched page.
type pageOutput struct {
	Repository *domain.RepositoryInfo `json:"repository" yaml:"repository"`
	State      string                 `json:"state" yaml:"state"`
	Issues     []domain.Issue         `json:"issues" yaml:"issues"`
	Page       int                    `json:"page" yaml:"page"`
	PerPage    int                    `json:"per_page" yaml:"per_page"`
}

// newPageCommand creates the page command for fetching one page without the TUI.
func newPageCommand(d *deps) *cobra.Command {
	var opts struct {
		State  string
		Format string
		Page   int
	}

	cmd := &cobra.Command{
		Use:   "page <owner/repo>",
		Short: "Print one page of issues",
		Long: `Fetch the repository and one page of its issues, then print them.

This runs the same fetch as the interactive browser: repository details and
issues are requested concurrently and both must succeed.`,
		Example: `  # First page of open issues
  issues page facebook/react

  # Third page of closed issues as JSON
  issues page facebook/react --state closed --page 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := domain.ParseRepoIdentifier(args[0])
			if err != nil {
				return err
			}
			state, err := domain.ParseFilterOption(opts.State)
			if err != nil {
				return err
			}
			page, err := domain.NewPage(opts.Page)
			if err != nil {
				return err
			}
			switch opts.Format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("invalid format %q: must be text, json or yaml", opts.Format)
			}

			c, err := d.get()
			if err != nil {
				return err
			}
			out, err := c.FetchPageUseCase().Execute(cmd.Context(), usecase.FetchPageInput{
				Repo:   repo,
				Filter: state,
				Page:   page,
			})
			if err != nil {
				return err
			}

			result := pageOutput{
				Repository: out.Repository,
				Issues:     out.Issues,
				State:      string(out.Query.State),
				Page:       out.Query.Page.Int(),
				PerPage:    out.Query.PerPage,
			}
			return printPage(cmd.OutOrStdout(), result, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.State, "state", "s", string(domain.FilterOpen), "Issue state: open, closed or all")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", domain.FirstPage.Int(), "Page number (1-based)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func printPage(w io.Writer, p pageOutput, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	default:
		printPageText(w, p)
		return nil
	}
}

// printPageText prints the page in tab-separated lines:
// a repository line, one line per issue, then the page line.
func printPageText(w io.Writer, p pageOutput) {
	if p.Repository != nil {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", p.Repository.FullName, p.Repository.Description)
	}
	for _, issue := range p.Issues {
		labels := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			labels = append(labels, l.Name)
		}
		_, _ = fmt.Fprintf(w, "#%d\t%s\t@%s\t%s\t%s\n",
			issue.Number, issue.State, issue.User.Login, issue.Title, strings.Join(labels, ","))
	}
	if len(p.Issues) == 0 {
		_, _ = fmt.Fprintln(w, "(no issues on this page)")
	}
	_, _ = fmt.Fprintf(w, "page %s\tstate=%s\tper_page=%d\n", strconv.Itoa(p.Page), p.State, p.PerPage)
}
