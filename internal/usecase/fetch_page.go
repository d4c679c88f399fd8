package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/runoshun/issue-browser/internal/domain"
)

// FetchPageInput contains the parameters for fetching one browser page.
type FetchPageInput struct {
	Filter domain.FilterOption
	Repo   domain.RepoIdentifier
	Page   domain.Page
}

// FetchPageOutput contains the repository and the issues of one fetch cycle.
type FetchPageOutput struct {
	Repository *domain.RepositoryInfo
	Issues     []domain.Issue
	Query      domain.IssueQuery
}

// FetchPage is the use case for loading the repository header and one page of issues.
type FetchPage struct {
	source domain.IssueSource
	logger domain.Logger
}

// NewFetchPage creates a new FetchPage use case.
func NewFetchPage(source domain.IssueSource, logger domain.Logger) *FetchPage {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &FetchPage{
		source: source,
		logger: logger,
	}
}

// Execute issues both reads concurrently and returns once both succeed.
// If either fails the other is canceled and the whole fetch fails.
func (uc *FetchPage) Execute(ctx context.Context, in FetchPageInput) (*FetchPageOutput, error) {
	if in.Repo.IsZero() {
		return nil, domain.ErrInvalidRepoIdentifier
	}
	if _, err := domain.ParseFilterOption(string(in.Filter)); err != nil {
		return nil, err
	}
	if _, err := domain.NewPage(in.Page.Int()); err != nil {
		return nil, err
	}

	scope := in.Repo.String()
	query := domain.NewIssueQuery(in.Filter, in.Page)
	uc.logger.Debug(scope, "fetch", fmt.Sprintf("start state=%s page=%d", query.State, query.Page))

	var (
		repo   *domain.RepositoryInfo
		issues []domain.Issue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.source.GetRepository(gctx, in.Repo)
		if err != nil {
			return err
		}
		repo = r
		return nil
	})
	g.Go(func() error {
		list, err := uc.source.ListIssues(gctx, in.Repo, query)
		if err != nil {
			return err
		}
		issues = list
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error(scope, "fetch", err.Error())
		return nil, err
	}

	if issues == nil {
		issues = []domain.Issue{}
	}
	uc.logger.Info(scope, "fetch", fmt.Sprintf("loaded %d issues state=%s page=%d", len(issues), query.State, query.Page))

	return &FetchPageOutput{
		Repository: repo,
		Issues:     issues,
		Query:      query,
	}, nil
}
