package usecase

import (
	"sort"

	"github.com/runoshun/issue-browser/internal/domain"
)

// ListRecentInput contains the parameters for listing recent repositories.
type ListRecentInput struct {
	Limit int // 0 = no limit
}

// ListRecentOutput contains the recent repositories, most recent first.
type ListRecentOutput struct {
	Repos []domain.RepoIdentifier
}

// ListRecent is the use case for listing recently browsed repositories.
type ListRecent struct {
	store domain.RecentRepository
}

// NewListRecent creates a new ListRecent use case.
func NewListRecent(store domain.RecentRepository) *ListRecent {
	return &ListRecent{store: store}
}

// Execute returns the valid entries of the recent file, most recent first.
// Entries that no longer parse as owner/repo are skipped.
func (uc *ListRecent) Execute(in ListRecentInput) (*ListRecentOutput, error) {
	file, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	entries := append([]domain.RecentRepo(nil), file.Repos...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastOpened.After(entries[j].LastOpened)
	})

	out := &ListRecentOutput{Repos: make([]domain.RepoIdentifier, 0, len(entries))}
	for _, e := range entries {
		id, err := e.Identifier()
		if err != nil {
			continue
		}
		out.Repos = append(out.Repos, id)
		if in.Limit > 0 && len(out.Repos) >= in.Limit {
			break
		}
	}
	return out, nil
}

// RecordVisitInput contains the repository that was loaded.
type RecordVisitInput struct {
	Repo domain.RepoIdentifier
}

// RecordVisit is the use case for remembering a browsed repository.
type RecordVisit struct {
	store  domain.RecentRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewRecordVisit creates a new RecordVisit use case.
func NewRecordVisit(store domain.RecentRepository, clock domain.Clock, logger domain.Logger) *RecordVisit {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RecordVisit{store: store, clock: clock, logger: logger}
}

// Execute upserts the repository with the current time.
func (uc *RecordVisit) Execute(in RecordVisitInput) error {
	if in.Repo.IsZero() {
		return domain.ErrInvalidRepoIdentifier
	}
	if err := uc.store.Touch(in.Repo.String(), uc.clock.Now()); err != nil {
		uc.logger.Warn(in.Repo.String(), "recent", "record visit: "+err.Error())
		return err
	}
	return nil
}
