package tui

import "github.com/runoshun/issue-browser/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgPageLoaded is sent when both reads of a fetch cycle succeeded.
type MsgPageLoaded struct {
	Repository *domain.RepositoryInfo
	Issues     []domain.Issue
	Key        fetchKey
	Seq        uint64
}

func (MsgPageLoaded) sealed() {}

// MsgFetchFailed is sent when a fetch cycle failed as a whole.
type MsgFetchFailed struct {
	Err error
	Key fetchKey
	Seq uint64
}

func (MsgFetchFailed) sealed() {}

// MsgRecentLoaded is sent when the recent repositories are loaded.
type MsgRecentLoaded struct {
	Repos []domain.RepoIdentifier
}

func (MsgRecentLoaded) sealed() {}

// MsgError is sent when an error occurs outside a fetch.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message set by a MsgError.
// It is ignored if a different error has been shown since.
type MsgClearError struct {
	Err error
}

func (MsgClearError) sealed() {}
