package domain

import "strconv"

// Label is an issue label.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"` // Hex without '#', as returned by the API
	ID    int64  `json:"id" yaml:"id"`
}

// Issue represents a GitHub issue as listed by the issues endpoint.
// Fields are ordered to minimize memory padding.
type Issue struct {
	User    User    `json:"user" yaml:"user"`
	Title   string  `json:"title" yaml:"title"`
	HTMLURL string  `json:"html_url" yaml:"html_url"`
	State   string  `json:"state" yaml:"state"`
	Labels  []Label `json:"labels" yaml:"labels"`
	ID      int64   `json:"id" yaml:"id"`
	Number  int     `json:"number" yaml:"number"`
}

// Key returns the stable render key of the issue.
func (i Issue) Key() string {
	return strconv.FormatInt(i.ID, 10)
}

// IsOpen reports whether the issue is open.
func (i Issue) IsOpen() bool {
	return i.State == "open"
}
