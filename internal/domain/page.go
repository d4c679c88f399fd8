package domain

import "fmt"

// PerPage is the fixed number of issues requested per page.
const PerPage = 5

// Page is a 1-indexed cursor into the issue list.
type Page int

// FirstPage is the page every browser starts on.
const FirstPage Page = 1

// NewPage validates n as a page number.
func NewPage(n int) (Page, error) {
	if n < int(FirstPage) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPage, n)
	}
	return Page(n), nil
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p > FirstPage
}

// Prev returns the previous page. It never goes below FirstPage.
func (p Page) Prev() Page {
	if !p.HasPrev() {
		return FirstPage
	}
	return p - 1
}

// Next returns the following page. There is no upper bound; the API
// answers an empty page past the end.
func (p Page) Next() Page {
	return p + 1
}

// Int returns the page number as an int.
func (p Page) Int() int {
	return int(p)
}

// IssueQuery holds the parameters of an issues listing request.
type IssueQuery struct {
	State   FilterOption
	Page    Page
	PerPage int
}

// NewIssueQuery builds the query for one browser page.
func NewIssueQuery(state FilterOption, page Page) IssueQuery {
	return IssueQuery{State: state, Page: page, PerPage: PerPage}
}
