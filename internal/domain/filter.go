package domain

import "fmt"

// FilterOption constrains which issues are requested by their state.
type FilterOption string

// Filter options, in selector order.
const (
	FilterOpen   FilterOption = "open"
	FilterClosed FilterOption = "closed"
	FilterAll    FilterOption = "all"
)

// FilterOptions returns all filter options in selector order.
func FilterOptions() []FilterOption {
	return []FilterOption{FilterOpen, FilterClosed, FilterAll}
}

// ParseFilterOption converts a string into a FilterOption.
func ParseFilterOption(s string) (FilterOption, error) {
	switch FilterOption(s) {
	case FilterOpen, FilterClosed, FilterAll:
		return FilterOption(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Display returns the label shown in the filter selector.
func (f FilterOption) Display() string {
	switch f {
	case FilterOpen:
		return "Open"
	case FilterClosed:
		return "Closed"
	case FilterAll:
		return "All"
	}
	return string(f)
}

// Next returns the option after f, wrapping around.
func (f FilterOption) Next() FilterOption {
	switch f {
	case FilterOpen:
		return FilterClosed
	case FilterClosed:
		return FilterAll
	case FilterAll:
		return FilterOpen
	}
	return FilterOpen
}

// Prev returns the option before f, wrapping around.
func (f FilterOption) Prev() FilterOption {
	switch f {
	case FilterOpen:
		return FilterAll
	case FilterClosed:
		return FilterOpen
	case FilterAll:
		return FilterClosed
	}
	return FilterOpen
}
