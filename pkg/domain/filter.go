package domain

import "strings"

// Dimension names one independently settable filter axis.
type Dimension string

const (
	DimensionSearch     Dimension = "searchQuery"
	DimensionCategory   Dimension = "category"
	DimensionLocation   Dimension = "location"
	DimensionDateRange  Dimension = "dateRange"
	DimensionPriceRange Dimension = "priceRange"
)

// FilterState is the user's current search text and filter selection.
// It is a value: updates return a new FilterState.
type FilterState struct {
	SearchQuery string     `json:"searchQuery"`
	Category    Category   `json:"category"`
	Location    Zone       `json:"location"`
	DateRange   DateRange  `json:"dateRange"`
	PriceRange  PriceRange `json:"priceRange"`
}

func NewFilterState() FilterState {
	return FilterState{
		Category:   All,
		Location:   All,
		DateRange:  All,
		PriceRange: All,
	}
}

// IsAll reports whether a dimension value places no constraint.
func IsAll(v string) bool {
	return v == "" || v == All
}

// With returns a copy of s with only the named dimension replaced.
func (s FilterState) With(dim Dimension, value string) (FilterState, error) {
	switch dim {
	case DimensionSearch:
		s.SearchQuery = value
	case DimensionCategory:
		s.Category = Category(value)
	case DimensionLocation:
		s.Location = Zone(value)
	case DimensionDateRange:
		s.DateRange = DateRange(value)
	case DimensionPriceRange:
		s.PriceRange = PriceRange(value)
	default:
		return s, ErrUnknownDimension
	}
	return s, nil
}

// Cleared returns a state with every dimension reset and no search text.
func (s FilterState) Cleared() FilterState {
	return NewFilterState()
}

// Query returns the trimmed search text.
func (s FilterState) Query() string {
	return strings.TrimSpace(s.SearchQuery)
}

// HasActiveFilters reports whether any non-text dimension constrains the
// result.
func (s FilterState) HasActiveFilters() bool {
	return !IsAll(string(s.Category)) ||
		!IsAll(string(s.Location)) ||
		!IsAll(string(s.DateRange)) ||
		!IsAll(string(s.PriceRange))
}

// IsEmpty reports whether s constrains nothing at all.
func (s FilterState) IsEmpty() bool {
	return s.Query() == "" && !s.HasActiveFilters()
}

// Normalized maps "" to "all" on every dimension so equal selections
// compare equal.
func (s FilterState) Normalized() FilterState {
	if IsAll(string(s.Category)) {
		s.Category = All
	}
	if IsAll(string(s.Location)) {
		s.Location = All
	}
	if IsAll(string(s.DateRange)) {
		s.DateRange = All
	}
	if IsAll(string(s.PriceRange)) {
		s.PriceRange = All
	}
	return s
}
