package discovery

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/planz/planz/pkg/domain"
)

type predicate func(e domain.Event) bool

// Filter returns the events passing every active dimension of state, in
// catalog order. It never modifies events.
func Filter(events []domain.Event, state domain.FilterState, today time.Time) []domain.Event {
	preds := predicates(state, today)
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if matchAll(preds, e) {
			out = append(out, e)
		}
	}
	return out
}

// ActiveDimensions counts the dimensions of state that constrain results.
func ActiveDimensions(state domain.FilterState) int {
	n := 0
	if state.Query() != "" {
		n++
	}
	if !domain.IsAll(string(state.Category)) && state.Category.Valid() {
		n++
	}
	if !domain.IsAll(string(state.Location)) && state.Location.Valid() {
		n++
	}
	if !domain.IsAll(string(state.DateRange)) && state.DateRange.Valid() {
		n++
	}
	if !domain.IsAll(string(state.PriceRange)) && state.PriceRange.Valid() {
		n++
	}
	return n
}

func matchAll(preds []predicate, e domain.Event) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

// predicates builds the active checks in evaluation order. Unknown enum
// values contribute no check.
func predicates(state domain.FilterState, today time.Time) []predicate {
	var preds []predicate

	if q := state.Query(); q != "" {
		preds = append(preds, textPredicate(q))
	}

	if c := state.Category; !domain.IsAll(string(c)) && c.Valid() {
		preds = append(preds, func(e domain.Event) bool { return e.Category == c })
	}

	if z := state.Location; !domain.IsAll(string(z)) && z.Valid() {
		preds = append(preds, func(e domain.Event) bool { return e.Zone == z })
	}

	if r := state.DateRange; !domain.IsAll(string(r)) && r.Valid() {
		preds = append(preds, func(e domain.Event) bool {
			diff, err := DaysUntil(e, today)
			if err != nil {
				return false
			}
			return InDateRange(r, diff)
		})
	}

	if r := state.PriceRange; !domain.IsAll(string(r)) && r.Valid() {
		preds = append(preds, func(e domain.Event) bool {
			amount, ok := e.Price.Amount()
			if !ok {
				return false
			}
			return InPriceRange(r, amount)
		})
	}

	return preds
}

func textPredicate(query string) predicate {
	fold := cases.Fold()
	needle := fold.String(query)
	return func(e domain.Event) bool {
		return strings.Contains(fold.String(e.Title), needle) ||
			strings.Contains(fold.String(e.Description), needle)
	}
}

// InDateRange applies the range policy to a day difference. Unknown
// ranges accept everything.
func InDateRange(r domain.DateRange, diffDays int) bool {
	switch r {
	case domain.DateRangeToday:
		return diffDays == 0
	case domain.DateRangeTomorrow:
		return diffDays == 1
	case domain.DateRangeWeek:
		return diffDays >= 0 && diffDays <= 7
	case domain.DateRangeMonth:
		return diffDays >= 0 && diffDays <= 30
	case domain.DateRangeFuture:
		return diffDays >= 0
	default:
		return true
	}
}

// InPriceRange applies the bucket policy to a normalized amount. Unknown
// ranges accept everything.
func InPriceRange(r domain.PriceRange, amount int) bool {
	switch r {
	case domain.PriceRangeFree:
		return amount == 0
	case domain.PriceRangeLow:
		return amount >= 1 && amount <= 25
	case domain.PriceRangeMedium:
		return amount >= 26 && amount <= 50
	case domain.PriceRangeHigh:
		return amount >= 51
	default:
		return true
	}
}
