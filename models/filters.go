package models

import "math"

// SortKey selects the ordering applied to a filtered result set.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPriceAsc   SortKey = "price_asc"
	SortByPriceDesc  SortKey = "price_desc"
	SortByPopularity SortKey = "popularity"
)

// ParseSortKey maps a query-string value onto a SortKey, falling back to the
// default name ordering for anything unknown.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByPriceAsc, SortByPriceDesc, SortByPopularity:
		return SortKey(s)
	default:
		return SortByName
	}
}

// FilterCriteria is the full set of filters a browse request can carry.
// It is built in one piece per request, never mutated mid-evaluation.
type FilterCriteria struct {
	SearchText string
	Categories []string
	PriceMin   float64
	PriceMax   float64
	SortKey    SortKey
}

// DefaultCriteria returns the unfiltered state: no search, no categories,
// open price range, name ordering.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		PriceMin: 0,
		PriceMax: math.Inf(1),
		SortKey:  SortByName,
	}
}

// HasPriceBound reports whether either price bound is active. Products with
// an unparseable price are only excluded while a bound is active.
func (f FilterCriteria) HasPriceBound() bool {
	return f.PriceMin > 0 || !math.IsInf(f.PriceMax, 1)
}

// HasCategory reports membership of category in the selected set.
func (f FilterCriteria) HasCategory(category string) bool {
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}
