package services

import (
	"sort"

	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/utils"
)

// PopularitySignals carries the per-session membership sets that feed the
// popularity sort. Built by the caller from the collections service so that
// Evaluate itself stays pure.
type PopularitySignals struct {
	Favorites      map[string]bool
	RecentlyViewed map[string]bool
}

const (
	favoriteWeight = 10
	recentWeight   = 5
)

// Score is the synthetic popularity ranking of a product name.
func (s PopularitySignals) Score(name string) int {
	score := 0
	if s.Favorites[name] {
		score += favoriteWeight
	}
	if s.RecentlyViewed[name] {
		score += recentWeight
	}
	return score
}

// Evaluate derives the ordered result set for one browse request:
// category filter, then price bounds, then tokenized search, then sort.
// Pure and deterministic; the input slice is never mutated.
func Evaluate(catalog []models.Product, criteria models.FilterCriteria, signals PopularitySignals) []models.Product {
	results := make([]models.Product, 0, len(catalog))
	tokens := utils.Tokenize(criteria.SearchText)
	priceBound := criteria.HasPriceBound()

	for _, p := range catalog {
		if len(criteria.Categories) > 0 && !criteria.HasCategory(p.Category) {
			continue
		}

		if priceBound {
			price, ok := utils.ParsePrice(p.Price)
			// a product without a readable price cannot satisfy an
			// active price filter
			if !ok || price < criteria.PriceMin || price > criteria.PriceMax {
				continue
			}
		}

		if len(tokens) > 0 && !utils.MatchesAllTokens(p.Name, tokens) {
			continue
		}

		results = append(results, p)
	}

	sortResults(results, criteria.SortKey, signals)
	return results
}

func sortResults(results []models.Product, key models.SortKey, signals PopularitySignals) {
	switch key {
	case models.SortByPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return utils.PriceOrZero(results[i].Price) < utils.PriceOrZero(results[j].Price)
		})
	case models.SortByPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return utils.PriceOrZero(results[i].Price) > utils.PriceOrZero(results[j].Price)
		})
	case models.SortByPopularity:
		sort.SliceStable(results, func(i, j int) bool {
			return signals.Score(results[i].Name) > signals.Score(results[j].Name)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return utils.Compare(results[i].Name, results[j].Name) < 0
		})
	}
}
