package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComputingVictor/Mercadona-Agent/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{Name: "Leche Entera", Category: "Lácteos", Price: "1,05 €", MainImageURL: "img"},
		{Name: "Leche Desnatada", Category: "Lácteos", Price: "1,00 €", MainImageURL: "img"},
		{Name: "Café Leche", Category: "Café", Price: "2,50 €", MainImageURL: "img"},
		{Name: "Zanahoria", Category: "Verduras", Price: "0,89 €", MainImageURL: "img"},
		{Name: "ácido cítrico", Category: "Despensa", Price: "precio no disponible", MainImageURL: "img"},
		{Name: "banana", Category: "Frutas", Price: "1,35 €", MainImageURL: "img"},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestEvaluateSearchTokensAreANDed(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SearchText = "leche entera"

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Equal(t, []string{"Leche Entera"}, names(results))
}

func TestEvaluateSearchIgnoresCaseAndAccents(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SearchText = "CAFE"

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Equal(t, []string{"Café Leche"}, names(results))
}

func TestEvaluateAddingTokenNeverGrowsResults(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SearchText = "leche"
	broad := Evaluate(testCatalog(), criteria, PopularitySignals{})

	criteria.SearchText = "leche desnatada"
	narrow := Evaluate(testCatalog(), criteria, PopularitySignals{})

	assert.LessOrEqual(t, len(narrow), len(broad))
	assert.Equal(t, []string{"Leche Desnatada"}, names(narrow))
}

func TestEvaluateWhitespaceSearchIsNoFilter(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SearchText = "   "

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Len(t, results, len(testCatalog()))
}

func TestEvaluateCategoryAndSearchCompose(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Categories = []string{"Lácteos"}
	criteria.SearchText = "leche"

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	// "Café Leche" matches the search but not the category
	assert.ElementsMatch(t, []string{"Leche Entera", "Leche Desnatada"}, names(results))
}

func TestEvaluatePriceBoundsExcludeUnparseable(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.PriceMax = 2.00

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.NotContains(t, names(results), "ácido cítrico")
	assert.NotContains(t, names(results), "Café Leche")
	assert.Contains(t, names(results), "Zanahoria")
}

func TestEvaluateUnparseablePriceIncludedWithoutBounds(t *testing.T) {
	criteria := models.DefaultCriteria()

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Contains(t, names(results), "ácido cítrico")
}

func TestEvaluatePriceMinBound(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.PriceMin = 1.30

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.ElementsMatch(t, []string{"Café Leche", "banana"}, names(results))
}

func TestEvaluateDefaultSortIsSpanishCollation(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.Categories = []string{"Verduras", "Despensa", "Frutas"}

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Equal(t, []string{"ácido cítrico", "banana", "Zanahoria"}, names(results))
}

func TestEvaluatePriceSorts(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SortKey = models.SortByPriceAsc

	asc := Evaluate(testCatalog(), criteria, PopularitySignals{})
	require.NotEmpty(t, asc)
	// unparseable sorts as 0, so it leads the ascending order
	assert.Equal(t, "ácido cítrico", asc[0].Name)
	assert.Equal(t, "Café Leche", asc[len(asc)-1].Name)

	criteria.SortKey = models.SortByPriceDesc
	desc := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Equal(t, "Café Leche", desc[0].Name)
}

func TestEvaluatePopularitySort(t *testing.T) {
	signals := PopularitySignals{
		Favorites:      map[string]bool{"banana": true},
		RecentlyViewed: map[string]bool{"Zanahoria": true, "banana": true},
	}
	assert.Equal(t, 15, signals.Score("banana"))
	assert.Equal(t, 5, signals.Score("Zanahoria"))
	assert.Equal(t, 0, signals.Score("Leche Entera"))

	criteria := models.DefaultCriteria()
	criteria.SortKey = models.SortByPopularity

	results := Evaluate(testCatalog(), criteria, signals)
	assert.Equal(t, "banana", results[0].Name)
	assert.Equal(t, "Zanahoria", results[1].Name)
}

func TestEvaluatePopularityTiesKeepInputOrder(t *testing.T) {
	criteria := models.DefaultCriteria()
	criteria.SortKey = models.SortByPopularity

	results := Evaluate(testCatalog(), criteria, PopularitySignals{})
	assert.Equal(t, names(testCatalog()), names(results))
}

func TestEvaluateEmptyCatalog(t *testing.T) {
	results := Evaluate(nil, models.DefaultCriteria(), PopularitySignals{})
	assert.Empty(t, results)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	criteria := models.DefaultCriteria()
	criteria.SortKey = models.SortByPriceDesc

	Evaluate(catalog, criteria, PopularitySignals{})
	assert.Equal(t, names(testCatalog()), names(catalog))
}

func TestDefaultCriteriaHasNoPriceBound(t *testing.T) {
	criteria := models.DefaultCriteria()
	assert.False(t, criteria.HasPriceBound())
	assert.True(t, math.IsInf(criteria.PriceMax, 1))

	criteria.PriceMax = 5
	assert.True(t, criteria.HasPriceBound())
}
