package catalog_cache

import (
	"sort"
	"sync"

	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/utils"
)

// ── In-memory catalog ────────────────────────────────────────────────────────
// The catalog is loaded once at startup and read-only afterwards. Set builds
// the name index and the collation-sorted category list; every browse request
// reads from here.

var (
	mu         sync.RWMutex
	products   []models.Product
	byName     map[string]models.Product
	categories []models.CategoryCount
)

func Set(items []models.Product) {
	index := make(map[string]models.Product, len(items))
	counts := make(map[string]int)
	for _, p := range items {
		if _, dup := index[p.Name]; !dup {
			index[p.Name] = p
		}
		counts[p.Category]++
	}

	cats := make([]models.CategoryCount, 0, len(counts))
	for name, n := range counts {
		cats = append(cats, models.CategoryCount{Name: name, ProductCount: n})
	}
	sort.Slice(cats, func(i, j int) bool {
		return utils.Compare(cats[i].Name, cats[j].Name) < 0
	})

	mu.Lock()
	defer mu.Unlock()
	products = items
	byName = index
	categories = cats
}

// Products returns the full catalog in load order. Callers must not mutate
// the returned slice.
func Products() []models.Product {
	mu.RLock()
	defer mu.RUnlock()
	return products
}

// Categories returns the unique category list, collation-sorted, with
// product counts.
func Categories() []models.CategoryCount {
	mu.RLock()
	defer mu.RUnlock()
	return categories
}

// ByName looks a product up by its display name (the catalog identifier).
func ByName(name string) (models.Product, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byName[name]
	return p, ok
}

func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(products)
}
