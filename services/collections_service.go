package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/ComputingVictor/Mercadona-Agent/config"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/utils"
)

// ═══════════════════════════════════════════════════════════
// Persisted Collections (favorites, recently viewed, compare,
// shopping list) — one Redis key per collection per session,
// written through synchronously on every mutation.
// ═══════════════════════════════════════════════════════════

const (
	maxRecentlyViewed = 5
	maxCompare        = 3
)

// ErrCompareLimit is returned when a 4th product would enter the compare
// set. The set is left exactly as it was; nothing is silently evicted.
var ErrCompareLimit = errors.New("compare set already holds the maximum of 3 products")

func favoritesKey(sessionID string) string { return "favorites:" + sessionID }
func recentKey(sessionID string) string    { return "recent:" + sessionID }
func compareKey(sessionID string) string   { return "compare:" + sessionID }
func listKey(sessionID string) string      { return "list:" + sessionID }

// loadJSON reads one collection value. An absent key or a value that no
// longer unmarshals both come back as the zero value: malformed state resets
// to empty instead of poisoning the session. Decoding happens into a scratch
// value so a mid-value failure never leaves dest half filled.
func loadJSON[T any](ctx context.Context, key string, dest *T) error {
	raw, err := config.RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	var decoded T
	if jsonErr := json.Unmarshal([]byte(raw), &decoded); jsonErr != nil {
		return nil
	}
	*dest = decoded
	return nil
}

// saveJSON persists one collection value with no expiry; collections never
// expire.
func saveJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(ctx, key, raw, 0).Err()
}

// ── Favorites ────────────────────────────────────────────────────────────────

// ToggleFavorite adds the product name if absent, removes it if present, and
// returns the new membership.
func ToggleFavorite(ctx context.Context, sessionID, name string) (bool, error) {
	var favorites []string
	if err := loadJSON(ctx, favoritesKey(sessionID), &favorites); err != nil {
		return false, err
	}

	inSet := false
	next := make([]string, 0, len(favorites))
	for _, f := range favorites {
		if f == name {
			inSet = true
			continue
		}
		next = append(next, f)
	}
	if !inSet {
		next = append(next, name)
	}

	if err := saveJSON(ctx, favoritesKey(sessionID), next); err != nil {
		return false, err
	}
	return !inSet, nil
}

// Favorites returns the session's favorite product names.
func Favorites(ctx context.Context, sessionID string) ([]string, error) {
	favorites := []string{}
	err := loadJSON(ctx, favoritesKey(sessionID), &favorites)
	return favorites, err
}

// ── Recently viewed ──────────────────────────────────────────────────────────

// RecordView moves the product name to the front of the recently-viewed
// list, deduplicated and capped at 5 entries.
func RecordView(ctx context.Context, sessionID, name string) error {
	var recent []string
	if err := loadJSON(ctx, recentKey(sessionID), &recent); err != nil {
		return err
	}

	next := make([]string, 0, len(recent)+1)
	next = append(next, name)
	for _, r := range recent {
		if r != name {
			next = append(next, r)
		}
	}
	if len(next) > maxRecentlyViewed {
		next = next[:maxRecentlyViewed]
	}

	return saveJSON(ctx, recentKey(sessionID), next)
}

// RecentlyViewed returns the session's view history, most recent first.
func RecentlyViewed(ctx context.Context, sessionID string) ([]string, error) {
	recent := []string{}
	err := loadJSON(ctx, recentKey(sessionID), &recent)
	return recent, err
}

// ── Compare set ──────────────────────────────────────────────────────────────

// ToggleCompare removes the product if it is already in the compare set.
// Otherwise it appends it, unless the set is full, in which case it returns
// ErrCompareLimit and leaves the set untouched.
func ToggleCompare(ctx context.Context, sessionID string, product models.Product) (bool, error) {
	var compared []models.Product
	if err := loadJSON(ctx, compareKey(sessionID), &compared); err != nil {
		return false, err
	}

	inSet := false
	next := make([]models.Product, 0, len(compared))
	for _, p := range compared {
		if p.Name == product.Name {
			inSet = true
			continue
		}
		next = append(next, p)
	}

	if !inSet {
		if len(next) >= maxCompare {
			return false, ErrCompareLimit
		}
		next = append(next, product)
	}

	if err := saveJSON(ctx, compareKey(sessionID), next); err != nil {
		return false, err
	}
	return !inSet, nil
}

// CompareProducts returns the compare set in insertion order.
func CompareProducts(ctx context.Context, sessionID string) ([]models.Product, error) {
	compared := []models.Product{}
	err := loadJSON(ctx, compareKey(sessionID), &compared)
	return compared, err
}

// ── Shopping list ────────────────────────────────────────────────────────────

// AddToList creates the entry with quantity 1 on first add (snapshotting the
// product) and increments the quantity on every further add. Returns the new
// quantity.
func AddToList(ctx context.Context, sessionID string, product models.Product) (int, error) {
	list := map[string]models.ShoppingListEntry{}
	if err := loadJSON(ctx, listKey(sessionID), &list); err != nil {
		return 0, err
	}

	entry, exists := list[product.Name]
	if exists {
		entry.Quantity++
	} else {
		entry = models.ShoppingListEntry{Product: product, Quantity: 1}
	}
	list[product.Name] = entry

	if err := saveJSON(ctx, listKey(sessionID), list); err != nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// DecrementListItem lowers the quantity by one; at zero the entry is deleted
// outright, never stored with quantity 0. Unknown names are a no-op.
func DecrementListItem(ctx context.Context, sessionID, name string) error {
	list := map[string]models.ShoppingListEntry{}
	if err := loadJSON(ctx, listKey(sessionID), &list); err != nil {
		return err
	}

	entry, exists := list[name]
	if !exists {
		return nil
	}
	if entry.Quantity <= 1 {
		delete(list, name)
	} else {
		entry.Quantity--
		list[name] = entry
	}

	return saveJSON(ctx, listKey(sessionID), list)
}

// RemoveListItem deletes the entry regardless of quantity.
func RemoveListItem(ctx context.Context, sessionID, name string) error {
	list := map[string]models.ShoppingListEntry{}
	if err := loadJSON(ctx, listKey(sessionID), &list); err != nil {
		return err
	}
	if _, exists := list[name]; !exists {
		return nil
	}
	delete(list, name)
	return saveJSON(ctx, listKey(sessionID), list)
}

// ShoppingListEntries returns the session's list in collation order by
// product name, so the rendered list is stable across requests.
func ShoppingListEntries(ctx context.Context, sessionID string) ([]models.ShoppingListEntry, error) {
	list := map[string]models.ShoppingListEntry{}
	if err := loadJSON(ctx, listKey(sessionID), &list); err != nil {
		return nil, err
	}

	entries := make([]models.ShoppingListEntry, 0, len(list))
	for _, entry := range list {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return utils.Compare(entries[i].Product.Name, entries[j].Product.Name) < 0
	})
	return entries, nil
}

// ShoppingListTotal sums parsed price × quantity; an unparseable price
// contributes 0.
func ShoppingListTotal(entries []models.ShoppingListEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += utils.PriceOrZero(entry.Product.Price) * float64(entry.Quantity)
	}
	return total
}

// BuildPopularitySignals assembles the favorite and recently-viewed
// membership sets that drive the popularity sort.
func BuildPopularitySignals(ctx context.Context, sessionID string) (PopularitySignals, error) {
	favorites, err := Favorites(ctx, sessionID)
	if err != nil {
		return PopularitySignals{}, err
	}
	recent, err := RecentlyViewed(ctx, sessionID)
	if err != nil {
		return PopularitySignals{}, err
	}

	signals := PopularitySignals{
		Favorites:      make(map[string]bool, len(favorites)),
		RecentlyViewed: make(map[string]bool, len(recent)),
	}
	for _, f := range favorites {
		signals.Favorites[f] = true
	}
	for _, r := range recent {
		signals.RecentlyViewed[r] = true
	}
	return signals, nil
}
