package models

// ═══════════════════════════════════════════════════════════
// Per-session Collections
// ═══════════════════════════════════════════════════════════

// ShoppingListEntry is one line of a session's shopping list. The product
// snapshot is frozen at the moment of the first add so the list survives a
// catalog reload with different data.
type ShoppingListEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ShoppingListView is the shopping list as served to the client: entries in
// collation order plus the running total in euros.
type ShoppingListView struct {
	Items []ShoppingListEntry `json:"items"`
	Total float64             `json:"total"`
}

// FavoritesView reports the full favorites membership of a session.
type FavoritesView struct {
	Items []string `json:"items"`
}

// ToggleResult is returned by the favorite/compare toggle endpoints.
type ToggleResult struct {
	Name  string `json:"name"`
	InSet bool   `json:"in_set"`
}

// AssistantRequest is the body of POST /assistant/ask.
type AssistantRequest struct {
	Question    string `json:"question" binding:"required"`
	ProductName string `json:"product_name"`
}

// AssistantAnswer wraps the assistant's reply. Fallback is set when the
// upstream call failed and Answer carries the canned message instead.
type AssistantAnswer struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback,omitempty"`
}
