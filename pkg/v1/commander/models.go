package commander

// SyncCommand requests sync of inventory to marketplaces.
type SyncCommand struct {
	// Marketplaces to sync, empty means all configured marketplaces.
	Marketplaces []string `json:"marketplaces,omitempty"`
}
