package domain

// Migration statuses. Unknown is only used on the error variant, where the
// upstream could not be consulted at all.
const (
	MigrationStatusBondingCurveOnly = "bonding_curve_only"
	MigrationStatusMigratedToDex    = "migrated_to_dex"
	MigrationStatusUnknown          = "unknown"
)

// DexPair identifies one venue a token trades on after graduating from the
// bonding curve. Comparable by value; migration results deduplicate on full
// structural equality.
type DexPair struct {
	DexName     string `json:"dex_name"`
	DexContract string `json:"dex_contract"`
	BuyToken    string `json:"buy_token"`
	SellToken   string `json:"sell_token"`
}

// MigrationStatus is the fixed-schema response of
// get_token_migration_status. DexPairs preserves first-seen order from the
// ascending-time upstream result, so the first entry reflects the
// migration event itself.
type MigrationStatus struct {
	TokenAddress       string    `json:"token_address"`
	IsMigrated         bool      `json:"is_migrated"`
	Status             string    `json:"status"`
	MigrationTimestamp string    `json:"migration_timestamp,omitempty"`
	DexPairs           []DexPair `json:"dex_pairs"`
	TotalDexPairs      int       `json:"total_dex_pairs"`
	Message            string    `json:"message,omitempty"`
	Error              string    `json:"error,omitempty"`
}
