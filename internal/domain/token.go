// Package domain holds the request-scoped value records returned by the
// four query operations, plus the two static configuration descriptors.
// Every record carries its full schema on both success and failure; the
// error field (and the occasional message field) are the only keys omitted
// when empty.
//
// Amount and price fields are decimal strings end to end. The upstream
// indexer reports arbitrary-precision decimals, and a float64 round trip
// would corrupt them.
package domain

// TokenSummary is one row of the trending-tokens result. Rank is 1-based
// and assigned by output position, not by the upstream.
type TokenSummary struct {
	Rank          int    `json:"rank"`
	TokenAddress  string `json:"token_address"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	TradeCount    int    `json:"trade_count"`
	Volume24hrUSD string `json:"volume_24hr_usd"`
}

// TrendingTokensResult is the fixed-schema response of get_trending_tokens.
type TrendingTokensResult struct {
	TrendingTokens []TokenSummary `json:"trending_tokens"`
	TotalFound     int            `json:"total_found"`
	Error          string         `json:"error,omitempty"`
}
