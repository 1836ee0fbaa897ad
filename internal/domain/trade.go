package domain

// TradeRecord is one bonding-curve trade as reported by the upstream
// indexer. Amounts and the USD price are decimal strings.
type TradeRecord struct {
	TransactionHash string `json:"transaction_hash"`
	Timestamp       string `json:"timestamp"`
	BlockNumber     int    `json:"block_number"`
	Buyer           string `json:"buyer"`
	Seller          string `json:"seller"`
	BuyAmount       string `json:"buy_amount"`
	SellAmount      string `json:"sell_amount"`
	PriceUSD        string `json:"price_usd"`
	BuyToken        string `json:"buy_token"`
	SellToken       string `json:"sell_token"`
}

// TradesResult is the fixed-schema response of get_latest_trades.
type TradesResult struct {
	TokenAddress string        `json:"token_address"`
	Trades       []TradeRecord `json:"trades"`
	TotalTrades  int           `json:"total_trades"`
	Error        string        `json:"error,omitempty"`
}
