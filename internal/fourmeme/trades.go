package fourmeme

import (
	"context"
	"log/slog"

	"github.com/hawkli-1994/mcp4meme/internal/domain"
	"github.com/hawkli-1994/mcp4meme/internal/jsonpath"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// LatestTrades returns the most recent successful bonding-curve trades for
// a token, newest first, truncated to limit rows. Only trades on the
// Four.meme protocol itself are included; post-migration DEX activity is
// the migration operation's concern.
func (s *Service) LatestTrades(ctx context.Context, tokenAddress string, limit int) domain.TradesResult {
	if !validAddress(tokenAddress) {
		return domain.TradesResult{
			TokenAddress: tokenAddress,
			Trades:       []domain.TradeRecord{},
			Error:        "invalid token address: " + tokenAddress,
		}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.logger.DebugContext(ctx, "fetching latest trades",
		slog.String("token_address", tokenAddress),
		slog.Int("limit", limit),
	)

	res := s.client.Execute(ctx, latestTradesQuery, map[string]any{
		"tokenAddress": tokenAddress,
		"limit":        limit,
	})
	return normalizeTrades(res, tokenAddress)
}

func normalizeTrades(res bitquery.Result, tokenAddress string) domain.TradesResult {
	fail := func(msg string) domain.TradesResult {
		return domain.TradesResult{
			TokenAddress: tokenAddress,
			Trades:       []domain.TradeRecord{},
			Error:        msg,
		}
	}

	if res.Errored() {
		return fail(res.Err)
	}

	rows, err := jsonpath.List(res.Data, "data", "EVM", "DEXTrades")
	if err != nil {
		return fail(parseErrPrefix + err.Error())
	}

	out := domain.TradesResult{
		TokenAddress: tokenAddress,
		Trades:       []domain.TradeRecord{},
	}
	for _, row := range rows {
		buy, err := jsonpath.Map(row, "Trade", "Buy")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		sell, err := jsonpath.Map(row, "Trade", "Sell")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		buyCurrency, err := jsonpath.Map(buy, "Currency")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		sellCurrency, err := jsonpath.Map(sell, "Currency")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		hash, err := jsonpath.Get(row, "Transaction", "Hash")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		blockTime, err := jsonpath.Get(row, "Block", "Time")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		blockNumber, err := jsonpath.Get(row, "Block", "Number")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}

		out.Trades = append(out.Trades, domain.TradeRecord{
			TransactionHash: jsonpath.Str(hash, ""),
			Timestamp:       jsonpath.Str(blockTime, ""),
			BlockNumber:     jsonpath.Int(blockNumber, 0),
			Buyer:           jsonpath.Str(buy["Buyer"], ""),
			Seller:          jsonpath.Str(sell["Seller"], ""),
			BuyAmount:       jsonpath.Str(buy["Amount"], "0"),
			SellAmount:      jsonpath.Str(sell["Amount"], "0"),
			PriceUSD:        jsonpath.Str(buy["AmountInUSD"], "0"),
			BuyToken:        jsonpath.Str(buyCurrency["Symbol"], ""),
			SellToken:       jsonpath.Str(sellCurrency["Symbol"], ""),
		})
	}

	out.TotalTrades = len(out.Trades)
	return out
}
