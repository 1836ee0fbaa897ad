package fourmeme

import (
	"context"
	"log/slog"
	"time"

	"github.com/hawkli-1994/mcp4meme/internal/domain"
	"github.com/hawkli-1994/mcp4meme/internal/jsonpath"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// TrendingTokens returns the most-traded Four.meme tokens over the last 24
// hours, ranked by trade count and truncated to limit rows.
func (s *Service) TrendingTokens(ctx context.Context, limit int) domain.TrendingTokensResult {
	if limit <= 0 {
		limit = DefaultLimit
	}
	since := isoUTC(s.now().Add(-24 * time.Hour))

	s.logger.DebugContext(ctx, "fetching trending tokens",
		slog.Int("limit", limit),
		slog.String("since", since),
	)

	res := s.client.Execute(ctx, trendingTokensQuery, map[string]any{
		"limit":         limit,
		"time_24hr_ago": since,
	})
	return normalizeTrending(res, limit)
}

// isoUTC renders t the way the upstream expects its DateTime filters:
// ISO-8601 with microseconds and a bare "Z" appended. The suffix is a
// literal, not an offset token, for wire compatibility with existing
// clients of this query.
func isoUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

func normalizeTrending(res bitquery.Result, limit int) domain.TrendingTokensResult {
	fail := func(msg string) domain.TrendingTokensResult {
		return domain.TrendingTokensResult{
			TrendingTokens: []domain.TokenSummary{},
			Error:          msg,
		}
	}

	if res.Errored() {
		return fail(res.Err)
	}

	rows, err := jsonpath.List(res.Data, "data", "EVM", "DEXTradeByTokens")
	if err != nil {
		return fail(trendingParseErrPrefix + err.Error())
	}

	out := domain.TrendingTokensResult{TrendingTokens: []domain.TokenSummary{}}
	for i, row := range rows {
		// The query already passes the limit, but the upstream cap is
		// advisory; enforce it locally.
		if i >= limit {
			break
		}

		currency, err := jsonpath.Map(row, "Trade", "Currency")
		if err != nil {
			return fail(trendingParseErrPrefix + err.Error())
		}
		tradeCount, err := jsonpath.Get(row, "trades_24hr")
		if err != nil {
			return fail(trendingParseErrPrefix + err.Error())
		}
		volume, err := jsonpath.Get(row, "volume_24hr")
		if err != nil {
			return fail(trendingParseErrPrefix + err.Error())
		}

		out.TrendingTokens = append(out.TrendingTokens, domain.TokenSummary{
			Rank:          i + 1,
			TokenAddress:  jsonpath.Str(currency["SmartContract"], ""),
			Symbol:        jsonpath.Str(currency["Symbol"], ""),
			Name:          jsonpath.Str(currency["Name"], ""),
			TradeCount:    jsonpath.Int(tradeCount, 0),
			Volume24hrUSD: jsonpath.Str(volume, "0"),
		})
	}

	out.TotalFound = len(out.TrendingTokens)
	return out
}
