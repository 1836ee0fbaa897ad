package fourmeme

import (
	"context"
	"log/slog"

	"github.com/hawkli-1994/mcp4meme/internal/domain"
	"github.com/hawkli-1994/mcp4meme/internal/jsonpath"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// MigrationStatus reports whether a token has graduated from the bonding
// curve to open-market DEX trading. Any successful trade on a protocol
// other than fourmeme_v1 counts as migrated; the query is ordered
// oldest-first so the first row is the migration event itself.
func (s *Service) MigrationStatus(ctx context.Context, tokenAddress string) domain.MigrationStatus {
	if !validAddress(tokenAddress) {
		return domain.MigrationStatus{
			TokenAddress: tokenAddress,
			Status:       domain.MigrationStatusUnknown,
			DexPairs:     []domain.DexPair{},
			Error:        "invalid token address: " + tokenAddress,
		}
	}

	s.logger.DebugContext(ctx, "checking migration status",
		slog.String("token_address", tokenAddress),
	)

	res := s.client.Execute(ctx, migrationStatusQuery, map[string]any{
		"tokenAddress": tokenAddress,
	})
	return normalizeMigration(res, tokenAddress)
}

func normalizeMigration(res bitquery.Result, tokenAddress string) domain.MigrationStatus {
	out := domain.MigrationStatus{
		TokenAddress: tokenAddress,
		Status:       domain.MigrationStatusUnknown,
		DexPairs:     []domain.DexPair{},
	}
	fail := func(msg string) domain.MigrationStatus {
		return domain.MigrationStatus{
			TokenAddress: tokenAddress,
			Status:       domain.MigrationStatusUnknown,
			DexPairs:     []domain.DexPair{},
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

	if len(rows) == 0 {
		out.Status = domain.MigrationStatusBondingCurveOnly
		out.Message = "Token still trading only on Four.meme bonding curve"
		return out
	}

	seen := make(map[domain.DexPair]struct{}, len(rows))
	for _, row := range rows {
		dex, err := jsonpath.Map(row, "Trade", "Dex")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		buyCurrency, err := jsonpath.Map(row, "Trade", "Buy", "Currency")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}
		sellCurrency, err := jsonpath.Map(row, "Trade", "Sell", "Currency")
		if err != nil {
			return fail(parseErrPrefix + err.Error())
		}

		if out.MigrationTimestamp == "" {
			ts, err := jsonpath.Get(row, "Block", "Time")
			if err != nil {
				return fail(parseErrPrefix + err.Error())
			}
			out.MigrationTimestamp = jsonpath.Str(ts, "")
		}

		pair := domain.DexPair{
			DexName:     jsonpath.Str(dex["ProtocolName"], ""),
			DexContract: jsonpath.Str(dex["SmartContract"], ""),
			BuyToken:    jsonpath.Str(buyCurrency["Symbol"], ""),
			SellToken:   jsonpath.Str(sellCurrency["Symbol"], ""),
		}
		if _, dup := seen[pair]; !dup {
			seen[pair] = struct{}{}
			out.DexPairs = append(out.DexPairs, pair)
		}
	}

	out.IsMigrated = true
	out.Status = domain.MigrationStatusMigratedToDex
	out.TotalDexPairs = len(out.DexPairs)
	return out
}
