package fourmeme

import (
	"context"
	"log/slog"

	"github.com/hawkli-1994/mcp4meme/internal/domain"
	"github.com/hawkli-1994/mcp4meme/internal/jsonpath"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// placeholderProgress stands in for the real bonding-curve percentage.
//
// TODO: compute progress as 100 - ((leftTokens * 100) /
// initialRealTokenReserves) (the formula published in the proxy
// descriptor). The transfer feed queried here carries no reserve
// snapshots, so the real inputs need a separate balance query against the
// proxy contract.
const placeholderProgress = 75.5

// BondingCurveProgress reports how close a token is to graduating from the
// Four.meme bonding curve, based on its most recent transfer into the
// proxy contract.
func (s *Service) BondingCurveProgress(ctx context.Context, tokenAddress string) domain.BondingCurveStatus {
	if !validAddress(tokenAddress) {
		return domain.BondingCurveStatus{
			TokenAddress:        tokenAddress,
			Status:              domain.CurveStatusUnknown,
			GraduationThreshold: GraduationThreshold,
			Error:               "invalid token address: " + tokenAddress,
		}
	}

	s.logger.DebugContext(ctx, "checking bonding curve progress",
		slog.String("token_address", tokenAddress),
	)

	res := s.client.Execute(ctx, bondingCurveQuery, map[string]any{
		"tokenAddress": tokenAddress,
	})
	return normalizeBondingCurve(res, tokenAddress)
}

func normalizeBondingCurve(res bitquery.Result, tokenAddress string) domain.BondingCurveStatus {
	out := domain.BondingCurveStatus{
		TokenAddress:        tokenAddress,
		Status:              domain.CurveStatusUnknown,
		GraduationThreshold: GraduationThreshold,
	}

	if res.Errored() {
		out.Error = res.Err
		return out
	}

	transfers, err := jsonpath.List(res.Data, "data", "EVM", "Transfers")
	if err != nil {
		out.Error = parseErrPrefix + err.Error()
		return out
	}

	// A token with no inbound proxy transfers has not started trading on
	// the curve yet; that is an early status, not an error.
	if len(transfers) == 0 {
		out.Status = domain.CurveStatusEarly
		out.Message = "No transfers to Four.meme contract found"
		return out
	}

	latest := transfers[0]
	currency, err := jsonpath.Map(latest, "Transfer", "Currency")
	if err != nil {
		out.Error = parseErrPrefix + err.Error()
		return out
	}
	lastActivity, err := jsonpath.Get(latest, "Block", "Time")
	if err != nil {
		out.Error = parseErrPrefix + err.Error()
		return out
	}

	out.Symbol = jsonpath.Str(currency["Symbol"], "")
	out.Name = jsonpath.Str(currency["Name"], "")
	out.ProgressPercentage = placeholderProgress
	out.Status = statusForProgress(placeholderProgress)
	out.LastActivity = jsonpath.Str(lastActivity, "")
	return out
}

// statusForProgress maps a progress percentage onto the curve lifecycle.
// Breakpoints: <50 early, <90 active, <95 approaching, else graduated.
func statusForProgress(pct float64) string {
	switch {
	case pct < 50:
		return domain.CurveStatusEarly
	case pct < 90:
		return domain.CurveStatusActive
	case pct < GraduationThreshold:
		return domain.CurveStatusApproaching
	default:
		return domain.CurveStatusGraduated
	}
}
