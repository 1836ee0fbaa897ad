// Package fourmeme implements the four read-only query operations over the
// Four.meme launchpad data indexed by Bitquery, plus the two static
// configuration descriptors.
//
// Every operation follows the same contract: one upstream query, one
// normalization pass, and a fully-populated record on every path. Errors —
// configuration, transport, or response shape — are embedded in the
// record's error field and never surface as Go errors.
package fourmeme

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

const (
	// ProxyAddress is the Four.meme bonding-curve proxy contract on BSC
	// mainnet. Transfers into it mark bonding-curve activity.
	ProxyAddress = "0x5c952063c7fc8610FFDB798152D69F0B9550762b"

	// BondingCurveProtocol is the DEX protocol identifier the indexer
	// assigns to Four.meme bonding-curve trades.
	BondingCurveProtocol = "fourmeme_v1"

	// GraduationThreshold is the progress percentage at which a token
	// migrates from the bonding curve to open-market trading.
	GraduationThreshold = 95.0

	// Network is the only chain this service queries.
	Network = "bsc"

	// DefaultLimit is applied when a caller passes a non-positive limit.
	DefaultLimit = 10
)

// Shape-error prefixes. The trending operation predates the others and
// kept its longer wording; consumers match on these strings.
const (
	parseErrPrefix         = "Failed to parse response: "
	trendingParseErrPrefix = "Failed to parse API response: "
)

// Executor runs one GraphQL query and reports the outcome as an envelope.
// *bitquery.Client satisfies it; tests substitute call-counting fakes.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) bitquery.Result
}

// Config carries the few static facts the service surfaces through its
// descriptors.
type Config struct {
	// Endpoint is the upstream GraphQL URL, published in the server
	// descriptor.
	Endpoint string
	// MockMode is true when no upstream credential is configured; every
	// operation then returns the credential error envelope.
	MockMode bool
}

// Service exposes the four query operations. It is stateless across calls:
// each invocation is one independent round trip.
type Service struct {
	client Executor
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used to compute query windows.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates the operation service on top of a query executor.
func NewService(client Executor, cfg Config, logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "fourmeme")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validAddress reports whether addr looks like a 20-byte hex address.
// Operations reject garbage locally instead of spending a round trip on a
// query the upstream will answer with an empty set.
func validAddress(addr string) bool {
	return common.IsHexAddress(addr)
}
