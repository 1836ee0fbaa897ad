package fourmeme

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// fakeExecutor records calls and plays back a canned result.
type fakeExecutor struct {
	calls     int
	lastQuery string
	lastVars  map[string]any
	result    bitquery.Result
}

func (f *fakeExecutor) Execute(ctx context.Context, query string, vars map[string]any) bitquery.Result {
	f.calls++
	f.lastQuery = query
	f.lastVars = vars
	return f.result
}

// payload decodes a fixture the same way the client decodes responses:
// generic values with UseNumber.
func payload(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return m
}

var fixedNow = time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)

func newTestService(f *fakeExecutor) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(f, Config{Endpoint: bitquery.DefaultURL, MockMode: false}, logger,
		WithClock(func() time.Time { return fixedNow }),
	)
}

const testAddress = "0x1111111111111111111111111111111111111111"

func TestServerDescriptor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(&fakeExecutor{}, Config{Endpoint: "https://example.test/graphql", MockMode: true}, logger)

	d := svc.ServerDescriptor()

	assert.Equal(t, "MCP4Meme Server", d.Name)
	assert.Equal(t, "2.0.0", d.Version)
	assert.Equal(t, []string{
		"trending_tokens",
		"bonding_curve_progress",
		"latest_trades",
		"token_migration_status",
	}, d.Features)
	assert.Equal(t, []string{"bsc"}, d.Networks)
	assert.Equal(t, ProxyAddress, d.FourmemeProxy)
	assert.Equal(t, "https://example.test/graphql", d.APIEndpoints["bitquery"])
	assert.True(t, d.MockMode)
}

func TestProxyDescriptor(t *testing.T) {
	svc := newTestService(&fakeExecutor{})

	d := svc.ProxyDescriptor()

	assert.Equal(t, ProxyAddress, d.ContractAddress)
	assert.Equal(t, "bsc", d.Network)
	assert.Equal(t, 95.0, d.GraduationThreshold)
	assert.Equal(t, "100 - ((leftTokens * 100) / initialRealTokenReserves)", d.BondingCurveFormula)
}

func TestInvalidAddressShortCircuits(t *testing.T) {
	f := &fakeExecutor{}
	svc := newTestService(f)
	ctx := context.Background()

	curve := svc.BondingCurveProgress(ctx, "not-an-address")
	assert.Contains(t, curve.Error, "invalid token address")

	trades := svc.LatestTrades(ctx, "0x123", 10)
	assert.Contains(t, trades.Error, "invalid token address")

	migration := svc.MigrationStatus(ctx, "")
	assert.Contains(t, migration.Error, "invalid token address")

	assert.Equal(t, 0, f.calls, "invalid addresses must not reach the upstream")
}
