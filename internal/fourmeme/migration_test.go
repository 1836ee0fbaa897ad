package fourmeme

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkli-1994/mcp4meme/internal/domain"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// Two trades on the same venue and pair, then one on a second venue.
const migrationFixture = `{"data":{"EVM":{"DEXTrades":[
	{
		"Trade":{
			"Dex":{"ProtocolName":"pancakeswap_v2","SmartContract":"0xdex1"},
			"Buy":{"Currency":{"Symbol":"MEME","Name":"Meme Token"}},
			"Sell":{"Currency":{"Symbol":"WBNB","Name":"Wrapped BNB"}}
		},
		"Block":{"Time":"2025-08-20T08:00:00Z"}
	},
	{
		"Trade":{
			"Dex":{"ProtocolName":"pancakeswap_v2","SmartContract":"0xdex1"},
			"Buy":{"Currency":{"Symbol":"MEME","Name":"Meme Token"}},
			"Sell":{"Currency":{"Symbol":"WBNB","Name":"Wrapped BNB"}}
		},
		"Block":{"Time":"2025-08-20T08:05:00Z"}
	},
	{
		"Trade":{
			"Dex":{"ProtocolName":"pancakeswap_v3","SmartContract":"0xdex2"},
			"Buy":{"Currency":{"Symbol":"MEME","Name":"Meme Token"}},
			"Sell":{"Currency":{"Symbol":"USDT","Name":"Tether USD"}}
		},
		"Block":{"Time":"2025-08-20T09:00:00Z"}
	}
]}}}`

func TestMigrationStatusDeduplicatesPairs(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Data: payload(t, migrationFixture)}}
	svc := newTestService(f)

	res := svc.MigrationStatus(context.Background(), testAddress)

	require.Empty(t, res.Error)
	assert.True(t, res.IsMigrated)
	assert.Equal(t, domain.MigrationStatusMigratedToDex, res.Status)
	// Oldest-first upstream ordering: the first row is the migration event.
	assert.Equal(t, "2025-08-20T08:00:00Z", res.MigrationTimestamp)

	require.Len(t, res.DexPairs, 2, "duplicate pairs collapse")
	assert.Equal(t, 2, res.TotalDexPairs)
	assert.Equal(t, domain.DexPair{
		DexName:     "pancakeswap_v2",
		DexContract: "0xdex1",
		BuyToken:    "MEME",
		SellToken:   "WBNB",
	}, res.DexPairs[0], "first-seen order preserved")
	assert.Equal(t, "pancakeswap_v3", res.DexPairs[1].DexName)
}

func TestMigrationStatusBondingCurveOnly(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Data: payload(t, `{"data":{"EVM":{"DEXTrades":[]}}}`)}}
	svc := newTestService(f)

	res := svc.MigrationStatus(context.Background(), testAddress)

	assert.Empty(t, res.Error)
	assert.False(t, res.IsMigrated)
	assert.Equal(t, domain.MigrationStatusBondingCurveOnly, res.Status)
	require.NotNil(t, res.DexPairs)
	assert.Empty(t, res.DexPairs)
	assert.Zero(t, res.TotalDexPairs)
	assert.Equal(t, "Token still trading only on Four.meme bonding curve", res.Message)
}

func TestMigrationStatusErrorEnvelope(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Err: "BITQUERY_API_KEY not provided"}}
	svc := newTestService(f)

	res := svc.MigrationStatus(context.Background(), testAddress)

	assert.Equal(t, "BITQUERY_API_KEY not provided", res.Error)
	assert.False(t, res.IsMigrated)
	assert.Equal(t, domain.MigrationStatusUnknown, res.Status)
	require.NotNil(t, res.DexPairs)
	assert.Empty(t, res.DexPairs)
}

func TestMigrationStatusShapeError(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{
		Data: payload(t, `{"data":{"EVM":{"DEXTrades":[{"Trade":"nope"}]}}}`),
	}}
	svc := newTestService(f)

	res := svc.MigrationStatus(context.Background(), testAddress)

	require.NotEmpty(t, res.Error)
	assert.True(t, strings.HasPrefix(res.Error, "Failed to parse response: "), res.Error)
	assert.False(t, res.IsMigrated)
	assert.Empty(t, res.DexPairs)
}

func TestMigrationStatusIdempotent(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Data: payload(t, migrationFixture)}}
	svc := newTestService(f)

	first := svc.MigrationStatus(context.Background(), testAddress)
	second := svc.MigrationStatus(context.Background(), testAddress)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.calls)
}
