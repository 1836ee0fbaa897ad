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

const curveFixture = `{"data":{"EVM":{"Transfers":[{
	"Transfer":{
		"Amount":"123456.789",
		"Currency":{"Name":"Pepe Sol","Symbol":"PSOL","SmartContract":"0x1111111111111111111111111111111111111111"}
	},
	"Block":{"Time":"2025-08-25T10:30:00Z"}
}]}}}`

func TestBondingCurveProgress(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Data: payload(t, curveFixture)}}
	svc := newTestService(f)

	res := svc.BondingCurveProgress(context.Background(), testAddress)

	require.Empty(t, res.Error)
	assert.Equal(t, testAddress, res.TokenAddress)
	assert.Equal(t, "PSOL", res.Symbol)
	assert.Equal(t, "Pepe Sol", res.Name)
	assert.Equal(t, 75.5, res.ProgressPercentage)
	assert.Equal(t, domain.CurveStatusActive, res.Status)
	assert.Equal(t, 95.0, res.GraduationThreshold)
	assert.Equal(t, "2025-08-25T10:30:00Z", res.LastActivity)

	assert.Equal(t, testAddress, f.lastVars["tokenAddress"])
}

func TestBondingCurveNoTransfers(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Data: payload(t, `{"data":{"EVM":{"Transfers":[]}}}`)}}
	svc := newTestService(f)

	res := svc.BondingCurveProgress(context.Background(), testAddress)

	assert.Empty(t, res.Error, "no transfers is not an error")
	assert.Equal(t, domain.CurveStatusEarly, res.Status)
	assert.Zero(t, res.ProgressPercentage)
	assert.Equal(t, "No transfers to Four.meme contract found", res.Message)
}

func TestBondingCurveErrorEnvelope(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{Err: "Request failed: timeout"}}
	svc := newTestService(f)

	res := svc.BondingCurveProgress(context.Background(), testAddress)

	assert.Equal(t, "Request failed: timeout", res.Error)
	assert.Equal(t, domain.CurveStatusUnknown, res.Status)
	assert.Zero(t, res.ProgressPercentage)
	assert.Equal(t, testAddress, res.TokenAddress)
}

func TestBondingCurveShapeError(t *testing.T) {
	f := &fakeExecutor{result: bitquery.Result{
		Data: payload(t, `{"data":{"EVM":{"Transfers":[{"Transfer":{"Currency":[1,2]},"Block":{}}]}}}`),
	}}
	svc := newTestService(f)

	res := svc.BondingCurveProgress(context.Background(), testAddress)

	require.NotEmpty(t, res.Error)
	assert.True(t, strings.HasPrefix(res.Error, "Failed to parse response: "), res.Error)
	assert.Equal(t, domain.CurveStatusUnknown, res.Status)
	assert.Zero(t, res.ProgressPercentage)
}

func TestStatusForProgress(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, domain.CurveStatusEarly},
		{49.9, domain.CurveStatusEarly},
		{50, domain.CurveStatusActive},
		{75.5, domain.CurveStatusActive},
		{89.9, domain.CurveStatusActive},
		{90, domain.CurveStatusApproaching},
		{94.9, domain.CurveStatusApproaching},
		{95, domain.CurveStatusGraduated},
		{100, domain.CurveStatusGraduated},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForProgress(tc.pct), "pct=%v", tc.pct)
	}
}
