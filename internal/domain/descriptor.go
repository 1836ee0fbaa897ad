package domain

// ServerDescriptor is the static config://mcp4meme resource: server
// identity, the exposed feature set, and whether the process is running
// without an upstream credential (mock mode).
type ServerDescriptor struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Features      []string          `json:"features"`
	Networks      []string          `json:"networks"`
	FourmemeProxy string            `json:"fourmeme_proxy"`
	APIEndpoints  map[string]string `json:"api_endpoints"`
	MockMode      bool              `json:"mock_mode"`
}

// ProxyDescriptor is the static config://fourmeme-proxy resource. The
// bonding-curve formula is published here as documentation; see the
// bonding-curve operation for why it is not evaluated.
type ProxyDescriptor struct {
	ContractAddress     string  `json:"contract_address"`
	Network             string  `json:"network"`
	GraduationThreshold float64 `json:"graduation_threshold"`
	BondingCurveFormula string  `json:"bonding_curve_formula"`
}
