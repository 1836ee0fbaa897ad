package fourmeme

import "github.com/hawkli-1994/mcp4meme/internal/domain"

// ServerName and ServerVersion identify this server to MCP clients and in
// the config resource.
const (
	ServerName    = "MCP4Meme Server"
	ServerVersion = "2.0.0"
)

// ServerDescriptor returns the static config://mcp4meme record. It needs
// no network access.
func (s *Service) ServerDescriptor() domain.ServerDescriptor {
	return domain.ServerDescriptor{
		Name:    ServerName,
		Version: ServerVersion,
		Features: []string{
			"trending_tokens",
			"bonding_curve_progress",
			"latest_trades",
			"token_migration_status",
		},
		Networks:      []string{Network},
		FourmemeProxy: ProxyAddress,
		APIEndpoints:  map[string]string{"bitquery": s.cfg.Endpoint},
		MockMode:      s.cfg.MockMode,
	}
}

// ProxyDescriptor returns the static config://fourmeme-proxy record.
func (s *Service) ProxyDescriptor() domain.ProxyDescriptor {
	return domain.ProxyDescriptor{
		ContractAddress:     ProxyAddress,
		Network:             Network,
		GraduationThreshold: GraduationThreshold,
		BondingCurveFormula: "100 - ((leftTokens * 100) / initialRealTokenReserves)",
	}
}
