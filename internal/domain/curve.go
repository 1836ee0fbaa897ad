package domain

// Bonding-curve lifecycle statuses, ordered by progress.
const (
	CurveStatusEarly       = "early"
	CurveStatusActive      = "active"
	CurveStatusApproaching = "approaching_graduation"
	CurveStatusGraduated   = "graduated"
	CurveStatusUnknown     = "unknown"
)

// BondingCurveStatus is the fixed-schema response of
// get_bonding_curve_progress.
type BondingCurveStatus struct {
	TokenAddress        string  `json:"token_address"`
	Symbol              string  `json:"symbol"`
	Name                string  `json:"name"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	Status              string  `json:"status"`
	GraduationThreshold float64 `json:"graduation_threshold"`
	LastActivity        string  `json:"last_activity"`
	Message             string  `json:"message,omitempty"`
	Error               string  `json:"error,omitempty"`
}
