package models

// DashboardStats is the derived view behind the back-office landing page.
// It is computed on demand from the policy and claim collections and never
// persisted.
type DashboardStats struct {
	TotalPolicies  int `json:"totalPolicies"`
	ActivePolicies int `json:"activePolicies"`

	// TotalRevenue is the sum of premium * 12 over active policies. The
	// multiplier is fixed at 12 regardless of each policy's payment
	// frequency, so non-monthly policies overstate annualized revenue.
	// Kept as-is for compatibility with historical reports.
	TotalRevenue float64 `json:"totalRevenue"`

	PendingClaims int `json:"pendingClaims"`
	TotalClaims   int `json:"totalClaims"`

	// PendingRenewals counts policies whose end date falls within the next
	// 30 days, both bounds inclusive.
	PendingRenewals int `json:"pendingRenewals"`
}
