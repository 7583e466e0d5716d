package models

// Claim status values. Dashboard aggregates count only ClaimStatusPending.
const (
	ClaimStatusPending  = "Pending"
	ClaimStatusApproved = "Approved"
	ClaimStatusRejected = "Rejected"
	ClaimStatusPaid     = "Paid"
)

// Claim represents a claim lodged against a policy.
//
// Unlike Client and Policy, claims carry no store-stamped timestamps:
// SubmittedAt is supplied by the caller and never auto-set, and updates do
// not touch it.
type Claim struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// ClaimNumber is the human-facing reference (e.g. "CLM-2024-0001").
	ClaimNumber string `json:"claimNumber"`

	PolicyID int64 `json:"policyId"`
	ClientID int64 `json:"clientId"`

	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`

	// SubmittedAt is a calendar date in YYYY-MM-DD form, carried in as-is.
	SubmittedAt string `json:"submittedAt"`

	// ProcessedAt is set by back-office staff when the claim is decided.
	ProcessedAt string `json:"processedAt,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ClaimPatch lists the claim fields an update may change.
// Nil fields are left untouched.
type ClaimPatch struct {
	ClaimNumber *string  `json:"claimNumber,omitempty"`
	PolicyID    *int64   `json:"policyId,omitempty"`
	ClientID    *int64   `json:"clientId,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Status      *string  `json:"status,omitempty"`
	SubmittedAt *string  `json:"submittedAt,omitempty"`
	ProcessedAt *string  `json:"processedAt,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}
