package models

// Policy status values. Status is compared case-sensitively; dashboard
// aggregates count only PolicyStatusActive.
const (
	PolicyStatusActive    = "Active"
	PolicyStatusLapsed    = "Lapsed"
	PolicyStatusCancelled = "Cancelled"
	PolicyStatusPending   = "Pending"
)

// Payment frequency values for Policy.PaymentFrequency.
const (
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyAnnual    = "Annual"
)

// Policy represents a funeral cover policy.
type Policy struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// PolicyNumber is the human-facing reference (e.g. "POL-2024-0001").
	PolicyNumber string `json:"policyNumber"`

	// ClientID references the holding Client. Not enforced: the client may
	// have been deleted since.
	ClientID int64 `json:"clientId"`

	// ClientName is a point-in-time snapshot of the client's name taken when
	// the policy was captured. It is NOT re-synced when the client record
	// changes.
	ClientName string `json:"clientName"`

	// PolicyType is the name of the cover product (see PolicyType catalog).
	PolicyType string `json:"policyType"`

	// Premium is the recurring premium amount.
	Premium float64 `json:"premium"`

	Status string `json:"status"`

	// StartDate and EndDate are calendar dates in YYYY-MM-DD form.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	PaymentFrequency string  `json:"paymentFrequency"`
	CoverageAmount   float64 `json:"coverageAmount"`

	// Agent is the capturing agent's name, if recorded.
	Agent string `json:"agent,omitempty"`
	Notes string `json:"notes,omitempty"`

	// CreatedAt and UpdatedAt are Unix timestamps stamped by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// PolicyPatch lists the policy fields an update may change.
// Nil fields are left untouched.
type PolicyPatch struct {
	PolicyNumber     *string  `json:"policyNumber,omitempty"`
	ClientID         *int64   `json:"clientId,omitempty"`
	ClientName       *string  `json:"clientName,omitempty"`
	PolicyType       *string  `json:"policyType,omitempty"`
	Premium          *float64 `json:"premium,omitempty"`
	Status           *string  `json:"status,omitempty"`
	StartDate        *string  `json:"startDate,omitempty"`
	EndDate          *string  `json:"endDate,omitempty"`
	PaymentFrequency *string  `json:"paymentFrequency,omitempty"`
	CoverageAmount   *float64 `json:"coverageAmount,omitempty"`
	Agent            *string  `json:"agent,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}
