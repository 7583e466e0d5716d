package models

// Partner status values.
const (
	PartnerStatusActive    = "Active"
	PartnerStatusSuspended = "Suspended"
)

// Partner represents an API integration partner. Each partner holds a
// single API key presented in the X-API-Key header; rotating the key
// invalidates the previous one immediately.
type Partner struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Status       string `json:"status"`

	// APIKey is generated by the store on create and replaced on rotation
	// (UUID format).
	APIKey string `json:"apiKey"`

	// CreatedAt and UpdatedAt are Unix timestamps stamped by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// PartnerPatch lists the partner fields an update may change.
// Nil fields are left untouched. The API key changes only via rotation.
type PartnerPatch struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Status       *string `json:"status,omitempty"`
}
