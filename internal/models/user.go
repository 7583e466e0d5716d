package models

// User roles. Admins manage users and partners; agents capture clients,
// policies and claims; viewers have read-only access.
const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleViewer = "viewer"
)

// User represents a back-office staff account.
type User struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// Email is the login identifier (unique).
	Email string `json:"email"`

	DisplayName string `json:"displayName"`

	// PasswordHash is the bcrypt hash of the user's password. Never exposed
	// over the API.
	PasswordHash string `json:"passwordHash"`

	Role string `json:"role"`

	// CreatedAt and UpdatedAt are Unix timestamps stamped by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// UserPatch lists the user fields an update may change.
// Nil fields are left untouched. Password changes go through the
// authenticator, not a patch.
type UserPatch struct {
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Role        *string `json:"role,omitempty"`
}
