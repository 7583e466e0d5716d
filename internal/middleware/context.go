package middleware

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// userIDKey is the context key for the authenticated user ID.
	userIDKey contextKey = "user_id"
	// emailKey is the context key for the authenticated user's email.
	emailKey contextKey = "email"
	// roleKey is the context key for the authenticated user's role.
	roleKey contextKey = "role"
	// partnerKey is the context key for the authenticated partner name.
	partnerKey contextKey = "partner"
)

// GetUserID extracts the user ID from the context. Returns 0 if not found.
func GetUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// GetRole extracts the user role from the context.
// Returns empty string if not found.
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// GetPartner extracts the authenticated partner name from the context.
// Returns empty string if not found.
func GetPartner(ctx context.Context) string {
	name, _ := ctx.Value(partnerKey).(string)
	return name
}
