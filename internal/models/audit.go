package models

// Audit actions recorded by the service layer.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionRotate = "rotate-key"
)

// AuditEntry is one line of the mutation audit trail. Entries are appended
// by the service layer on every successful mutation and are never edited or
// deleted through the API.
type AuditEntry struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// Actor is the email of the authenticated user who performed the
	// mutation, or "system" when none is known.
	Actor string `json:"actor"`

	Action string `json:"action"`

	// Entity names the collection touched (e.g. "client", "policy").
	Entity string `json:"entity"`

	// EntityID is the id of the record touched.
	EntityID int64 `json:"entityId"`

	// Detail is a short human-readable summary.
	Detail string `json:"detail,omitempty"`

	// CreatedAt is a Unix timestamp stamped by the store on append.
	CreatedAt int64 `json:"createdAt"`
}
