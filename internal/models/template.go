package models

// SmsTemplate is a reusable notification message body. Placeholders use
// {{name}} syntax and are substituted by the dispatching system, which is
// outside this service.
type SmsTemplate struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// Name is the template's display name (e.g. "Payment Reminder").
	Name string `json:"name"`

	Body string `json:"body"`

	// CreatedAt and UpdatedAt are Unix timestamps stamped by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// SmsTemplatePatch lists the template fields an update may change.
// Nil fields are left untouched.
type SmsTemplatePatch struct {
	Name *string `json:"name,omitempty"`
	Body *string `json:"body,omitempty"`
}
