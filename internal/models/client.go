package models

// Client represents a policyholder.
type Client struct {
	// ID is the unique identifier, assigned sequentially by the store.
	ID int64 `json:"id"`

	// Name is the client's full name.
	Name string `json:"name"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber"`

	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`

	// DateOfBirth is a calendar date in YYYY-MM-DD form.
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	Occupation    string `json:"occupation"`

	// CreatedAt and UpdatedAt are Unix timestamps stamped by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// ClientPatch lists the client fields an update may change.
// Nil fields are left untouched.
type ClientPatch struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	IDNumber      *string `json:"idNumber,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Province      *string `json:"province,omitempty"`
	PostalCode    *string `json:"postalCode,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	MaritalStatus *string `json:"maritalStatus,omitempty"`
	Occupation    *string `json:"occupation,omitempty"`
}
