package models

// PolicyType is a catalog entry describing a cover product.
// The catalog is seeded once and read-only through the store: no create,
// update, or delete is exposed.
type PolicyType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// BasePremium is the product's starting monthly premium.
	BasePremium float64 `json:"basePremium"`

	CoverageAmount float64 `json:"coverageAmount"`

	// MinAge and MaxAge bound the eligible entry age in years.
	MinAge int `json:"minAge"`
	MaxAge int `json:"maxAge"`
}
