package types

// AlertIngredient is the slice of Ingredient the alert evaluator cares
// about. Items without a parseable expiration date are treated as
// non-expiring.
type AlertIngredient struct {
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// ExpirationAlertInput lists the pantry and the number to notify.
type ExpirationAlertInput struct {
	Ingredients []AlertIngredient `json:"ingredients" validate:"required,dive"`
	PhoneNumber string            `json:"phoneNumber" validate:"required"`
}

// ExpirationAlertResult reports what, if anything, was sent.
type ExpirationAlertResult struct {
	Message string `json:"message"`
}

// DonationLocation is one entry of the static community-donation lookup
// table.
type DonationLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
}
