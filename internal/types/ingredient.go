package types

// Ingredient is a single pantry item as recognized from a photo or
// receipt. ExpirationDate, when present, is a YYYY-MM-DD string estimated
// by the model from typical shelf life.
type Ingredient struct {
	Name           string  `json:"name" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	ExpirationDate string  `json:"expirationDate,omitempty"`
}

// ExtractIngredientsInput carries the uploaded image as a data URI.
type ExtractIngredientsInput struct {
	ReceiptDataURI string `json:"receiptDataUri" validate:"required,startswith=data:image/"`
}

// ExtractIngredientsOutput is the model's structured answer.
type ExtractIngredientsOutput struct {
	Ingredients []Ingredient `json:"ingredients" validate:"dive"`
}
