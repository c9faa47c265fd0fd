package types

// DetectSpoilageInput names the vegetable and carries its photo.
type DetectSpoilageInput struct {
	VegetableName     string `json:"vegetableName" validate:"required"`
	VegetableImageURI string `json:"vegetableImageUri" validate:"required,startswith=data:image/"`
}

// SpoilageResult is the model's two-stage verdict. IsSpoiled and
// Confidence carry meaning only when IsVegetable is true; when the image
// does not show the named vegetable they are left nil and only Reason is
// populated.
type SpoilageResult struct {
	IsVegetable *bool    `json:"isVegetable,omitempty"`
	IsSpoiled   *bool    `json:"isSpoiled,omitempty"`
	Reason      string   `json:"reason" validate:"required"`
	Confidence  *float64 `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}
