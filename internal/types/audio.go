package types

// GenerateAudioInput is recipe text plus a BCP-47-ish two-letter language
// code that selects the synthesis voice.
type GenerateAudioInput struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language" validate:"required"`
}

// GenerateAudioOutput carries the finished WAV as a data URI.
type GenerateAudioOutput struct {
	AudioURL string `json:"audioUrl"`
}

// GenerateImageOutput carries the generated recipe image, either as a
// data URI or as an object-store URL when uploads are configured.
type GenerateImageOutput struct {
	ImageURL string `json:"imageUrl"`
}
