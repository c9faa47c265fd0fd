package service

import (
	"context"

	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// Model identifiers for each modality.
const (
	textModel  = "gemini-2.0-flash"
	imageModel = "gemini-2.0-flash-preview-image-generation"
	ttsModel   = "gemini-2.5-flash-preview-tts"
)

// IPantryService extracts structured ingredients from pantry photos.
type IPantryService interface {
	ExtractIngredients(ctx context.Context, input *types.ExtractIngredientsInput) (*types.ExtractIngredientsOutput, error)
}

// IRecipeService covers the recipe flows: suggestion, planning,
// translation, narration and per-recipe image backfill.
type IRecipeService interface {
	SuggestRecipes(ctx context.Context, input *types.SuggestRecipesInput) (*types.SuggestRecipesOutput, error)
	GenerateRecipePlan(ctx context.Context, recipeName string) (*types.RecipePlan, error)
	TranslateRecipe(ctx context.Context, input *types.TranslateRecipeInput) (*types.TranslateRecipeOutput, error)
	GenerateRecipeAudio(ctx context.Context, input *types.GenerateAudioInput) (*types.GenerateAudioOutput, error)
	GenerateRecipeImage(ctx context.Context, recipeName string) (*types.GenerateImageOutput, error)
	BackfillRecipeImage(ctx context.Context, sessionID, recipeID string) (*types.GenerateImageOutput, error)
}

// ISpoilageService judges vegetable freshness from a photo. It never
// returns an error: failures degrade to a typed fallback verdict.
type ISpoilageService interface {
	DetectSpoiledVegetable(ctx context.Context, input *types.DetectSpoilageInput) *types.SpoilageResult
}

// IAlertService evaluates expiring ingredients and dispatches SMS
// notifications.
type IAlertService interface {
	SendExpirationAlerts(ctx context.Context, input *types.ExpirationAlertInput) (*types.ExpirationAlertResult, error)
}

// IProfileService owns the profile document.
type IProfileService interface {
	GetProfile(ctx context.Context, uid string) (*types.ProfileResponse, error)
	UpsertProfile(ctx context.Context, uid string, req *types.UpsertProfileRequest) (*types.ProfileResponse, error)
	UpdateLocation(ctx context.Context, uid string, loc *types.Location) (*types.ProfileResponse, error)
}

// SMSSender is the external SMS delivery collaborator.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}
