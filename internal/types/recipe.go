package types

// PlaceholderImageURL is substituted for every suggested recipe that
// arrives without an image, so the UI can render immediately. The real
// image is backfilled later, per recipe, by the image flow.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

// Recipe is a suggested recipe. ID is assigned server-side when the
// suggestion batch is created; it keys the asynchronous image backfill
// (names are not unique across a batch).
type Recipe struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions string   `json:"instructions" validate:"required"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

// RecipeContent is the text-only portion of a recipe, used as the unit
// of translation.
type RecipeContent struct {
	Name         string   `json:"name" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions string   `json:"instructions" validate:"required"`
}

// SuggestRecipesInput collects everything the suggestion prompt is
// parameterized with. Only Ingredients is mandatory.
type SuggestRecipesInput struct {
	Ingredients           []string `json:"ingredients" validate:"required,min=1,dive,required"`
	AdditionalIngredients []string `json:"additionalIngredients,omitempty"`
	Cuisine               string   `json:"cuisine,omitempty"`
	Category              string   `json:"category,omitempty"`
	FavoriteRecipes       []string `json:"favoriteRecipes,omitempty"`
}

// SuggestRecipesOutput is the validated model answer. SessionID is set by
// the orchestrator after the batch is stored for image backfill.
type SuggestRecipesOutput struct {
	SessionID string   `json:"sessionId,omitempty"`
	Recipes   []Recipe `json:"recipes" validate:"dive"`
}

// PlanStep is one step of a cooking plan.
type PlanStep struct {
	StepTitle    string `json:"stepTitle" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}

// RecipePlan is the structured workflow for preparing a named dish.
type RecipePlan struct {
	RecipeName  string     `json:"recipeName" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Ingredients []string   `json:"ingredients" validate:"required,min=1"`
	Steps       []PlanStep `json:"steps" validate:"required,min=1,dive"`
}

// TranslateRecipeInput pairs recipe text with a target language code.
// The "en" target is served locally without a model call.
type TranslateRecipeInput struct {
	Recipe         RecipeContent `json:"recipe" validate:"required"`
	TargetLanguage string        `json:"targetLanguage" validate:"required"`
}

// TranslateRecipeOutput keeps the canonical keys; only values are in the
// target language.
type TranslateRecipeOutput struct {
	TranslatedRecipe RecipeContent `json:"translatedRecipe" validate:"required"`
}
