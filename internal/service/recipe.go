package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/prompt"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// suggestSafetySettings relaxes the provider's content filters for food
// prompts, which otherwise trip on knives and raw meat.
var suggestSafetySettings = []gateway.SafetySetting{
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_ONLY_HIGH"},
}

var suggestRecipesPrompt = prompt.MustParse("suggest_recipes", `You are a recipe suggestion expert. Given a list of ingredients, suggest 5 diverse recipes.
You MUST ONLY use the ingredients provided in the list. Do not add any other major ingredients, especially meats, fish, or poultry, if they are not on the list. You can assume common pantry staples like oil, salt, and pepper are available.
{{if .Cuisine}}
The user has requested recipes from the following cuisine: {{.Cuisine}}. Please prioritize recipes from this cuisine.
{{end}}
{{if .Category}}
The user has requested recipes for the following meal category: {{.Category}}. Please prioritize recipes for this meal type.
{{end}}
{{if .FavoriteRecipes}}
The user has indicated they like the following recipes. Use these as inspiration for your suggestions, tailoring them to their tastes (e.g., similar cuisine, style, or ingredients).
Favorite Recipes:
{{range .FavoriteRecipes}}- {{.}}
{{end}}
{{end}}

Ingredients:
{{range .Ingredients}}- {{.}}
{{end}}
{{if .AdditionalIngredients}}
Additional Ingredients:
{{range .AdditionalIngredients}}- {{.}}
{{end}}
{{end}}

For each recipe, provide the name, ingredients, and instructions.
Format the output as a JSON object with a "recipes" array.
`)

var recipePlanPrompt = prompt.MustParse("recipe_plan", `You are a master chef. A user wants to cook "{{.RecipeName}}".

Create a detailed, step-by-step plan and workflow for preparing this dish.

Your plan should include:
1.  A brief, enticing description of the final dish.
2.  A list of all necessary ingredients.
3.  A sequence of clear, actionable steps from preparation to plating.

Respond with a JSON object with fields recipeName, description, ingredients, and steps (each step has stepTitle and instructions).`)

var translateRecipePrompt = prompt.MustParse("translate_recipe", `Translate the following recipe into {{.TargetLanguage}}.

Recipe Name: {{.Recipe.Name}}
Ingredients:
{{range .Recipe.Ingredients}}- {{.}}
{{end}}

Instructions:
{{.Recipe.Instructions}}

Return the translated content as a JSON object: {"translatedRecipe": {"name": ..., "ingredients": [...], "instructions": ...}}. The keys (name, ingredients, instructions) must remain in English.
`)

// RecipeService orchestrates every recipe-centric model call.
type RecipeService struct {
	gen      gateway.Generator
	sessions *RecipeSessionStore
	images   *ImageStore
	logger   *zap.Logger
}

// NewRecipeService creates a new RecipeService instance. sessions and
// images may be nil; suggestion then skips backfill bookkeeping and the
// image flow returns data URIs.
func NewRecipeService(gen gateway.Generator, sessions *RecipeSessionStore, images *ImageStore, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		gen:      gen,
		sessions: sessions,
		images:   images,
		logger:   logger.Named("recipe"),
	}
}

var _ IRecipeService = (*RecipeService)(nil)

// SuggestRecipes asks the model for recipes restricted to the supplied
// ingredients. Every recipe gets a server-side ID and, when missing, the
// placeholder image so the UI can render before generation catches up.
// An empty model answer yields an empty list, not an error.
func (s *RecipeService) SuggestRecipes(ctx context.Context, input *types.SuggestRecipesInput) (*types.SuggestRecipesOutput, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	promptText, err := suggestRecipesPrompt.Render(input)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:          textModel,
		Prompt:         promptText,
		SafetySettings: suggestSafetySettings,
		JSONResponse:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("recipe suggestion failed: %w", err)
	}

	out := &types.SuggestRecipesOutput{Recipes: []types.Recipe{}}
	raw, err := gateway.ExtractJSON(resp.Text)
	if err != nil {
		// The model produced nothing usable; treat as no suggestions.
		s.logger.Warn("model returned no recipe payload")
		return out, nil
	}
	if err := schema.Decode([]byte(raw), out); err != nil {
		return nil, err
	}

	for i := range out.Recipes {
		out.Recipes[i].ID = uuid.New().String()
		if out.Recipes[i].ImageURL == "" {
			out.Recipes[i].ImageURL = types.PlaceholderImageURL
		}
	}

	if s.sessions != nil && len(out.Recipes) > 0 {
		sessionID, err := s.sessions.SaveBatch(ctx, out.Recipes)
		if err != nil {
			return nil, fmt.Errorf("failed to store suggestion batch: %w", err)
		}
		out.SessionID = sessionID
	}

	s.logger.Info("suggested recipes", zap.Int("count", len(out.Recipes)))
	return out, nil
}

// GenerateRecipePlan returns a structured cooking workflow for a dish.
func (s *RecipeService) GenerateRecipePlan(ctx context.Context, recipeName string) (*types.RecipePlan, error) {
	if recipeName == "" {
		return nil, &schema.ValidationError{Fields: []string{"recipeName"}}
	}

	promptText, err := recipePlanPrompt.Render(struct{ RecipeName string }{RecipeName: recipeName})
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:        textModel,
		Prompt:       promptText,
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("recipe plan generation failed: %w", err)
	}

	raw, err := gateway.ExtractJSON(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("recipe plan generation failed: %w", err)
	}

	var plan types.RecipePlan
	if err := schema.Decode([]byte(raw), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// TranslateRecipe translates recipe text into the target language. The
// "en" target is a deliberate fast path served without any model call.
func (s *RecipeService) TranslateRecipe(ctx context.Context, input *types.TranslateRecipeInput) (*types.TranslateRecipeOutput, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	if input.TargetLanguage == "en" {
		return &types.TranslateRecipeOutput{TranslatedRecipe: input.Recipe}, nil
	}

	promptText, err := translateRecipePrompt.Render(input)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:        textModel,
		Prompt:       promptText,
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("recipe translation failed: %w", err)
	}

	raw, err := gateway.ExtractJSON(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("recipe translation failed: %w", err)
	}

	var out types.TranslateRecipeOutput
	if err := schema.Decode([]byte(raw), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateRecipeImage produces a photographic image for a recipe name.
// A response without an image payload is an explicit gateway error, not
// something to paper over.
func (s *RecipeService) GenerateRecipeImage(ctx context.Context, recipeName string) (*types.GenerateImageOutput, error) {
	if recipeName == "" {
		return nil, &schema.ValidationError{Fields: []string{"recipeName"}}
	}

	promptText := fmt.Sprintf("A delicious-looking, professionally photographed image of %q on a plate, ready to eat.", recipeName)

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:              imageModel,
		Prompt:             promptText,
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return nil, fmt.Errorf("recipe image generation failed: %w", err)
	}
	if resp.Media == nil {
		return nil, gateway.ErrNoMedia
	}

	if s.images != nil {
		url, err := s.images.Upload(ctx, resp.Media.Data)
		if err != nil {
			// Object storage is best-effort; the data URI still works.
			s.logger.Warn("image upload failed, falling back to data URI", zap.Error(err))
		} else {
			return &types.GenerateImageOutput{ImageURL: url}, nil
		}
	}

	return &types.GenerateImageOutput{ImageURL: resp.Media.DataURI()}, nil
}

// BackfillRecipeImage generates the image for one suggested recipe and
// applies it to the stored batch with compare-and-set semantics: the
// update lands only while the stored value still equals the placeholder,
// so a late or duplicate generation can never revert a real image.
func (s *RecipeService) BackfillRecipeImage(ctx context.Context, sessionID, recipeID string) (*types.GenerateImageOutput, error) {
	if s.sessions == nil {
		return nil, errors.New("recipe session store is not configured")
	}

	recipe, err := s.sessions.GetRecipe(ctx, sessionID, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.ImageURL != types.PlaceholderImageURL && recipe.ImageURL != "" {
		// Already backfilled, nothing to generate.
		return &types.GenerateImageOutput{ImageURL: recipe.ImageURL}, nil
	}

	generated, err := s.GenerateRecipeImage(ctx, recipe.Name)
	if err != nil {
		return nil, err
	}

	applied, current, err := s.sessions.SetImageURL(ctx, sessionID, recipeID, generated.ImageURL)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Another backfill won the race; return what is stored.
		return &types.GenerateImageOutput{ImageURL: current}, nil
	}
	return generated, nil
}
