package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/prompt"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

var extractIngredientsPrompt = prompt.MustParse("extract_ingredients", `You are an expert assistant that extracts food item information from an image of pantry items or a grocery receipt and organizes it into a structured format.

Analyze the image provided. For each food item you identify, you MUST provide the following details:

1.  **name**: The name of the ingredient (e.g., Bell Pepper, Tomato). MUST be concise.
2.  **quantity**: The quantity of the ingredient. If it's from a receipt, use the quantity shown. If it's a photo of items, estimate the quantity. It MUST be a number.
3.  **expirationDate**: An estimated expiration date based on the ingredient's typical shelf life, assuming it was purchased today. Today's date is {{.CurrentDate}}. Format the date as YYYY-MM-DD.

**IMPORTANT RULES:**
- For the expirationDate, provide ONLY the date. Do not add any extra words.
- Keep the output for each field extremely concise and readable.
- DO NOT add any conversational text, warnings, or extra paragraphs. Only return the structured data as a JSON object with an "ingredients" array.
`)

// PantryService turns pantry photos and receipts into ingredient lists.
type PantryService struct {
	gen    gateway.Generator
	logger *zap.Logger
	now    func() time.Time
}

// NewPantryService creates a new PantryService instance
func NewPantryService(gen gateway.Generator, logger *zap.Logger) *PantryService {
	return &PantryService{
		gen:    gen,
		logger: logger.Named("pantry"),
		now:    time.Now,
	}
}

var _ IPantryService = (*PantryService)(nil)

// ExtractIngredients sends the image to the vision model and decodes the
// structured answer. The current calendar date is injected so the model
// can estimate relative expiration dates. Failures propagate to the
// caller; there is no local recovery here.
func (s *PantryService) ExtractIngredients(ctx context.Context, input *types.ExtractIngredientsInput) (*types.ExtractIngredientsOutput, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	media, err := gateway.InlineFromDataURI(input.ReceiptDataURI)
	if err != nil {
		return nil, fmt.Errorf("invalid receipt image: %w", err)
	}

	promptText, err := extractIngredientsPrompt.Render(struct {
		CurrentDate string
	}{CurrentDate: s.now().Format("2006-01-02")})
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:        textModel,
		Prompt:       promptText,
		Media:        []gateway.InlineData{media},
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ingredient extraction failed: %w", err)
	}

	raw, err := gateway.ExtractJSON(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("ingredient extraction failed: %w", err)
	}

	var out types.ExtractIngredientsOutput
	if err := schema.Decode([]byte(raw), &out); err != nil {
		return nil, err
	}
	if out.Ingredients == nil {
		out.Ingredients = []types.Ingredient{}
	}

	s.logger.Info("extracted ingredients", zap.Int("count", len(out.Ingredients)))
	return &out, nil
}
