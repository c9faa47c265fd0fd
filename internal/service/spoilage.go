package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/prompt"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

var detectSpoilagePrompt = prompt.MustParse("detect_spoilage", `You are an expert in food quality and safety. Your task is to analyze the provided image of a vegetable.

First, determine if the item in the image is actually the vegetable the user claims it is: "{{.VegetableName}}". Set the "isVegetable" field accordingly.

If it is the correct vegetable, inspect it for signs of spoilage, such as mold, discoloration, soft spots, or wilting. Set the "isSpoiled" field based on your findings. Provide a clear "reason" for your conclusion and a "confidence" score between 0 and 1.

If the item is not the claimed vegetable, or not a vegetable at all, set "isVegetable" to false and explain what you see in the "reason" field.

Respond with a JSON object containing isVegetable, isSpoiled, reason, and confidence.`)

// SpoilageService analyzes vegetable photos for freshness.
type SpoilageService struct {
	gen    gateway.Generator
	logger *zap.Logger
}

// NewSpoilageService creates a new SpoilageService instance.
func NewSpoilageService(gen gateway.Generator, logger *zap.Logger) *SpoilageService {
	return &SpoilageService{gen: gen, logger: logger.Named("spoilage")}
}

var _ ISpoilageService = (*SpoilageService)(nil)

// fallbackVerdict is returned whenever analysis cannot produce a trusted
// answer. It never claims the item is fine; the user is asked to retry.
func fallbackVerdict() *types.SpoilageResult {
	f := false
	zero := 0.0
	return &types.SpoilageResult{
		IsVegetable: &f,
		Reason:      "Analysis failed. Please try again with a clearer image.",
		Confidence:  &zero,
	}
}

// DetectSpoiledVegetable inspects the photo and reports whether the
// claimed vegetable is present and whether it shows spoilage. Unlike the
// other flows this one never surfaces an error: any failure, from a bad
// input to an unparseable model answer, degrades to a safe fallback
// verdict so the caller always has something to show.
func (s *SpoilageService) DetectSpoiledVegetable(ctx context.Context, input *types.DetectSpoilageInput) *types.SpoilageResult {
	result, err := s.analyze(ctx, input)
	if err != nil {
		s.logger.Warn("spoilage analysis failed", zap.Error(err))
		return fallbackVerdict()
	}
	return result
}

func (s *SpoilageService) analyze(ctx context.Context, input *types.DetectSpoilageInput) (*types.SpoilageResult, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	media, err := gateway.InlineFromDataURI(input.VegetableImageURI)
	if err != nil {
		return nil, err
	}

	promptText, err := detectSpoilagePrompt.Render(input)
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
		return nil, fmt.Errorf("spoilage detection failed: %w", err)
	}

	raw, err := gateway.ExtractJSON(resp.Text)
	if err != nil {
		return nil, fmt.Errorf("spoilage detection failed: %w", err)
	}

	var result types.SpoilageResult
	if err := schema.Decode([]byte(raw), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
