package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/audio"
	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// voiceForLanguage maps a language code to a prebuilt narrator voice.
// Unknown codes fall back to the English narrator.
var voiceForLanguage = map[string]string{
	"en": "Algenib",
	"es": "Caelus",
	"fr": "Electra",
	"de": "Bellatrix",
	"it": "Gemma",
	"hi": "Antares",
	"bn": "Arcturus",
	"ta": "Canopus",
}

const defaultVoice = "Algenib"

// GenerateRecipeAudio narrates the given text with a language-appropriate
// voice. The model returns raw PCM; the result is wrapped into a WAV
// container and returned as a data URI the client can play directly.
func (s *RecipeService) GenerateRecipeAudio(ctx context.Context, input *types.GenerateAudioInput) (*types.GenerateAudioOutput, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	voice, ok := voiceForLanguage[input.Language]
	if !ok {
		voice = defaultVoice
	}

	resp, err := s.gen.Generate(ctx, &gateway.Request{
		Model:              ttsModel,
		Prompt:             input.Text,
		ResponseModalities: []string{"AUDIO"},
		Voice:              voice,
	})
	if err != nil {
		return nil, fmt.Errorf("audio generation failed: %w", err)
	}
	if resp.Media == nil || len(resp.Media.Data) == 0 {
		return nil, gateway.ErrNoAudio
	}

	wav := audio.WrapPCM(resp.Media.Data)
	s.logger.Info("generated narration",
		zap.String("language", input.Language),
		zap.String("voice", voice),
		zap.Int("pcm_bytes", len(resp.Media.Data)))

	return &types.GenerateAudioOutput{
		AudioURL: "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav),
	}, nil
}
