package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", srv.URL)

	client, err := NewClient(zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestGenerateTextResponse(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": `{"ok":true}`}},
				}},
			},
		})
	})

	resp, err := client.Generate(context.Background(), &Request{
		Model:        "test-model",
		Prompt:       "hello",
		JSONResponse: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, `{"ok":true}`, resp.Text)
	assert.Nil(t, resp.Media)

	genCfg, ok := gotBody["generation_config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "application/json", genCfg["response_mime_type"])
}

func TestGenerateMediaResponse(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"inlineData": map[string]string{
							"mimeType": "image/png",
							"data":     base64.StdEncoding.EncodeToString(imageBytes),
						}},
					},
				}},
			},
		})
	})

	resp, err := client.Generate(context.Background(), &Request{
		Model:              "image-model",
		Prompt:             "a plate of food",
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Media)
	assert.Equal(t, "image/png", resp.Media.MIMEType)
	assert.Equal(t, imageBytes, resp.Media.Data)
}

func TestGenerateSendsVoiceConfig(t *testing.T) {
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"inlineData": map[string]string{
							"mimeType": "audio/pcm",
							"data":     base64.StdEncoding.EncodeToString([]byte{0, 0}),
						}},
					},
				}},
			},
		})
	})

	_, err := client.Generate(context.Background(), &Request{
		Model:              "tts-model",
		Prompt:             "read this",
		ResponseModalities: []string{"AUDIO"},
		Voice:              "Algenib",
	})
	require.NoError(t, err)

	genCfg := gotBody["generation_config"].(map[string]interface{})
	speech := genCfg["speech_config"].(map[string]interface{})
	voice := speech["voice_config"].(map[string]interface{})
	prebuilt := voice["prebuilt_voice_config"].(map[string]interface{})
	assert.Equal(t, "Algenib", prebuilt["voice_name"])
}

func TestGenerateNoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := client.Generate(context.Background(), &Request{Model: "test-model", Prompt: "hi"})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":429,"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), &Request{Model: "test-model", Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_FILE", "")

	_, err := NewClient(zap.NewNop())
	assert.Error(t, err)
}
