package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini REST API.
type Client struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewClient builds a Client from the environment. The API key comes from
// GEMINI_API_KEY or, failing that, from the file named by
// GEMINI_API_KEY_FILE (Docker secrets).
func NewClient(logger *zap.Logger) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("GEMINI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
		}
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	timeout := 60 * time.Second
	if timeoutStr := os.Getenv("GEMINI_TIMEOUT"); timeoutStr != "" {
		if parsed, err := time.ParseDuration(timeoutStr); err == nil {
			timeout = parsed
		}
	}

	return &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("gateway"),
	}, nil
}

// Wire types for the generateContent endpoint.

type apiPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *apiInlineData `json:"inline_data,omitempty"`
}

type apiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiVoiceConfig struct {
	PrebuiltVoiceConfig struct {
		VoiceName string `json:"voice_name"`
	} `json:"prebuilt_voice_config"`
}

type apiSpeechConfig struct {
	VoiceConfig apiVoiceConfig `json:"voice_config"`
}

type apiGenerationConfig struct {
	ResponseModalities []string         `json:"response_modalities,omitempty"`
	ResponseMIMEType   string           `json:"response_mime_type,omitempty"`
	SpeechConfig       *apiSpeechConfig `json:"speech_config,omitempty"`
}

type apiRequest struct {
	Contents         []apiContent         `json:"contents"`
	GenerationConfig *apiGenerationConfig `json:"generation_config,omitempty"`
	SafetySettings   []SafetySetting      `json:"safety_settings,omitempty"`
}

type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MIMEType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate performs one generateContent call and parses the first
// candidate into a Response.
func (c *Client) Generate(ctx context.Context, req *Request) (*Response, error) {
	parts := []apiPart{{Text: req.Prompt}}
	for _, m := range req.Media {
		parts = append(parts, apiPart{InlineData: &apiInlineData{MIMEType: m.MIMEType, Data: m.Data}})
	}

	body := apiRequest{
		Contents:       []apiContent{{Parts: parts}},
		SafetySettings: req.SafetySettings,
	}

	genCfg := &apiGenerationConfig{ResponseModalities: req.ResponseModalities}
	if req.JSONResponse {
		genCfg.ResponseMIMEType = "application/json"
	}
	if req.Voice != "" {
		speech := &apiSpeechConfig{}
		speech.VoiceConfig.PrebuiltVoiceConfig.VoiceName = req.Voice
		genCfg.SpeechConfig = speech
	}
	if len(genCfg.ResponseModalities) > 0 || genCfg.ResponseMIMEType != "" || genCfg.SpeechConfig != nil {
		body.GenerationConfig = genCfg
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("model API request failed",
			zap.String("model", req.Model),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	out := &Response{}
	for _, part := range parsed.Candidates[0].Content.Parts {
		if part.Text != "" && out.Text == "" {
			out.Text = part.Text
		}
		if part.InlineData != nil && out.Media == nil {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode media payload: %w", err)
			}
			out.Media = &Media{MIMEType: part.InlineData.MIMEType, Data: data}
		}
	}

	c.logger.Debug("model call completed",
		zap.String("model", req.Model),
		zap.Int("text_len", len(out.Text)),
		zap.Bool("has_media", out.Media != nil))

	return out, nil
}
