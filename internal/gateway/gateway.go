// Package gateway is the uniform client for the generative AI backend.
// Every flow goes through the same call shape: a rendered prompt plus
// optional inline media in, text and/or generated media out. The gateway
// performs exactly one network call per invocation; retries are a caller
// concern.
package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCandidates means the provider answered but produced nothing.
	ErrNoCandidates = errors.New("no response candidates from model")
	// ErrNoMedia means a generation request came back without the
	// requested media payload.
	ErrNoMedia = errors.New("no media was generated")
	// ErrNoAudio means a speech request came back without audio data.
	ErrNoAudio = errors.New("no audio data was generated")
)

// SafetySetting is one provider safety-threshold entry.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// InlineData is a media payload attached to a request, base64-encoded
// with its MIME type.
type InlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Request describes one model invocation.
type Request struct {
	Model              string
	Prompt             string
	Media              []InlineData
	ResponseModalities []string
	SafetySettings     []SafetySetting
	// Voice selects a prebuilt synthesis voice for AUDIO responses.
	Voice string
	// JSONResponse asks the model for a JSON-typed answer.
	JSONResponse bool
}

// Media is a decoded media payload from a model response.
type Media struct {
	MIMEType string
	Data     []byte
}

// DataURI re-encodes the payload in data-URI form for transport.
func (m *Media) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", m.MIMEType, base64.StdEncoding.EncodeToString(m.Data))
}

// Response is the parsed first candidate of a model answer.
type Response struct {
	Text  string
	Media *Media
}

// Generator is the call surface flows depend on; satisfied by Client and
// by test fakes.
type Generator interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// ParseDataURI splits a data:<mime>;base64,<payload> URI into its MIME
// type and decoded bytes.
func ParseDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URI is not base64-encoded")
	}
	mimeType := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	return mimeType, data, nil
}

// InlineFromDataURI converts a data URI into request inline data.
func InlineFromDataURI(uri string) (InlineData, error) {
	mimeType, data, err := ParseDataURI(uri)
	if err != nil {
		return InlineData{}, err
	}
	return InlineData{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// ExtractJSON trims prose some models wrap around a JSON answer,
// returning the substring from the first '{' to the last '}'.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return text[start : end+1], nil
}
