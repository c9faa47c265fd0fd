package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/config"
)

// TwilioSender sends SMS messages through the Twilio REST API.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	apiURL     string
	client     *http.Client
	logger     *zap.Logger
}

// NewTwilioSender creates a new TwilioSender instance, or nil when the
// Twilio credentials are not configured.
func NewTwilioSender(cfg *config.Config, logger *zap.Logger) *TwilioSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return nil
	}
	return &TwilioSender{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFromNumber,
		apiURL:     "https://api.twilio.com/2010-04-01",
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     logger.Named("twilio"),
	}
}

var _ SMSSender = (*TwilioSender)(nil)

// Send posts one SMS message.
func (t *TwilioSender) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.apiURL, t.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		t.logger.Error("sms provider rejected message",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload))
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}
	return nil
}
