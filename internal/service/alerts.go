package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// expirationWindow is how far ahead an ingredient must expire to be
// flagged. Anything expiring strictly before now+window qualifies,
// already-expired items included.
const expirationWindow = 3 * 24 * time.Hour

// AlertService evaluates pantry expirations and dispatches reminders.
// Evaluation is pure date arithmetic; no model call is involved.
type AlertService struct {
	sms    SMSSender
	logger *zap.Logger
	now    func() time.Time
}

// NewAlertService creates a new AlertService instance. sms may be nil;
// the alert message is then computed but not dispatched.
func NewAlertService(sms SMSSender, logger *zap.Logger) *AlertService {
	return &AlertService{
		sms:    sms,
		logger: logger.Named("alerts"),
		now:    time.Now,
	}
}

var _ IAlertService = (*AlertService)(nil)

// expiringSoon returns the ingredients whose expiration date falls
// strictly before the cutoff. Missing or unparseable dates never alert:
// guessing at spoilage from bad data would erode trust in real alerts.
func expiringSoon(ingredients []types.AlertIngredient, cutoff time.Time) []types.AlertIngredient {
	var soon []types.AlertIngredient
	for _, ing := range ingredients {
		if ing.ExpirationDate == "" {
			continue
		}
		exp, err := time.Parse("2006-01-02", ing.ExpirationDate)
		if err != nil {
			continue
		}
		if exp.Before(cutoff) {
			soon = append(soon, ing)
		}
	}
	return soon
}

func formatAlertMessage(soon []types.AlertIngredient) string {
	parts := make([]string, 0, len(soon))
	for _, ing := range soon {
		exp, _ := time.Parse("2006-01-02", ing.ExpirationDate)
		parts = append(parts, fmt.Sprintf("%s (expiring on %s)", ing.Name, exp.Format("Jan 02")))
	}
	return fmt.Sprintf("Heads up from FreshNCook! These ingredients are expiring soon: %s. Time to cook them up!", strings.Join(parts, ", "))
}

// SendExpirationAlerts checks the pantry for ingredients expiring within
// the next three days and, when any are found, texts the user a summary.
func (s *AlertService) SendExpirationAlerts(ctx context.Context, input *types.ExpirationAlertInput) (*types.ExpirationAlertResult, error) {
	if err := schema.Validate(input); err != nil {
		return nil, err
	}

	cutoff := s.now().Add(expirationWindow)
	soon := expiringSoon(input.Ingredients, cutoff)
	if len(soon) == 0 {
		s.logger.Info("no ingredients expiring soon")
		return &types.ExpirationAlertResult{Message: "No ingredients are expiring soon. No alert sent."}, nil
	}

	body := formatAlertMessage(soon)

	if s.sms == nil {
		s.logger.Warn("sms sender not configured, alert not dispatched",
			zap.Int("expiring_count", len(soon)))
		return &types.ExpirationAlertResult{Message: body}, nil
	}

	if err := s.sms.Send(ctx, input.PhoneNumber, body); err != nil {
		return nil, fmt.Errorf("failed to send expiration alert: %w", err)
	}
	s.logger.Info("sent expiration alert", zap.Int("expiring_count", len(soon)))
	return &types.ExpirationAlertResult{
		Message: fmt.Sprintf("Alert sent successfully to %s!", input.PhoneNumber),
	}, nil
}
