// Package notification implements delivery of moderation alerts.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"coastal/config"
	"coastal/internal/domain/entity"
	"coastal/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultWebhookTimeout = 30 * time.Second

// webhookNotifier implements RegistrationNotifier by posting a JSON payload
// to a configured webhook endpoint.
type webhookNotifier struct {
	endpoint   string
	enabled    bool
	httpClient *http.Client
	logger     *slog.Logger
}

// registrationPayload is the wire shape of a new-registration alert.
type registrationPayload struct {
	RegistrationID string `json:"registration_id"`
	Name           string `json:"name"`
	Number         string `json:"number,omitempty"`
	Location       string `json:"location,omitempty"`
	OwnerName      string `json:"owner_name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	SubmittedAt    string `json:"submitted_at"`
}

// NewWebhookNotifier creates a webhook-backed registration notifier.
func NewWebhookNotifier(cfg *config.Config, logger *slog.Logger) service.RegistrationNotifier {
	timeout := defaultWebhookTimeout
	var endpoint string
	var enabled bool
	if cfg.Notification != nil {
		enabled = cfg.Notification.Enabled && cfg.Notification.Webhook != ""
		endpoint = cfg.Notification.Webhook
		if cfg.Notification.Timeout > 0 {
			timeout = cfg.Notification.Timeout
		}
	}

	return &webhookNotifier{
		endpoint: endpoint,
		enabled:  enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NotifyNewRegistration announces a freshly submitted registration.
func (n *webhookNotifier) NotifyNewRegistration(ctx context.Context, registration *entity.BarracaRegistration) error {
	if !n.enabled {
		n.logger.Debug("[Notification] Webhook disabled, skipping alert",
			slog.String("registration_id", registration.ID.String()),
		)

		return nil
	}

	payload := registrationPayload{
		RegistrationID: registration.ID.String(),
		Name:           registration.Name,
		Number:         registration.BarracaNumber,
		Location:       registration.Location,
		OwnerName:      registration.OwnerName,
		Phone:          registration.Contact.Phone,
		Email:          registration.Contact.Email,
		SubmittedAt:    registration.SubmittedAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	n.logger.Info("[Notification] Registration alert delivered",
		slog.String("registration_id", registration.ID.String()),
	)

	return nil
}
