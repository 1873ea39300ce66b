package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stardustenigma/portfolio-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Notifier sends operator notifications through the Resend API. Dispatch is
// best-effort: a failed send is logged and never propagated to the caller,
// and can never undo a stored message.
type Notifier struct {
	logger   zerolog.Logger
	client   *http.Client
	endpoint string
	apiKey   string
	from     string
	to       []string
}

// NewNotifier builds a Notifier from configuration. When no API key is
// configured the notifier stays in log-only mode, which is what local
// development wants.
func NewNotifier(c map[string]string) *Notifier {
	to := config.GetString(c, "RESEND_TO_EMAIL", "")
	var recipients []string
	if to != "" {
		recipients = []string{to}
	}

	return &Notifier{
		logger:   log.With().Str("serviceName", "notifier").Logger(),
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: resendEndpoint,
		apiKey:   config.GetString(c, "RESEND_API_KEY", ""),
		from:     config.GetString(c, "RESEND_FROM_EMAIL", ""),
		to:       recipients,
	}
}

// Dispatch sends the notification on its own goroutine so persistence
// success reporting never waits on the email transport.
func (n *Notifier) Dispatch(subject, body string) {
	go func() {
		if err := n.Send(subject, body); err != nil {
			n.logger.Error().Err(err).Str("subject", subject).Msg("notification dispatch failed")
		}
	}()
}

// Send performs one synchronous delivery attempt.
func (n *Notifier) Send(subject, body string) error {
	if n.apiKey == "" || n.from == "" || len(n.to) == 0 {
		n.logger.Debug().Str("subject", subject).Msg("notifier not configured, skipping send")
		return nil
	}

	payload := ResendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: subject,
		Text:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var emailResp ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResp); err == nil && emailResp.ID != "" {
		n.logger.Info().Str("emailID", emailResp.ID).Msg("notification sent")
	}

	return nil
}
