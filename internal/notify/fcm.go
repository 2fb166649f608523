package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mireles/storefront/internal/domain/model"
)

// FCMTransport delivers notifications through the FCM HTTP API.
type FCMTransport struct {
	endpoint   *url.URL
	serverKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
	Priority        string            `json:"priority"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// NewFCMTransport creates FCM client with default timeout. An empty server
// key disables delivery: Push logs and drops instead of failing.
func NewFCMTransport(endpoint, serverKey string, logger *slog.Logger) (*FCMTransport, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse fcm url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("fcm url must be absolute")
	}
	return &FCMTransport{
		endpoint:  parsed,
		serverKey: serverKey,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Push sends one multicast request for the whole token batch.
func (t *FCMTransport) Push(ctx context.Context, tokens []string, n model.Notification) error {
	if len(tokens) == 0 {
		return nil
	}
	if t.serverKey == "" {
		t.logger.Warn("fcm server key not configured, dropping notification", slog.Int("tokens", len(tokens)))
		return nil
	}

	payload, err := json.Marshal(fcmRequest{
		RegistrationIDs: tokens,
		Notification:    fcmNotification{Title: n.Title, Body: n.Body, Sound: "default"},
		Data:            n.Data,
		Priority:        "high",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+t.serverKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.logger.Error("fcm push failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("fcm push error: %s", resp.Status)
	}

	t.logger.Info("fcm push sent", slog.Int("tokens", len(tokens)))
	return nil
}

func (t *FCMTransport) Name() string {
	return "fcm"
}
