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

// ExpoTransport delivers notifications through the Expo push API.
type ExpoTransport struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type expoMessage struct {
	To    string            `json:"to"`
	Sound string            `json:"sound"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NewExpoTransport creates Expo push client with default timeout.
func NewExpoTransport(endpoint string, logger *slog.Logger) (*ExpoTransport, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse expo url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("expo url must be absolute")
	}
	return &ExpoTransport{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Push sends one message per token in a single batch request.
func (t *ExpoTransport) Push(ctx context.Context, tokens []string, n model.Notification) error {
	if len(tokens) == 0 {
		return nil
	}

	messages := make([]expoMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, expoMessage{
			To:    token,
			Sound: "default",
			Title: n.Title,
			Body:  n.Body,
			Data:  n.Data,
		})
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.logger.Error("expo push failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("expo push error: %s", resp.Status)
	}

	t.logger.Info("expo push sent", slog.Int("tokens", len(tokens)))
	return nil
}

func (t *ExpoTransport) Name() string {
	return "expo"
}
