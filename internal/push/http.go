// Package push invokes the external push-send function over HTTP.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ezystaff/staffing-api/internal/config"
	"github.com/ezystaff/staffing-api/internal/model"
	"github.com/ezystaff/staffing-api/internal/service/notification"
)

type httpSender struct {
	client      *http.Client
	functionURL string
	apiKey      string
}

func NewHTTPSender(cfg config.PushConfig) notification.PushSender {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &httpSender{
		client:      &http.Client{Timeout: timeout},
		functionURL: cfg.FunctionURL,
		apiKey:      cfg.APIKey,
	}
}

func (s *httpSender) Send(ctx context.Context, msg *model.PushMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.functionURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to invoke push function: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push function returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
