package mailjet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.mailjet.com"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Mailjet Send API v3.1
type Client struct {
	baseURL    string
	apiKey     string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Mailjet
func NewClient(apiKey, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		apiKey:    apiKey,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// IsConfigured возвращает true, если заданы оба API ключа
func (c *Client) IsConfigured() bool {
	return c.apiKey != "" && c.secretKey != ""
}

// Send отправляет одно письмо через Mailjet.
// Возвращает ErrNotConfigured без обращения к API, если ключи не заданы.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendRequest{
		Messages: []messageV31{
			{
				From:     recipient{Email: msg.FromEmail, Name: msg.FromName},
				To:       []recipient{{Email: msg.ToEmail, Name: msg.ToName}},
				Subject:  msg.Subject,
				HTMLPart: msg.HTMLPart,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v3.1/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.apiKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(result.Messages) == 0 || result.Messages[0].Status != "success" {
		return fmt.Errorf("%w: unexpected message status in response", ErrSendFailed)
	}

	if len(result.Messages[0].To) > 0 {
		c.log.Info("Mailjet: message %d sent to %s", result.Messages[0].To[0].MessageID, msg.ToEmail)
	}

	return nil
}
