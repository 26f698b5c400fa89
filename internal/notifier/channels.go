package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/tourist_safety_system/internal/config"
)

// SMSGateway - клиент HTTP-шлюза SMS. Отправка fire-and-forget:
// результат интересует диспетчер только как исход попытки.
type SMSGateway struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewSMSGateway(cfg *config.Config) *SMSGateway {
	return &SMSGateway{
		url:    cfg.SMSGatewayURL,
		apiKey: cfg.SMSGatewayAPIKey,
		// таймаут несет контекст попытки, клиент без собственного
		httpClient: &http.Client{},
	}
}

// SendSMS отправляет сообщение через шлюз
func (g *SMSGateway) SendSMS(ctx context.Context, toPhone, body string) error {
	if g.url == "" {
		return fmt.Errorf("sms gateway is not configured")
	}
	payload := map[string]string{"to": toPhone, "body": body}
	return postJSON(ctx, g.httpClient, g.url, g.apiKey, payload)
}

// EmailGateway - клиент HTTP-шлюза email
type EmailGateway struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewEmailGateway(cfg *config.Config) *EmailGateway {
	return &EmailGateway{
		url:        cfg.EmailGatewayURL,
		apiKey:     cfg.EmailGatewayAPIKey,
		httpClient: &http.Client{},
	}
}

// SendEmail отправляет письмо через шлюз
func (g *EmailGateway) SendEmail(ctx context.Context, toAddr, subject, body string) error {
	if g.url == "" {
		return fmt.Errorf("email gateway is not configured")
	}
	payload := map[string]string{"to": toAddr, "subject": subject, "body": body}
	return postJSON(ctx, g.httpClient, g.url, g.apiKey, payload)
}

// postJSON выполняет POST с JSON-телом и bearer-авторизацией
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}
	return nil
}
