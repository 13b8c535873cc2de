package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const resendDefaultURL = "https://api.resend.com/emails"

// ResendProvider delivers through the Resend transactional-email HTTP
// API. Any non-2xx response is a provider failure; the dispatcher falls
// through to the next provider in the chain.
type ResendProvider struct {
	apiKey     string
	from       string
	baseURL    string
	httpClient *http.Client
}

func NewResendProvider(apiKey, from string, httpClient *http.Client) *ResendProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResendProvider{
		apiKey:     strings.TrimSpace(apiKey),
		from:       from,
		baseURL:    resendDefaultURL,
		httpClient: httpClient,
	}
}

func (p *ResendProvider) Name() string {
	return "resend"
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (p *ResendProvider) Send(ctx context.Context, msg Message) error {
	payload := resendRequest{
		From:    p.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode resend request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send resend request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
