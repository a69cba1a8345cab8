package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"granitereply/domain/model"
)

const apiBase = "https://api.resend.com"

// Mailer sends transactional email through the Resend REST API.
type Mailer struct {
	httpClient *http.Client
	apiKey     string
	from       string
	to         string
	baseURL    string
}

func NewMailer(apiKey, from, to string) *Mailer {
	return &Mailer{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		from:       from,
		to:         to,
		baseURL:    apiBase,
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendLeadNotification emails the sales inbox about a new signup. Email is
// best effort; callers log the error and keep the lead.
func (m *Mailer) SendLeadNotification(ctx context.Context, lead *model.Lead) error {
	if m.apiKey == "" {
		return fmt.Errorf("resend api key not configured")
	}

	// Lead fields are user input; escape them before embedding in markup.
	body := fmt.Sprintf(
		"<h2>New lead</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Business:</strong> %s</p><p><strong>Plan:</strong> %s</p>",
		html.EscapeString(lead.FullName), html.EscapeString(lead.Email),
		html.EscapeString(lead.BusinessName), html.EscapeString(lead.Plan))

	payload, err := json.Marshal(emailPayload{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("New lead: %s", lead.BusinessName),
		HTML:    body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
