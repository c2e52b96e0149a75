package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spanish-quiz/backend/internal/models"
)

const defaultTimeout = 10 * time.Second

// Payload is the body posted to a quiz's webhook URL when a participant
// completes a session.
type Payload struct {
	Event       string                `json:"event"`
	QuizID      string                `json:"quiz_id"`
	Participant models.Participant    `json:"participant"`
	Result      models.ResultTemplate `json:"result"`
	Summary     models.ResultsSummary `json:"summary"`
	CompletedAt time.Time             `json:"completed_at"`
}

// Notifier posts completion payloads to per-quiz webhook URLs. Delivery
// is best effort: failures are logged and never surfaced to the
// participant flow.
type Notifier struct {
	client *http.Client
}

func NewNotifier() *Notifier {
	return &Notifier{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Notify delivers the payload synchronously. Callers wanting
// fire-and-forget run it in a goroutine.
func (n *Notifier) Notify(ctx context.Context, url string, payload Payload) error {
	if url == "" {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// NotifyAsync delivers in the background with its own timeout, detached
// from the request context.
func (n *Notifier) NotifyAsync(url string, payload Payload) {
	if url == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		if err := n.Notify(ctx, url, payload); err != nil {
			log.Printf("WARN: [webhook] delivery to %s failed: %v", url, err)
		}
	}()
}
