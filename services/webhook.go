// services/webhook.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notifier delivers one lead submission to an external system.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, path string, payload map[string]interface{}) error
}

// Forwarder fans lead submissions out to its notifiers in the background.
// Delivery is at most once: failures are logged and dropped.
type Forwarder struct {
	notifiers []Notifier
	timeout   time.Duration
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewForwarder(logger *zap.Logger, timeout time.Duration, notifiers ...Notifier) *Forwarder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Forwarder{
		notifiers: notifiers,
		timeout:   timeout,
		logger:    logger.Named("forwarder"),
	}
}

// Forward returns immediately. record is any JSON-serialisable value; its
// fields become the payload, stamped with the forwarding time.
func (f *Forwarder) Forward(path string, record interface{}) {
	if f == nil || len(f.notifiers) == 0 {
		return
	}

	payload, err := toPayload(record)
	if err != nil {
		f.logger.Error("failed to encode lead", zap.String("path", path), zap.Error(err))
		return
	}
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	for _, n := range f.notifiers {
		f.wg.Add(1)
		go func(n Notifier) {
			defer f.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
			defer cancel()

			if err := n.Notify(ctx, path, payload); err != nil {
				f.logger.Error("lead forward failed",
					zap.String("notifier", n.Name()),
					zap.String("path", path),
					zap.Error(err),
				)
				return
			}
			f.logger.Debug("lead forwarded", zap.String("notifier", n.Name()), zap.String("path", path))
		}(n)
	}
}

// Wait blocks until in-flight deliveries finish.
func (f *Forwarder) Wait() {
	if f != nil {
		f.wg.Wait()
	}
}

func toPayload(record interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	payload := map[string]interface{}{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// WebhookNotifier POSTs the payload as JSON to {baseURL}/{path}.
type WebhookNotifier struct {
	baseURL string
	client  *http.Client
}

func NewWebhookNotifier(baseURL string, client *http.Client) *WebhookNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookNotifier{baseURL: baseURL, client: client}
}

func (w *WebhookNotifier) Name() string { return "webhook" }

func (w *WebhookNotifier) Notify(ctx context.Context, path string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/"+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded %s", resp.Status)
	}
	return nil
}
