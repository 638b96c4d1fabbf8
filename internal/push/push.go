// Package push delivers notification payloads to Web Push endpoints.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"stingwatch/internal/config"
	"stingwatch/internal/domain"
)

// Outcome classifies one delivery attempt.
type Outcome int

const (
	// OutcomeDelivered means the push service accepted the message.
	OutcomeDelivered Outcome = iota
	// OutcomeGone means the endpoint no longer exists (HTTP 404/410) and
	// must not be retried.
	OutcomeGone
	// OutcomeTransient covers timeouts, network errors and non-2xx
	// responses that may succeed later.
	OutcomeTransient
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeGone:
		return "gone"
	default:
		return "transient_failure"
	}
}

// WebPush sends VAPID-signed Web Push messages. The keypair is injected via
// config at construction; there is no package-level state.
type WebPush struct {
	cfg    config.PushConfig
	client *http.Client
	logger *slog.Logger
}

func NewWebPush(cfg config.PushConfig, logger *slog.Logger) *WebPush {
	return &WebPush{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

func (t *WebPush) Send(ctx context.Context, sub *domain.PushSubscription, payload domain.NotificationPayload) (Outcome, error) {
	if err := payload.Validate(); err != nil {
		return OutcomeTransient, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return OutcomeTransient, err
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, &webpush.Options{
		HTTPClient:      t.client,
		Subscriber:      t.cfg.Subject,
		VAPIDPublicKey:  t.cfg.PublicKey,
		VAPIDPrivateKey: t.cfg.PrivateKey,
		TTL:             int(t.cfg.TTL.Seconds()),
	})
	if err != nil {
		return OutcomeTransient, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return OutcomeDelivered, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return OutcomeGone, nil
	default:
		return OutcomeTransient, fmt.Errorf("push service returned %s", resp.Status)
	}
}
