package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
	"stingwatch/pkg/validator"
)

type subscriptionRegistry struct {
	subs   SubscriptionStore
	logger *slog.Logger
}

func NewSubscriptionRegistry(subs SubscriptionStore, logger *slog.Logger) SubscriptionRegistry {
	return &subscriptionRegistry{subs: subs, logger: logger}
}

// Register is an idempotent upsert keyed by endpoint. Re-registering an
// endpoint reactivates it and rebinds it to the calling user, which covers a
// browser re-subscribing after its keys rotated.
func (s *subscriptionRegistry) Register(ctx context.Context, userID uuid.UUID, req domain.SubscribeRequest, userAgent string) (*domain.PushSubscription, error) {
	const op = "service.Subscription.Register"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	sub := &domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  req.Endpoint,
		P256dhKey: req.Keys.P256dh,
		AuthKey:   req.Keys.Auth,
		UserAgent: userAgent,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.subs.Upsert(ctx, sub)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("push subscription registered",
		slog.String("user_id", userID.String()),
		slog.String("subscription_id", stored.ID.String()),
	)
	return stored, nil
}

// Deactivate soft-disables an endpoint. The row stays for audit; the endpoint
// just drops out of the active set. Idempotent under racing dispatches.
func (s *subscriptionRegistry) Deactivate(ctx context.Context, endpoint string) error {
	const op = "service.Subscription.Deactivate"

	if endpoint == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := s.subs.Deactivate(ctx, endpoint); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (s *subscriptionRegistry) ActiveEndpointsFor(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error) {
	const op = "service.Subscription.ActiveEndpointsFor"

	subs, err := s.subs.ActiveByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return subs, nil
}
