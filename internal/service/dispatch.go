package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"stingwatch/internal/config"
	"stingwatch/internal/domain"
	"stingwatch/internal/geo"
	"stingwatch/internal/push"
	"stingwatch/pkg/e"
)

type alertDispatcher struct {
	alerts    AlertStore
	registry  SubscriptionRegistry
	directory Directory
	cache     ManagerCache
	transport PushTransport
	logger    *slog.Logger
	cfg       config.AlertConfig
	now       func() time.Time
}

func NewAlertDispatcher(
	alerts AlertStore,
	registry SubscriptionRegistry,
	directory Directory,
	cache ManagerCache,
	transport PushTransport,
	cfg config.AlertConfig,
	logger *slog.Logger,
) AlertDispatcher {
	return &alertDispatcher{
		alerts:    alerts,
		registry:  registry,
		directory: directory,
		cache:     cache,
		transport: transport,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Dispatch creates the alert record for a validated sting (exactly once per
// incident) and fans the notification out to every manager whose venue
// geofence catches the incident. Delivery failures are absorbed into the
// result, never returned as errors: a manager's dead endpoint must not fail
// the incident that triggered the alert.
func (s *alertDispatcher) Dispatch(ctx context.Context, incident *domain.Incident) (*domain.DispatchResult, error) {
	const op = "service.Dispatch"

	if !domain.AlertWorthy(incident) {
		s.logger.Debug("incident not alert-worthy, skipping dispatch",
			slog.String("incident_id", incident.ID.String()),
			slog.String("category", string(incident.Category)),
			slog.String("verification", string(incident.VerificationStatus)),
		)
		return &domain.DispatchResult{}, nil
	}

	alert, err := s.ensureAlert(ctx, incident)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	managers, err := s.managersWithVenue(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	candidates := make([]geo.Candidate, 0, len(managers))
	for _, m := range managers {
		candidates = append(candidates, geo.Candidate{
			ID:          m.UserID,
			Location:    m.Location,
			RadiusMiles: m.RadiusMiles,
		})
	}
	recipients := geo.WithinRange(alert.Location, alert.RadiusMiles, candidates)

	result := &domain.DispatchResult{
		AlertID:      alert.ID,
		ManagerCount: len(recipients),
	}
	if len(recipients) == 0 {
		s.logger.Info("no managers within geofence",
			slog.String("alert_id", alert.ID.String()),
			slog.Float64("radius_miles", alert.RadiusMiles),
		)
		return result, nil
	}

	payload := buildAlertPayload(incident, alert)
	sent, failed := s.fanOut(ctx, recipients, payload)
	result.NotificationsSent = sent
	result.Failures = failed

	s.logger.Info("alert dispatched",
		slog.String("alert_id", alert.ID.String()),
		slog.Int("manager_count", result.ManagerCount),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)
	return result, nil
}

// ensureAlert makes alert creation idempotent on incident id. A retried
// dispatch for the same incident finds and reuses the existing record; the
// unique constraint closes the race between concurrent dispatches.
func (s *alertDispatcher) ensureAlert(ctx context.Context, incident *domain.Incident) (*domain.Alert, error) {
	alert, err := s.alerts.GetByIncident(ctx, incident.ID)
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	alert = &domain.Alert{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		Title:       "Verified Regulatory Incident Nearby",
		Message: fmt.Sprintf(
			"A verified regulatory incident was reported %s in your area. Review protocols and update staff training as needed.",
			incident.IncidentAt.UTC().Format("Jan 2, 2006")),
		Severity:    domain.SeverityCritical,
		Location:    incident.Location,
		RadiusMiles: s.cfg.DefaultRadiusMiles,
		PublishedAt: s.now().UTC(),
		IsActive:    true,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return s.alerts.GetByIncident(ctx, incident.ID)
		}
		return nil, err
	}
	return alert, nil
}

// fanOut delivers the payload to every active endpoint of every recipient
// with bounded concurrency. All-settled semantics: each attempt runs to its
// own outcome and a gone endpoint is deactivated so the next dispatch skips
// it.
func (s *alertDispatcher) fanOut(ctx context.Context, recipients []uuid.UUID, payload domain.NotificationPayload) (sent, failed int) {
	type delivery struct {
		sub *domain.PushSubscription
	}

	jobs := make(chan delivery)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < s.cfg.DispatchConcurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range jobs {
				ok := s.deliver(ctx, d.sub, payload)
				mu.Lock()
				if ok {
					sent++
				} else {
					failed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, userID := range recipients {
		subs, err := s.registry.ActiveEndpointsFor(ctx, userID)
		if err != nil {
			s.logger.Error("could not load subscriptions for recipient",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		}
		for _, sub := range subs {
			jobs <- delivery{sub: sub}
		}
	}
	close(jobs)
	wg.Wait()

	return sent, failed
}

func (s *alertDispatcher) deliver(ctx context.Context, sub *domain.PushSubscription, payload domain.NotificationPayload) bool {
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	outcome, err := s.transport.Send(sendCtx, sub, payload)
	switch outcome {
	case push.OutcomeDelivered:
		return true
	case push.OutcomeGone:
		// Self-heal: the endpoint is dead, drop it from the active set
		// so the next dispatch does not waste a round-trip on it.
		if derr := s.registry.Deactivate(ctx, sub.Endpoint); derr != nil {
			s.logger.Error("could not deactivate gone subscription",
				slog.String("endpoint", sub.Endpoint),
				slog.Any("error", derr),
			)
		}
		s.logger.Warn("subscription gone, deactivated",
			slog.String("user_id", sub.UserID.String()),
			slog.String("subscription_id", sub.ID.String()),
		)
		return false
	default:
		s.logger.Warn("push delivery failed",
			slog.String("user_id", sub.UserID.String()),
			slog.String("subscription_id", sub.ID.String()),
			slog.Any("error", err),
		)
		return false
	}
}

// SendTest pushes a throwaway notification to all of one user's endpoints so
// clients can verify their subscription end to end.
func (s *alertDispatcher) SendTest(ctx context.Context, userID uuid.UUID) (*domain.DispatchResult, error) {
	const op = "service.Dispatch.SendTest"

	payload := domain.NotificationPayload{
		Title:       "Stingwatch Test",
		Body:        "Push notifications are working. You're all set.",
		SeverityTag: domain.SeverityStandard,
		Data: domain.NotificationData{
			IncidentID:   uuid.New(),
			AlertID:      uuid.New(),
			DeepLinkPath: "/dashboard",
		},
	}

	sent, failed := s.fanOut(ctx, []uuid.UUID{userID}, payload)
	return &domain.DispatchResult{
		ManagerCount:      1,
		NotificationsSent: sent,
		Failures:          failed,
	}, nil
}

// AlertsNearVenue returns active alerts whose blast radius plus the venue's
// own geofence radius reaches the venue.
func (s *alertDispatcher) AlertsNearVenue(ctx context.Context, venueID uuid.UUID) ([]*domain.Alert, error) {
	const op = "service.Dispatch.AlertsNearVenue"

	venue, err := s.directory.GetVenue(ctx, venueID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !venue.Location.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	alerts, err := s.alerts.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	near := make([]*domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !a.Location.Valid() {
			continue
		}
		if geo.Distance(venue.Location, a.Location) <= a.RadiusMiles+venue.RadiusMiles {
			near = append(near, a)
		}
	}
	return near, nil
}

// ArchiveAlert flips the active flag; archived alerts keep their delivery
// history and stay queryable.
func (s *alertDispatcher) ArchiveAlert(ctx context.Context, alertID uuid.UUID, isActive bool) (*domain.Alert, error) {
	const op = "service.Dispatch.ArchiveAlert"

	alert, err := s.alerts.Get(ctx, alertID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	alert.IsActive = isActive
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, e.Wrap(op, err)
	}
	return alert, nil
}

func (s *alertDispatcher) managersWithVenue(ctx context.Context) ([]domain.ManagerVenue, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn("manager cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	managers, err := s.directory.ManagersWithVenue(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, managers); err != nil {
			s.logger.Warn("manager cache write failed", slog.Any("error", err))
		}
	}
	return managers, nil
}

func buildAlertPayload(incident *domain.Incident, alert *domain.Alert) domain.NotificationPayload {
	return domain.NotificationPayload{
		Title:       alert.Title,
		Body:        alert.Message,
		SeverityTag: alert.Severity,
		Data: domain.NotificationData{
			IncidentID:   incident.ID,
			AlertID:      alert.ID,
			DeepLinkPath: fmt.Sprintf("/alerts/%s", alert.ID),
		},
	}
}
