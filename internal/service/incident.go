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

// incidentPipeline orchestrates incident submission: validate, persist, then
// fire the downstream consequences for alert-worthy incidents. Both side
// effects (forced certification expiry, alert dispatch) share the single
// domain.AlertWorthy predicate so they can never drift apart.
type incidentPipeline struct {
	incidents IncidentStore
	certs     CertificationEngine
	queue     DispatchQueue
	logger    *slog.Logger
	now       func() time.Time
}

func NewIncidentPipeline(incidents IncidentStore, certs CertificationEngine, queue DispatchQueue, logger *slog.Logger) IncidentPipeline {
	return &incidentPipeline{
		incidents: incidents,
		certs:     certs,
		queue:     queue,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *incidentPipeline) RecordIncident(ctx context.Context, reporterID uuid.UUID, req domain.ReportIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.RecordIncident"

	if reporterID == uuid.Nil {
		return nil, fmt.Errorf("%s: reporter required: %w", op, e.ErrInvalidInput)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	location := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !location.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	status := req.VerificationStatus
	if status == "" {
		status = domain.VerificationPending
	}

	incident := &domain.Incident{
		ID:                 uuid.New(),
		Category:           req.Category,
		ReporterID:         reporterID,
		VenueID:            req.VenueID,
		Location:           location,
		Address:            req.Address,
		Description:        req.Description,
		PhotoURLs:          req.PhotoURLs,
		VerificationStatus: status,
		IncidentAt:         req.IncidentAt,
		ReportedAt:         s.now().UTC(),
	}
	if status == domain.VerificationValidated {
		t := s.now().UTC()
		incident.ValidatedAt = &t
	}

	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("incident recorded",
		slog.String("incident_id", incident.ID.String()),
		slog.String("category", string(incident.Category)),
		slog.String("verification", string(incident.VerificationStatus)),
	)

	if err := s.fireSideEffects(ctx, incident); err != nil {
		return nil, e.Wrap(op, err)
	}
	return incident, nil
}

func (s *incidentPipeline) GetIncident(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.incidents.Get(ctx, id)
}

func (s *incidentPipeline) IncidentsByVenue(ctx context.Context, venueID uuid.UUID, limit int) ([]*domain.Incident, error) {
	return s.incidents.ListByVenue(ctx, venueID, limit)
}

// VerifyIncident transitions verification status. The alert-worthy side
// effects fire exactly once, on the pending-to-validated edge.
func (s *incidentPipeline) VerifyIncident(ctx context.Context, id uuid.UUID, req domain.VerifyIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.VerifyIncident"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	incident, err := s.incidents.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	wasWorthy := domain.AlertWorthy(incident)

	incident.VerificationStatus = req.Status
	if req.Status == domain.VerificationValidated && incident.ValidatedAt == nil {
		t := s.now().UTC()
		incident.ValidatedAt = &t
	}

	if err := s.incidents.Update(ctx, incident); err != nil {
		return nil, e.Wrap(op, err)
	}

	if !wasWorthy && domain.AlertWorthy(incident) {
		if err := s.fireSideEffects(ctx, incident); err != nil {
			return nil, e.Wrap(op, err)
		}
	}
	return incident, nil
}

// Redispatch re-queues the alert fan-out for an incident, for manual resend
// after a push-service outage. Alert creation is idempotent so this never
// duplicates the alert record.
func (s *incidentPipeline) Redispatch(ctx context.Context, incidentID uuid.UUID) error {
	const op = "service.Incident.Redispatch"

	incident, err := s.incidents.Get(ctx, incidentID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !domain.AlertWorthy(incident) {
		return fmt.Errorf("%s: incident is not alert-worthy: %w", op, e.ErrInvalidInput)
	}

	if err := s.queue.Enqueue(ctx, domain.DispatchJob{
		IncidentID: incident.ID,
		EnqueuedAt: s.now().UTC(),
	}); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

// fireSideEffects runs the two consequences of an alert-worthy incident. The
// certification write is correctness-critical and its failure propagates;
// queueing the fan-out is best-effort and only logged, so a Redis hiccup
// never fails the submission.
func (s *incidentPipeline) fireSideEffects(ctx context.Context, incident *domain.Incident) error {
	if !domain.AlertWorthy(incident) {
		return nil
	}

	if err := s.certs.OnIncidentInvolvement(ctx, incident.ReporterID, incident); err != nil {
		return err
	}

	if err := s.queue.Enqueue(ctx, domain.DispatchJob{
		IncidentID: incident.ID,
		EnqueuedAt: s.now().UTC(),
	}); err != nil {
		s.logger.Error("enqueue dispatch failed",
			slog.String("incident_id", incident.ID.String()),
			slog.Any("error", err),
		)
	} else {
		s.logger.Info("dispatch enqueued", slog.String("incident_id", incident.ID.String()))
	}
	return nil
}
