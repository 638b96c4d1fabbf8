package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

// certificationEngine owns every mutation of certification records. Status
// decay over time is never written back here; it is derived at read time.
type certificationEngine struct {
	certs    CertificationStore
	training TrainingStore
	logger   *slog.Logger
	now      func() time.Time
}

func NewCertificationEngine(certs CertificationStore, training TrainingStore, logger *slog.Logger) CertificationEngine {
	return &certificationEngine{
		certs:    certs,
		training: training,
		logger:   logger,
		now:      time.Now,
	}
}

// OnModuleCompletion recomputes whether the user has passed every required
// module and, if so, issues or refreshes the certification. A refresh clears
// a pending recertification requirement: freshly passing all modules again is
// the way back from a forced expiry.
func (s *certificationEngine) OnModuleCompletion(ctx context.Context, userID uuid.UUID) error {
	const op = "service.Certification.OnModuleCompletion"

	done, err := s.allRequiredPassed(ctx, userID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !done {
		return nil
	}

	now := s.now().UTC()
	expires := now.Add(domain.CertificationValidity)

	cert, err := s.certs.GetByUser(ctx, userID)
	switch {
	case errors.Is(err, e.ErrNotFound):
		cert = &domain.Certification{
			ID:          uuid.New(),
			UserID:      userID,
			Status:      domain.StatusActive,
			CertifiedAt: &now,
			ExpiresAt:   &expires,
		}
		if err := s.certs.Create(ctx, cert); err != nil {
			return e.Wrap(op, err)
		}
	case err != nil:
		return e.Wrap(op, err)
	default:
		cert.Status = domain.StatusActive
		cert.CertifiedAt = &now
		cert.ExpiresAt = &expires
		cert.RequiresRecertification = false
		cert.RecertificationReason = ""
		if err := s.certs.Update(ctx, cert); err != nil {
			return e.Wrap(op, err)
		}
	}

	s.logger.Info("certification issued",
		slog.String("user_id", userID.String()),
		slog.Time("expires_at", expires),
	)
	return nil
}

// OnIncidentInvolvement forces the reporter's certification to expired when
// they are named on a validated regulatory sting. The transition is
// unconditional: remaining validity does not matter, involvement in a
// verified enforcement action resets trust immediately.
func (s *certificationEngine) OnIncidentInvolvement(ctx context.Context, userID uuid.UUID, incident *domain.Incident) error {
	const op = "service.Certification.OnIncidentInvolvement"

	if !domain.AlertWorthy(incident) {
		return nil
	}

	reason := fmt.Sprintf("involved in a validated %s on %s",
		incident.Category, incident.IncidentAt.UTC().Format("2006-01-02"))

	cert, err := s.certs.GetByUser(ctx, userID)
	switch {
	case errors.Is(err, e.ErrNotFound):
		cert = &domain.Certification{
			ID:                      uuid.New(),
			UserID:                  userID,
			Status:                  domain.StatusExpired,
			RelatedIncidentCount:    1,
			RequiresRecertification: true,
			RecertificationReason:   reason,
		}
		if err := s.certs.Create(ctx, cert); err != nil {
			return e.Wrap(op, err)
		}
	case err != nil:
		return e.Wrap(op, err)
	default:
		cert.Status = domain.StatusExpired
		cert.RequiresRecertification = true
		cert.RecertificationReason = reason
		cert.RelatedIncidentCount++
		if err := s.certs.Update(ctx, cert); err != nil {
			return e.Wrap(op, err)
		}
	}

	s.logger.Warn("certification force-expired",
		slog.String("user_id", userID.String()),
		slog.String("incident_id", incident.ID.String()),
		slog.Int("related_incidents", cert.RelatedIncidentCount),
	)
	return nil
}

// CurrentView returns the user's certification with time decay applied. A
// user with no record is simply not_certified.
func (s *certificationEngine) CurrentView(ctx context.Context, userID uuid.UUID) (*domain.CertificationView, error) {
	const op = "service.Certification.CurrentView"

	cert, err := s.certs.GetByUser(ctx, userID)
	if errors.Is(err, e.ErrNotFound) {
		return &domain.CertificationView{
			UserID: userID,
			Status: domain.StatusNotCertified,
		}, nil
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &domain.CertificationView{
		UserID:                  cert.UserID,
		Status:                  cert.StatusAt(s.now()),
		CertifiedAt:             cert.CertifiedAt,
		ExpiresAt:               cert.ExpiresAt,
		RelatedIncidentCount:    cert.RelatedIncidentCount,
		RequiresRecertification: cert.RequiresRecertification,
		RecertificationReason:   cert.RecertificationReason,
	}, nil
}

// VenueStaffCertifications returns a venue's roster with decayed statuses.
func (s *certificationEngine) VenueStaffCertifications(ctx context.Context, venueID uuid.UUID) ([]*domain.StaffCertification, error) {
	const op = "service.Certification.VenueStaffCertifications"

	rows, err := s.certs.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := s.now()
	for _, row := range rows {
		cert := domain.Certification{Status: row.Status, ExpiresAt: row.ExpiresAt}
		row.Status = cert.StatusAt(now)
	}
	return rows, nil
}

func (s *certificationEngine) allRequiredPassed(ctx context.Context, userID uuid.UUID) (bool, error) {
	modules, err := s.training.ListModules(ctx)
	if err != nil {
		return false, err
	}
	progress, err := s.training.ProgressByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	passed := make(map[uuid.UUID]bool, len(progress))
	for _, p := range progress {
		if p.Passed {
			passed[p.ModuleID] = true
		}
	}

	required := 0
	for _, m := range modules {
		if !m.IsRequired {
			continue
		}
		required++
		if !passed[m.ID] {
			return false, nil
		}
	}
	return required > 0, nil
}
