package service

import (
	"context"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/internal/push"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Store contracts implemented by internal/storage/postgres.

type IncidentStore interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Update(ctx context.Context, incident *domain.Incident) error
	ListByVenue(ctx context.Context, venueID uuid.UUID, limit int) ([]*domain.Incident, error)
}

type CertificationStore interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Certification, error)
	Create(ctx context.Context, cert *domain.Certification) error
	Update(ctx context.Context, cert *domain.Certification) error
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*domain.StaffCertification, error)
}

type TrainingStore interface {
	ListModules(ctx context.Context) ([]*domain.TrainingModule, error)
	GetModule(ctx context.Context, id uuid.UUID) (*domain.TrainingModule, error)
	QuestionsByModule(ctx context.Context, moduleID uuid.UUID) ([]*domain.QuizQuestion, error)
	ProgressByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserProgress, error)
	ModuleProgress(ctx context.Context, userID, moduleID uuid.UUID) (*domain.UserProgress, error)
	CreateProgress(ctx context.Context, progress *domain.UserProgress) error
	UpdateProgress(ctx context.Context, progress *domain.UserProgress) error
}

type AlertStore interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	GetByIncident(ctx context.Context, incidentID uuid.UUID) (*domain.Alert, error)
	ListActive(ctx context.Context) ([]*domain.Alert, error)
	Update(ctx context.Context, alert *domain.Alert) error
}

type SubscriptionStore interface {
	Upsert(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error)
	Deactivate(ctx context.Context, endpoint string) error
	ActiveByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error)
}

// Directory is the read-only user/venue lookup this core consumes.
type Directory interface {
	ManagersWithVenue(ctx context.Context) ([]domain.ManagerVenue, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
}

// ManagerCache is a best-effort cache in front of Directory.ManagersWithVenue.
// Get returns (nil, nil) on a miss.
type ManagerCache interface {
	Get(ctx context.Context) ([]domain.ManagerVenue, error)
	Set(ctx context.Context, managers []domain.ManagerVenue) error
}

type DispatchQueue interface {
	Enqueue(ctx context.Context, job domain.DispatchJob) error
}

type PushTransport interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload domain.NotificationPayload) (push.Outcome, error)
}

// Use-case contracts, one per core component.

type CertificationEngine interface {
	OnModuleCompletion(ctx context.Context, userID uuid.UUID) error
	OnIncidentInvolvement(ctx context.Context, userID uuid.UUID, incident *domain.Incident) error
	CurrentView(ctx context.Context, userID uuid.UUID) (*domain.CertificationView, error)
	VenueStaffCertifications(ctx context.Context, venueID uuid.UUID) ([]*domain.StaffCertification, error)
}

type TrainingService interface {
	ListModules(ctx context.Context) ([]*domain.TrainingModule, error)
	ModuleDetail(ctx context.Context, userID, moduleID uuid.UUID) (*domain.ModuleDetail, error)
	StartModule(ctx context.Context, userID, moduleID uuid.UUID) (*domain.UserProgress, error)
	SubmitQuizAttempt(ctx context.Context, userID, moduleID uuid.UUID, submission domain.QuizSubmission) (*domain.QuizResult, error)
}

type SubscriptionRegistry interface {
	Register(ctx context.Context, userID uuid.UUID, req domain.SubscribeRequest, userAgent string) (*domain.PushSubscription, error)
	Deactivate(ctx context.Context, endpoint string) error
	ActiveEndpointsFor(ctx context.Context, userID uuid.UUID) ([]*domain.PushSubscription, error)
}

type AlertDispatcher interface {
	Dispatch(ctx context.Context, incident *domain.Incident) (*domain.DispatchResult, error)
	SendTest(ctx context.Context, userID uuid.UUID) (*domain.DispatchResult, error)
	AlertsNearVenue(ctx context.Context, venueID uuid.UUID) ([]*domain.Alert, error)
	ArchiveAlert(ctx context.Context, alertID uuid.UUID, isActive bool) (*domain.Alert, error)
}

type IncidentPipeline interface {
	RecordIncident(ctx context.Context, reporterID uuid.UUID, req domain.ReportIncidentRequest) (*domain.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	IncidentsByVenue(ctx context.Context, venueID uuid.UUID, limit int) ([]*domain.Incident, error)
	VerifyIncident(ctx context.Context, id uuid.UUID, req domain.VerifyIncidentRequest) (*domain.Incident, error)
	Redispatch(ctx context.Context, incidentID uuid.UUID) error
}

type Service struct {
	Certifications CertificationEngine
	Training       TrainingService
	Subscriptions  SubscriptionRegistry
	Dispatcher     AlertDispatcher
	Incidents      IncidentPipeline
}

func NewService(
	certifications CertificationEngine,
	training TrainingService,
	subscriptions SubscriptionRegistry,
	dispatcher AlertDispatcher,
	incidents IncidentPipeline,
) *Service {
	return &Service{
		Certifications: certifications,
		Training:       training,
		Subscriptions:  subscriptions,
		Dispatcher:     dispatcher,
		Incidents:      incidents,
	}
}
