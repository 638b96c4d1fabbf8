package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"stingwatch/internal/config"
	"stingwatch/internal/domain"
	"stingwatch/internal/push"
	"stingwatch/internal/service"
	mock_service "stingwatch/internal/service/mocks"
	"stingwatch/pkg/e"
)

type dispatcherMocks struct {
	alerts    *mock_service.MockAlertStore
	registry  *mock_service.MockSubscriptionRegistry
	directory *mock_service.MockDirectory
	cache     *mock_service.MockManagerCache
	transport *mock_service.MockPushTransport
}

func newDispatcher(t *testing.T, ctrl *gomock.Controller) (service.AlertDispatcher, dispatcherMocks) {
	t.Helper()

	m := dispatcherMocks{
		alerts:    mock_service.NewMockAlertStore(ctrl),
		registry:  mock_service.NewMockSubscriptionRegistry(ctrl),
		directory: mock_service.NewMockDirectory(ctrl),
		cache:     mock_service.NewMockManagerCache(ctrl),
		transport: mock_service.NewMockPushTransport(ctrl),
	}
	cfg := config.AlertConfig{
		DefaultRadiusMiles:  5.0,
		DispatchConcurrency: 2,
		SendTimeout:         time.Second,
	}
	d := service.NewAlertDispatcher(m.alerts, m.registry, m.directory, m.cache, m.transport, cfg, newTestLogger())
	return d, m
}

func stingIncident() *domain.Incident {
	return &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		ReporterID:         uuid.New(),
		Location:           domain.Coordinate{Lat: 36.1699, Lng: -115.1398},
		VerificationStatus: domain.VerificationValidated,
		IncidentAt:         time.Date(2026, 2, 20, 22, 30, 0, 0, time.UTC),
	}
}

func subscription(userID uuid.UUID, endpoint string) *domain.PushSubscription {
	return &domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  endpoint,
		P256dhKey: "p256dh",
		AuthKey:   "auth",
		IsActive:  true,
	}
}

func TestDispatch_NonWorthyIncidentIsNoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _ := newDispatcher(t, ctrl)

	incident := stingIncident()
	incident.VerificationStatus = domain.VerificationPending

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.NotificationsSent != 0 || result.ManagerCount != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestDispatch_ReusesExistingAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)
	incident := stingIncident()

	existing := &domain.Alert{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		Title:       "Verified Regulatory Incident Nearby",
		Severity:    domain.SeverityCritical,
		Location:    incident.Location,
		RadiusMiles: 5.0,
		IsActive:    true,
	}
	m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(existing, nil)
	m.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	m.directory.EXPECT().ManagersWithVenue(gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.AlertID != existing.ID {
		t.Fatalf("expected existing alert to be reused, got %s", result.AlertID)
	}
}

func TestDispatch_CreateRaceFallsBackToExistingAlert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)
	incident := stingIncident()

	winner := &domain.Alert{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		Location:    incident.Location,
		RadiusMiles: 5.0,
	}

	gomock.InOrder(
		m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(nil, e.ErrNotFound),
		m.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(e.ErrUniqueViolation),
		m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(winner, nil),
	)
	m.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	m.directory.EXPECT().ManagersWithVenue(gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.AlertID != winner.ID {
		t.Fatalf("expected the winning alert id, got %s", result.AlertID)
	}
}

func TestDispatch_GeofenceSelectsRecipients(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)
	incident := stingIncident()

	nearManager := uuid.New()
	farManager := uuid.New()
	managers := []domain.ManagerVenue{
		// ~0.2 miles from the incident.
		{UserID: nearManager, VenueID: uuid.New(), Location: domain.Coordinate{Lat: 36.1720, Lng: -115.1410}, RadiusMiles: 1.0},
		// Los Angeles, hundreds of miles away.
		{UserID: farManager, VenueID: uuid.New(), Location: domain.Coordinate{Lat: 34.0522, Lng: -118.2437}, RadiusMiles: 1.0},
	}

	m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(nil, e.ErrNotFound)
	var created *domain.Alert
	m.alerts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			created = a
			return nil
		})
	m.cache.EXPECT().Get(gomock.Any()).Return(managers, nil)

	sub := subscription(nearManager, "https://push.example.com/ep-1")
	m.registry.EXPECT().ActiveEndpointsFor(gomock.Any(), nearManager).
		Return([]*domain.PushSubscription{sub}, nil)
	m.transport.EXPECT().Send(gomock.Any(), sub, gomock.Any()).
		Return(push.OutcomeDelivered, nil)

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created == nil || created.Severity != domain.SeverityCritical {
		t.Fatalf("expected a critical alert to be created, got %+v", created)
	}
	if result.ManagerCount != 1 {
		t.Fatalf("only the nearby manager should be in range, got %d", result.ManagerCount)
	}
	if result.NotificationsSent != 1 || result.Failures != 0 {
		t.Fatalf("unexpected delivery counts: %+v", result)
	}
}

func TestDispatch_PartialFailureIsIsolated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)
	incident := stingIncident()

	managerID := uuid.New()
	managers := []domain.ManagerVenue{
		{UserID: managerID, VenueID: uuid.New(), Location: incident.Location, RadiusMiles: 1.0},
	}

	alert := &domain.Alert{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		Location:    incident.Location,
		RadiusMiles: 5.0,
		Severity:    domain.SeverityCritical,
		Title:       "Verified Regulatory Incident Nearby",
		Message:     "msg",
	}
	m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(alert, nil)
	m.cache.EXPECT().Get(gomock.Any()).Return(managers, nil)

	okSub := subscription(managerID, "https://push.example.com/ok")
	badSub := subscription(managerID, "https://push.example.com/bad")
	m.registry.EXPECT().ActiveEndpointsFor(gomock.Any(), managerID).
		Return([]*domain.PushSubscription{okSub, badSub}, nil)

	m.transport.EXPECT().Send(gomock.Any(), okSub, gomock.Any()).
		Return(push.OutcomeDelivered, nil)
	m.transport.EXPECT().Send(gomock.Any(), badSub, gomock.Any()).
		Return(push.OutcomeTransient, errors.New("503 from push service"))

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("one dead endpoint must not fail the dispatch: %v", err)
	}
	if result.NotificationsSent != 1 || result.Failures != 1 {
		t.Fatalf("unexpected delivery counts: %+v", result)
	}
}

func TestDispatch_GoneEndpointIsDeactivated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)
	incident := stingIncident()

	managerID := uuid.New()
	managers := []domain.ManagerVenue{
		{UserID: managerID, VenueID: uuid.New(), Location: incident.Location, RadiusMiles: 1.0},
	}

	alert := &domain.Alert{
		ID:          uuid.New(),
		IncidentID:  incident.ID,
		Location:    incident.Location,
		RadiusMiles: 5.0,
		Severity:    domain.SeverityCritical,
		Title:       "t",
		Message:     "m",
	}
	m.alerts.EXPECT().GetByIncident(gomock.Any(), incident.ID).Return(alert, nil)
	m.cache.EXPECT().Get(gomock.Any()).Return(managers, nil)

	dead := subscription(managerID, "https://push.example.com/dead")
	m.registry.EXPECT().ActiveEndpointsFor(gomock.Any(), managerID).
		Return([]*domain.PushSubscription{dead}, nil)
	m.transport.EXPECT().Send(gomock.Any(), dead, gomock.Any()).
		Return(push.OutcomeGone, nil)
	m.registry.EXPECT().Deactivate(gomock.Any(), dead.Endpoint).Return(nil)

	result, err := d.Dispatch(context.Background(), incident)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Failures != 1 {
		t.Fatalf("gone endpoint counts as a failure, got %+v", result)
	}
}

func TestAlertsNearVenue_FiltersByCombinedRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)

	venueID := uuid.New()
	m.directory.EXPECT().GetVenue(gomock.Any(), venueID).Return(&domain.Venue{
		ID:          venueID,
		Location:    domain.Coordinate{Lat: 36.1699, Lng: -115.1398},
		RadiusMiles: 2.0,
	}, nil)

	near := &domain.Alert{
		ID:          uuid.New(),
		Location:    domain.Coordinate{Lat: 36.20, Lng: -115.15},
		RadiusMiles: 5.0,
		IsActive:    true,
	}
	far := &domain.Alert{
		ID:          uuid.New(),
		Location:    domain.Coordinate{Lat: 34.0522, Lng: -118.2437},
		RadiusMiles: 5.0,
		IsActive:    true,
	}
	m.alerts.EXPECT().ListActive(gomock.Any()).Return([]*domain.Alert{near, far}, nil)

	got, err := d.AlertsNearVenue(context.Background(), venueID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != near.ID {
		t.Fatalf("expected only the nearby alert, got %d", len(got))
	}
}

func TestArchiveAlert_FlipsActiveFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)

	alert := &domain.Alert{ID: uuid.New(), IsActive: true}
	m.alerts.EXPECT().Get(gomock.Any(), alert.ID).Return(alert, nil)

	var updated *domain.Alert
	m.alerts.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			updated = a
			return nil
		})

	got, err := d.ArchiveAlert(context.Background(), alert.ID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IsActive || updated.IsActive {
		t.Fatal("expected the alert to be archived")
	}
}

func TestSendTest_DeliversToAllUserEndpoints(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, m := newDispatcher(t, ctrl)

	userID := uuid.New()
	s1 := subscription(userID, "https://push.example.com/1")
	s2 := subscription(userID, "https://push.example.com/2")
	m.registry.EXPECT().ActiveEndpointsFor(gomock.Any(), userID).
		Return([]*domain.PushSubscription{s1, s2}, nil)
	m.transport.EXPECT().Send(gomock.Any(), s1, gomock.Any()).Return(push.OutcomeDelivered, nil)
	m.transport.EXPECT().Send(gomock.Any(), s2, gomock.Any()).Return(push.OutcomeDelivered, nil)

	result, err := d.SendTest(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.NotificationsSent != 2 {
		t.Fatalf("sent: got %d want 2", result.NotificationsSent)
	}
}
