package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/internal/service"
	mock_service "stingwatch/internal/service/mocks"
	"stingwatch/pkg/e"
)

func reportRequest(category domain.IncidentCategory, status domain.VerificationStatus) domain.ReportIncidentRequest {
	return domain.ReportIncidentRequest{
		Category:           category,
		Lat:                36.1699,
		Lng:                -115.1398,
		Description:        "plainclothes pair ordering without ID checks",
		VerificationStatus: status,
		IncidentAt:         time.Date(2026, 2, 20, 22, 30, 0, 0, time.UTC),
	}
}

func TestRecordIncident_NilReporterRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	_, err := svc.RecordIncident(context.Background(), uuid.Nil,
		reportRequest(domain.CategoryRegulatorySting, ""))
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordIncident_OutOfRangeCoordinatesRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	req := reportRequest(domain.CategoryRegulatorySting, "")
	req.Lat = 91.0

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	_, err := svc.RecordIncident(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordIncident_PendingHasNoSideEffects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	incident, err := svc.RecordIncident(context.Background(), uuid.New(),
		reportRequest(domain.CategoryRegulatorySting, ""))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if incident.VerificationStatus != domain.VerificationPending {
		t.Fatalf("status must default to pending, got %q", incident.VerificationStatus)
	}
	if incident.ValidatedAt != nil {
		t.Fatal("pending incidents must not carry validated_at")
	}
}

func TestRecordIncident_ValidatedStingFiresSideEffects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	reporterID := uuid.New()

	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	certs.EXPECT().OnIncidentInvolvement(gomock.Any(), reporterID, gomock.Any()).Return(nil)

	var job domain.DispatchJob
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j domain.DispatchJob) error {
			job = j
			return nil
		})

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	incident, err := svc.RecordIncident(context.Background(), reporterID,
		reportRequest(domain.CategoryRegulatorySting, domain.VerificationValidated))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if incident.ValidatedAt == nil {
		t.Fatal("validated incidents must carry validated_at")
	}
	if job.IncidentID != incident.ID {
		t.Fatalf("enqueued job targets wrong incident: %s", job.IncidentID)
	}
}

func TestRecordIncident_ValidatedHotspotHasNoSideEffects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if _, err := svc.RecordIncident(context.Background(), uuid.New(),
		reportRequest(domain.CategoryUnverifiedHotspot, domain.VerificationValidated)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRecordIncident_EnqueueFailureDoesNotFailSubmission(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	certs.EXPECT().OnIncidentInvolvement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if _, err := svc.RecordIncident(context.Background(), uuid.New(),
		reportRequest(domain.CategoryRegulatorySting, domain.VerificationValidated)); err != nil {
		t.Fatalf("a queue hiccup must not fail the submission: %v", err)
	}
}

func TestRecordIncident_CertificationFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	wantErr := errors.New("cert write failed")
	incidents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	certs.EXPECT().OnIncidentInvolvement(gomock.Any(), gomock.Any(), gomock.Any()).Return(wantErr)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if _, err := svc.RecordIncident(context.Background(), uuid.New(),
		reportRequest(domain.CategoryRegulatorySting, domain.VerificationValidated)); !errors.Is(err, wantErr) {
		t.Fatalf("expected cert error to propagate, got %v", err)
	}
}

func TestVerifyIncident_SideEffectsFireOnValidationEdge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	pending := &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		ReporterID:         uuid.New(),
		Location:           domain.Coordinate{Lat: 36.1699, Lng: -115.1398},
		VerificationStatus: domain.VerificationPending,
	}

	incidents.EXPECT().Get(gomock.Any(), pending.ID).Return(pending, nil)
	incidents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	certs.EXPECT().OnIncidentInvolvement(gomock.Any(), pending.ReporterID, gomock.Any()).Return(nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	got, err := svc.VerifyIncident(context.Background(), pending.ID,
		domain.VerifyIncidentRequest{Status: domain.VerificationValidated})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ValidatedAt == nil {
		t.Fatal("expected validated_at to be stamped")
	}
}

func TestVerifyIncident_AlreadyValidatedDoesNotRefire(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	validatedAt := time.Now().Add(-time.Hour)
	validated := &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		ReporterID:         uuid.New(),
		VerificationStatus: domain.VerificationValidated,
		ValidatedAt:        &validatedAt,
	}

	incidents.EXPECT().Get(gomock.Any(), validated.ID).Return(validated, nil)
	incidents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if _, err := svc.VerifyIncident(context.Background(), validated.ID,
		domain.VerifyIncidentRequest{Status: domain.VerificationValidated}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedispatch_RejectsNonWorthyIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	pending := &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		VerificationStatus: domain.VerificationPending,
	}
	incidents.EXPECT().Get(gomock.Any(), pending.ID).Return(pending, nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if err := svc.Redispatch(context.Background(), pending.ID); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRedispatch_EnqueuesWorthyIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	incidents := mock_service.NewMockIncidentStore(ctrl)
	certs := mock_service.NewMockCertificationEngine(ctrl)
	queue := mock_service.NewMockDispatchQueue(ctrl)

	worthy := &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		VerificationStatus: domain.VerificationValidated,
	}
	incidents.EXPECT().Get(gomock.Any(), worthy.ID).Return(worthy, nil)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewIncidentPipeline(incidents, certs, queue, newTestLogger())
	if err := svc.Redispatch(context.Background(), worthy.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
