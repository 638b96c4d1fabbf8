package manager_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"stingwatch/internal/api/handlers/http/manager"
	"stingwatch/internal/domain"
	mock_service "stingwatch/internal/service/mocks"
	"stingwatch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type handlerMocks struct {
	incidents *mock_service.MockIncidentPipeline
	alerts    *mock_service.MockAlertDispatcher
	certs     *mock_service.MockCertificationEngine
	directory *mock_service.MockDirectory
}

func newHandler(ctrl *gomock.Controller) (*manager.Handler, handlerMocks) {
	m := handlerMocks{
		incidents: mock_service.NewMockIncidentPipeline(ctrl),
		alerts:    mock_service.NewMockAlertDispatcher(ctrl),
		certs:     mock_service.NewMockCertificationEngine(ctrl),
		directory: mock_service.NewMockDirectory(ctrl),
	}
	h := manager.NewHandler(newTestLogger(), m.incidents, m.alerts, m.certs, m.directory)
	return h, m
}

func managerUser(venueID uuid.UUID) *domain.User {
	return &domain.User{
		ID:      uuid.New(),
		Role:    domain.RoleManager,
		VenueID: &venueID,
	}
}

func TestManagerIncidentVerify_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/manager/incidents/"+id.String()+"/verify",
		bytes.NewBufferString(`{"status":"validated"}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.incidents.EXPECT().
		VerifyIncident(gomock.Any(), id, domain.VerifyIncidentRequest{Status: domain.VerificationValidated}).
		Return(&domain.Incident{ID: id, VerificationStatus: domain.VerificationValidated}, nil).
		Times(1)

	h.ManagerIncidentVerify(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Incident](t, rr)
	if got.VerificationStatus != domain.VerificationValidated {
		t.Fatalf("expected validated status, got %q", got.VerificationStatus)
	}
}

func TestManagerIncidentVerify_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/manager/incidents/"+id.String()+"/verify",
		bytes.NewBufferString(`{"status":"archived"}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.incidents.EXPECT().
		VerifyIncident(gomock.Any(), id, gomock.Any()).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.ManagerIncidentVerify(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestManagerIncidentList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	venueID := uuid.New()
	caller := managerUser(venueID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/incidents?limit=10", nil)
	req.Header.Set("X-User-ID", caller.ID.String())
	rr := httptest.NewRecorder()

	m.directory.EXPECT().GetUser(gomock.Any(), caller.ID).Return(caller, nil)
	m.incidents.EXPECT().
		IncidentsByVenue(gomock.Any(), venueID, 10).
		Return([]*domain.Incident{{ID: uuid.New()}, {ID: uuid.New()}}, nil).
		Times(1)

	h.ManagerIncidentList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string][]domain.Incident](t, rr)
	if len(got["incidents"]) != 2 {
		t.Fatalf("expected 2 incidents, got %d", len(got["incidents"]))
	}
}

func TestManagerIncidentList_StaffCallerRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	caller := &domain.User{ID: uuid.New(), Role: domain.RoleStaff}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/incidents", nil)
	req.Header.Set("X-User-ID", caller.ID.String())
	rr := httptest.NewRecorder()

	m.directory.EXPECT().GetUser(gomock.Any(), caller.ID).Return(caller, nil)

	h.ManagerIncidentList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestManagerIncidentList_MissingIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/incidents", nil)
	rr := httptest.NewRecorder()

	h.ManagerIncidentList(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestManagerIncidentDispatch_Queued_202(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/manager/incidents/"+id.String()+"/dispatch", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.incidents.EXPECT().Redispatch(gomock.Any(), id).Return(nil).Times(1)

	h.ManagerIncidentDispatch(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected %d got %d, body=%s", http.StatusAccepted, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["status"] != "queued" {
		t.Fatalf("expected queued status, got %q", got["status"])
	}
}

func TestManagerIncidentDispatch_NonWorthy_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/manager/incidents/"+id.String()+"/dispatch", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.incidents.EXPECT().Redispatch(gomock.Any(), id).Return(e.ErrInvalidInput).Times(1)

	h.ManagerIncidentDispatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestManagerAlertList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	venueID := uuid.New()
	caller := managerUser(venueID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/alerts", nil)
	req.Header.Set("X-User-ID", caller.ID.String())
	rr := httptest.NewRecorder()

	m.directory.EXPECT().GetUser(gomock.Any(), caller.ID).Return(caller, nil)
	m.alerts.EXPECT().
		AlertsNearVenue(gomock.Any(), venueID).
		Return([]*domain.Alert{{ID: uuid.New()}}, nil).
		Times(1)

	h.ManagerAlertList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string][]domain.Alert](t, rr)
	if len(got["alerts"]) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got["alerts"]))
	}
}

func TestManagerAlertArchive_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/manager/alerts/"+id.String(),
		bytes.NewBufferString(`{"is_active":false}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.alerts.EXPECT().
		ArchiveAlert(gomock.Any(), id, false).
		Return(&domain.Alert{ID: id, IsActive: false}, nil).
		Times(1)

	h.ManagerAlertArchive(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Alert](t, rr)
	if got.IsActive {
		t.Fatal("expected the archived alert back")
	}
}

func TestManagerAlertArchive_MissingFlag_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/manager/alerts/"+id.String(),
		bytes.NewBufferString(`{}`))
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ManagerAlertArchive(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestManagerAlertArchive_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/manager/alerts/nope",
		bytes.NewBufferString(`{"is_active":false}`))
	req = addChiURLParam(req, "id", "nope")
	rr := httptest.NewRecorder()

	h.ManagerAlertArchive(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestManagerStaffList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	venueID := uuid.New()
	caller := managerUser(venueID)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/manager/staff", nil)
	req.Header.Set("X-User-ID", caller.ID.String())
	rr := httptest.NewRecorder()

	m.directory.EXPECT().GetUser(gomock.Any(), caller.ID).Return(caller, nil)
	m.certs.EXPECT().
		VenueStaffCertifications(gomock.Any(), venueID).
		Return([]*domain.StaffCertification{
			{User: domain.User{ID: uuid.New()}, Status: domain.StatusActive},
			{User: domain.User{ID: uuid.New()}, Status: domain.StatusExpired},
		}, nil).
		Times(1)

	h.ManagerStaffList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string][]domain.StaffCertification](t, rr)
	if len(got["staff"]) != 2 {
		t.Fatalf("expected 2 staff rows, got %d", len(got["staff"]))
	}
}
