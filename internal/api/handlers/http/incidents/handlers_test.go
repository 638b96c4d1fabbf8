package incidents_test

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

	"stingwatch/internal/api/handlers/http/incidents"
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

func TestIncidentReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_service.NewMockIncidentPipeline(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	reporterID := uuid.New()
	reqBody := `{"category":"regulatory_sting","lat":36.1699,"lng":-115.1398,"description":"two plainclothes officers","incident_at":"2026-02-20T22:30:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", reporterID.String())
	rr := httptest.NewRecorder()

	stored := &domain.Incident{
		ID:                 uuid.New(),
		Category:           domain.CategoryRegulatorySting,
		ReporterID:         reporterID,
		VerificationStatus: domain.VerificationPending,
	}

	svc.EXPECT().
		RecordIncident(gomock.Any(), reporterID, gomock.Any()).
		Return(stored, nil).
		Times(1)

	h.IncidentReport(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Incident](t, rr)
	if got.ID != stored.ID {
		t.Fatalf("expected id=%s got=%s", stored.ID, got.ID)
	}
}

func TestIncidentReport_MissingIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := incidents.NewHandler(newTestLogger(), mock_service.NewMockIncidentPipeline(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.IncidentReport(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestIncidentReport_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := incidents.NewHandler(newTestLogger(), mock_service.NewMockIncidentPipeline(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString("{bad json"))
	req.Header.Set("X-User-ID", uuid.New().String())
	rr := httptest.NewRecorder()

	h.IncidentReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentReport_ValidationError_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_service.NewMockIncidentPipeline(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/incidents/", bytes.NewBufferString(`{"category":"regulatory_sting"}`))
	req.Header.Set("X-User-ID", uuid.New().String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		RecordIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, e.ErrInvalidInput).
		Times(1)

	h.IncidentReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_service.NewMockIncidentPipeline(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		GetIncident(gomock.Any(), id).
		Return(&domain.Incident{ID: id}, nil).
		Times(1)

	h.IncidentGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestIncidentGet_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := incidents.NewHandler(newTestLogger(), mock_service.NewMockIncidentPipeline(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/not-a-uuid", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.IncidentGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestIncidentGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_service.NewMockIncidentPipeline(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	svc.EXPECT().
		GetIncident(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.IncidentGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
