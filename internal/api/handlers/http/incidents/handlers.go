package incidents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"stingwatch/internal/domain"
)

type IncidentReporter interface {
	RecordIncident(ctx context.Context, reporterID uuid.UUID, req domain.ReportIncidentRequest) (*domain.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents IncidentReporter
}

func NewHandler(logger *slog.Logger, incidents IncidentReporter) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
	}
}

// IncidentReport accepts a sighting from any authenticated user. The response
// carries the stored incident only; whether an alert fan-out happens is
// decided downstream and never surfaced here.
func (h *Handler) IncidentReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentReport", slog.String("remote", r.RemoteAddr))

	reporterID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.ReportIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("recording incident",
		slog.String("category", string(req.Category)),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	incident, err := h.Incidents.RecordIncident(r.Context(), reporterID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident recorded", slog.String("id", incident.ID.String()))
	h.writeJSON(w, http.StatusCreated, incident)
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	incident, err := h.Incidents.GetIncident(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, incident)
}
