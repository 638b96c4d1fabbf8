package manager

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"stingwatch/internal/domain"
	"stingwatch/pkg/e"
)

type Incidents interface {
	VerifyIncident(ctx context.Context, id uuid.UUID, req domain.VerifyIncidentRequest) (*domain.Incident, error)
	IncidentsByVenue(ctx context.Context, venueID uuid.UUID, limit int) ([]*domain.Incident, error)
	Redispatch(ctx context.Context, incidentID uuid.UUID) error
}

type Alerts interface {
	AlertsNearVenue(ctx context.Context, venueID uuid.UUID) ([]*domain.Alert, error)
	ArchiveAlert(ctx context.Context, alertID uuid.UUID, isActive bool) (*domain.Alert, error)
}

type Certifications interface {
	VenueStaffCertifications(ctx context.Context, venueID uuid.UUID) ([]*domain.StaffCertification, error)
}

type Directory interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type Handler struct {
	logger         *slog.Logger
	Incidents      Incidents
	Alerts         Alerts
	Certifications Certifications
	Directory      Directory
}

func NewHandler(
	logger *slog.Logger,
	incidents Incidents,
	alerts Alerts,
	certifications Certifications,
	directory Directory,
) *Handler {
	return &Handler{
		logger:         logger,
		Incidents:      incidents,
		Alerts:         alerts,
		Certifications: certifications,
		Directory:      directory,
	}
}

func (h *Handler) ManagerIncidentVerify(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerIncidentVerify", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.VerifyIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	incident, err := h.Incidents.VerifyIncident(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident verification updated",
		slog.String("id", id.String()),
		slog.String("status", string(incident.VerificationStatus)))
	h.writeJSON(w, http.StatusOK, incident)
}

func (h *Handler) ManagerIncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerIncidentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	venueID, ok := h.callerVenue(w, r)
	if !ok {
		return
	}

	limit := parseInt(r.URL.Query().Get("limit"), 50)
	incidents, err := h.Incidents.IncidentsByVenue(r.Context(), venueID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed", slog.Int("count", len(incidents)))
	h.writeJSON(w, http.StatusOK, map[string]any{"incidents": incidents})
}

// ManagerIncidentDispatch re-queues the alert fan-out for a verified sting.
// Alert creation is idempotent, so repeats never duplicate the alert record.
func (h *Handler) ManagerIncidentDispatch(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerIncidentDispatch", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Incidents.Redispatch(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("dispatch queued", slog.String("incident_id", id.String()))
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *Handler) ManagerAlertList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerAlertList", slog.String("remote", r.RemoteAddr))

	venueID, ok := h.callerVenue(w, r)
	if !ok {
		return
	}

	alerts, err := h.Alerts.AlertsNearVenue(r.Context(), venueID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts listed", slog.Int("count", len(alerts)))
	h.writeJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

func (h *Handler) ManagerAlertArchive(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerAlertArchive", slog.String("remote", r.RemoteAddr))

	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ArchiveAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		l.Warn("invalid JSON")
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	alert, err := h.Alerts.ArchiveAlert(r.Context(), id, *req.IsActive)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert archive state updated",
		slog.String("alert_id", id.String()),
		slog.Bool("is_active", alert.IsActive))
	h.writeJSON(w, http.StatusOK, alert)
}

func (h *Handler) ManagerStaffList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ManagerStaffList", slog.String("remote", r.RemoteAddr))

	venueID, ok := h.callerVenue(w, r)
	if !ok {
		return
	}

	staff, err := h.Certifications.VenueStaffCertifications(r.Context(), venueID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("staff roster listed", slog.Int("count", len(staff)))
	h.writeJSON(w, http.StatusOK, map[string]any{"staff": staff})
}

// callerVenue resolves the calling manager to their venue. Managers without a
// venue cannot use venue-scoped endpoints.
func (h *Handler) callerVenue(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return uuid.Nil, false
	}

	user, err := h.Directory.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return uuid.Nil, false
	}
	if user.Role != domain.RoleManager || user.VenueID == nil {
		h.handleError(w, r, e.Wrap("caller has no venue", e.ErrInvalidInput))
		return uuid.Nil, false
	}
	return *user.VenueID, true
}
