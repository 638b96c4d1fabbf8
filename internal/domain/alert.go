package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityStandard AlertSeverity = "standard"
)

// Alert is the geofenced notification record derived from a validated
// regulatory sting. Exactly one alert exists per triggering incident.
type Alert struct {
	ID          uuid.UUID     `json:"id"`
	IncidentID  uuid.UUID     `json:"incident_id"`
	Title       string        `json:"title"`
	Message     string        `json:"message"`
	Severity    AlertSeverity `json:"severity"`
	Location    Coordinate    `json:"location"`
	RadiusMiles float64       `json:"radius_miles"`
	PublishedAt time.Time     `json:"published_at"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
	IsActive    bool          `json:"is_active"`
}

// NotificationPayload is the structured body delivered to push endpoints.
type NotificationPayload struct {
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	SeverityTag AlertSeverity    `json:"severity_tag"`
	Data        NotificationData `json:"data"`
}

type NotificationData struct {
	IncidentID   uuid.UUID `json:"incident_id"`
	AlertID      uuid.UUID `json:"alert_id"`
	DeepLinkPath string    `json:"deep_link_path"`
}

func (p NotificationPayload) Validate() error {
	if p.Title == "" || p.Body == "" {
		return errors.New("notification payload: title and body are required")
	}
	if p.SeverityTag != SeverityCritical && p.SeverityTag != SeverityStandard {
		return errors.New("notification payload: unknown severity tag")
	}
	if p.Data.IncidentID == uuid.Nil || p.Data.AlertID == uuid.Nil {
		return errors.New("notification payload: incident and alert ids are required")
	}
	return nil
}

// DispatchResult aggregates the outcome of one alert fan-out.
type DispatchResult struct {
	AlertID           uuid.UUID `json:"alert_id"`
	ManagerCount      int       `json:"manager_count"`
	NotificationsSent int       `json:"notifications_sent"`
	Failures          int       `json:"failures"`
}

type ArchiveAlertRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
