package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentCategory string

const (
	CategoryRegulatorySting     IncidentCategory = "regulatory_sting"
	CategoryUnverifiedHotspot   IncidentCategory = "unverified_hotspot"
	CategoryOperationalIncident IncidentCategory = "operational_incident"
)

type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationValidated VerificationStatus = "validated"
	VerificationArchived  VerificationStatus = "archived"
)

type Incident struct {
	ID                 uuid.UUID          `json:"id"`
	Category           IncidentCategory   `json:"category"`
	ReporterID         uuid.UUID          `json:"reporter_id"`
	VenueID            *uuid.UUID         `json:"venue_id,omitempty"`
	Location           Coordinate         `json:"location"`
	Address            string             `json:"address,omitempty"`
	Description        string             `json:"description"`
	PhotoURLs          []string           `json:"photo_urls,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	IncidentAt         time.Time          `json:"incident_at"`
	ReportedAt         time.Time          `json:"reported_at"`
	ValidatedAt        *time.Time         `json:"validated_at,omitempty"`
}

// AlertWorthy is the single predicate behind every downstream consequence of
// an incident: geofenced manager alerts and forced certification expiry both
// key off exactly this condition.
func AlertWorthy(i *Incident) bool {
	return i.VerificationStatus == VerificationValidated && i.Category == CategoryRegulatorySting
}

type ReportIncidentRequest struct {
	Category           IncidentCategory   `json:"category" validate:"required,oneof=regulatory_sting unverified_hotspot operational_incident"`
	Lat                float64            `json:"lat" validate:"lat"`
	Lng                float64            `json:"lng" validate:"lng"`
	Address            string             `json:"address" validate:"omitempty,max=500"`
	Description        string             `json:"description" validate:"required,max=5000"`
	PhotoURLs          []string           `json:"photo_urls" validate:"omitempty,dive,url"`
	VerificationStatus VerificationStatus `json:"verification_status" validate:"omitempty,oneof=pending validated"`
	IncidentAt         time.Time          `json:"incident_at" validate:"required"`
	VenueID            *uuid.UUID         `json:"venue_id"`
}

type VerifyIncidentRequest struct {
	Status VerificationStatus `json:"status" validate:"required,oneof=validated archived"`
}

// DispatchJob is the unit queued for the asynchronous alert fan-out.
type DispatchJob struct {
	IncidentID uuid.UUID `json:"incident_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
