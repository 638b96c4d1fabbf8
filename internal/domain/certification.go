package domain

import (
	"time"

	"github.com/google/uuid"
)

type CertificationStatus string

const (
	StatusNotCertified CertificationStatus = "not_certified"
	StatusActive       CertificationStatus = "active"
	StatusExpiringSoon CertificationStatus = "expiring_soon"
	StatusExpired      CertificationStatus = "expired"
)

const (
	// CertificationValidity is the window granted on completing all
	// required modules.
	CertificationValidity = 365 * 24 * time.Hour

	// ExpiryWarningWindow is how long before expiry a certification is
	// reported as expiring_soon.
	ExpiryWarningWindow = 30 * 24 * time.Hour
)

type Certification struct {
	ID                      uuid.UUID           `json:"id"`
	UserID                  uuid.UUID           `json:"user_id"`
	Status                  CertificationStatus `json:"status"`
	CertifiedAt             *time.Time          `json:"certified_at,omitempty"`
	ExpiresAt               *time.Time          `json:"expires_at,omitempty"`
	RelatedIncidentCount    int                 `json:"related_incident_count"`
	RequiresRecertification bool                `json:"requires_recertification"`
	RecertificationReason   string              `json:"recertification_reason,omitempty"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// StatusAt derives the time-decayed status. Decay is computed at read time
// rather than by a background job; a forced expiry (stored status expired)
// is terminal and is never resurrected by a still-future expiry date.
func (c *Certification) StatusAt(now time.Time) CertificationStatus {
	if c.Status != StatusActive && c.Status != StatusExpiringSoon {
		return c.Status
	}
	if c.ExpiresAt == nil {
		return c.Status
	}
	switch {
	case !c.ExpiresAt.After(now):
		return StatusExpired
	case c.ExpiresAt.Sub(now) <= ExpiryWarningWindow:
		return StatusExpiringSoon
	default:
		return StatusActive
	}
}

// CertificationView is the read-model returned to clients, with lazy decay
// already applied.
type CertificationView struct {
	UserID                  uuid.UUID           `json:"user_id"`
	Status                  CertificationStatus `json:"status"`
	CertifiedAt             *time.Time          `json:"certified_at,omitempty"`
	ExpiresAt               *time.Time          `json:"expires_at,omitempty"`
	RelatedIncidentCount    int                 `json:"related_incident_count"`
	RequiresRecertification bool                `json:"requires_recertification"`
	RecertificationReason   string              `json:"recertification_reason,omitempty"`
}

// StaffCertification is a roster row for a venue's staff list.
type StaffCertification struct {
	User          User                `json:"user"`
	Status        CertificationStatus `json:"status"`
	ExpiresAt     *time.Time          `json:"expires_at,omitempty"`
	IncidentCount int                 `json:"incident_count"`
}
