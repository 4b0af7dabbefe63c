package model

import (
	"time"

	"github.com/google/uuid"
)

// Credential is one accreditation record. Identifier is the only handle that
// ever appears in a URL; the surrogate CredentialID never leaves the process.
type Credential struct {
	CredentialID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Identifier   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"identifier"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title        string    `gorm:"not null" json:"title"`
	Filename     string    `gorm:"not null" json:"filename"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Credential) TableName() string {
	return "credentials"
}

// PublicView is what the unauthenticated verification page renders. Status is
// derived from Active alone; the string form leaves room for an expired /
// not-yet-valid state later without changing the response shape.
type PublicView struct {
	TenantName string    `json:"tenant_name"`
	Title      string    `json:"title"`
	Active     bool      `json:"active"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	FileURL    string    `json:"file_url"`
	QRURL      string    `json:"qr_url"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
