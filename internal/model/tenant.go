package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a company owning a set of accreditation credentials. The slug is
// the URL-safe namespace for the tenant's artifact directory and is immutable
// once created: renaming it would orphan every stored file under it.
type Tenant struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Credentials []Credential `gorm:"foreignKey:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// CreateTenantRequest is the admin create-tenant request body (DTO).
// Slug is optional; when empty it is derived from Name.
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Slug string `json:"slug" validate:"omitempty,max=200"`
}

// TenantSummary is a tenant row in the admin listing, with its credential count.
type TenantSummary struct {
	TenantID        uuid.UUID `json:"tenant_id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	CredentialCount int64     `json:"credential_count"`
	CreatedAt       time.Time `json:"created_at"`
}
