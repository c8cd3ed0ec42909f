package application

import (
	"errors"
	"fmt"
	"time"

	"realname-backend/pkg/identity"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts the canonical value or the Chinese label.
func ParseGender(s string) (Gender, bool) {
	switch s {
	case string(GenderMale), "男":
		return GenderMale, true
	case string(GenderFemale), "女":
		return GenderFemale, true
	}
	return "", false
}

// Application is one identity-verification submission tracked through review.
// OwnerID is nil for anonymous/legacy submissions.
type Application struct {
	ID             uint64                `gorm:"primaryKey;column:id" json:"-"`
	AppID          string                `gorm:"size:32;uniqueIndex:ux_applications_app_id" json:"app_id"`
	OwnerID        *string               `gorm:"size:32;index:idx_applications_owner" json:"owner_id"`
	Name           string                `gorm:"size:64;not null" json:"name"`
	Gender         Gender                `gorm:"type:enum('male','female');not null" json:"gender"`
	DocumentType   identity.DocumentType `gorm:"type:enum('resident_id','hmt_permit');not null" json:"document_type"`
	DocumentNumber string                `gorm:"size:18;not null;index:idx_applications_document_number" json:"document_number"`
	Phone          string                `gorm:"size:20;not null" json:"phone"`
	Address        string                `gorm:"type:text;not null" json:"address"`
	PhotoFrontURL  string                `gorm:"type:text;not null" json:"photo_front_url"`
	PhotoBackURL   string                `gorm:"type:text;not null" json:"photo_back_url"`
	Status         Status                `gorm:"type:enum('pending','approved','rejected','cancelled');default:'pending';index" json:"status"`
	ReviewComments *string               `gorm:"type:text" json:"review_comments"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// Terminal reports whether no further mutation is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusCancelled
}

var (
	ErrNotFound          = errors.New("application not found")
	ErrForbidden         = errors.New("actor may not act on this application")
	ErrDuplicateIdentity = errors.New("identity number already attached to an active application")
	ErrNoEffectiveChange = errors.New("resubmission changes nothing")
)

// ValidationError is malformed or missing input detected by the store, as
// opposed to schema validation which happens at the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
