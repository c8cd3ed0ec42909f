package application

import (
	"time"

	appDomain "realname-backend/internal/domain/application"
	"realname-backend/pkg/identity"
)

type SubmitInput struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	PhotoFrontURL  string `json:"photo_front_url"`
	PhotoBackURL   string `json:"photo_back_url"`
}

// ResubmitInput mirrors SubmitInput with every field optional; nil keeps the
// stored value. Gender/document type strings are parsed before diffing.
type ResubmitInput struct {
	Name           *string `json:"name"`
	Gender         *string `json:"gender"`
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	PhotoFrontURL  *string `json:"photo_front_url"`
	PhotoBackURL   *string `json:"photo_back_url"`
}

type Verdict string

const (
	VerdictApprove Verdict = "approve"
	VerdictReject  Verdict = "reject"
)

type ApplicationDTO struct {
	AppID          string                `json:"app_id"`
	OwnerID        *string               `json:"owner_id,omitempty"`
	Name           string                `json:"name"`
	Gender         appDomain.Gender      `json:"gender"`
	DocumentType   identity.DocumentType `json:"document_type"`
	DocumentNumber string                `json:"document_number"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	PhotoFrontURL  string                `json:"photo_front_url"`
	PhotoBackURL   string                `json:"photo_back_url"`
	Status         appDomain.Status      `json:"status"`
	ReviewComments *string               `json:"review_comments,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type AuditEntryDTO struct {
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Remarks   *string   `json:"remarks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DetailDTO struct {
	Application ApplicationDTO  `json:"application"`
	History     []AuditEntryDTO `json:"history"`
}

func toDTO(a *appDomain.Application) ApplicationDTO {
	return ApplicationDTO{
		AppID:          a.AppID,
		OwnerID:        a.OwnerID,
		Name:           a.Name,
		Gender:         a.Gender,
		DocumentType:   a.DocumentType,
		DocumentNumber: a.DocumentNumber,
		Phone:          a.Phone,
		Address:        a.Address,
		PhotoFrontURL:  a.PhotoFrontURL,
		PhotoBackURL:   a.PhotoBackURL,
		Status:         a.Status,
		ReviewComments: a.ReviewComments,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
