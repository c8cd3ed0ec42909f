package application

import (
	"context"
	"errors"
	"strings"

	actorDomain "realname-backend/internal/domain/actor"
	appDomain "realname-backend/internal/domain/application"
	auditDomain "realname-backend/internal/domain/audit"
	"realname-backend/internal/domain/uow"
	"realname-backend/pkg/id"
	"realname-backend/pkg/identity"

	"gorm.io/gorm"
)

type Usecase struct {
	appRepo   appDomain.Repository
	auditRepo auditDomain.Repository
	uow       uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for tx flows.
func NewUsecase(apps appDomain.Repository, audits auditDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{appRepo: apps, auditRepo: audits, uow: tx}
}

// Submit validates the identity document, inserts the application as
// pending and writes the submit audit entry, all in one transaction.
func (u *Usecase) Submit(ctx context.Context, act actorDomain.Actor, in SubmitInput) (*ApplicationDTO, error) {
	if act.Role != actorDomain.RoleCustomer && act.Role != actorDomain.RoleAnonymous {
		return nil, appDomain.ErrForbidden
	}

	gender, ok := appDomain.ParseGender(in.Gender)
	if !ok {
		return nil, &appDomain.ValidationError{Field: "gender", Message: "must be male/男 or female/女"}
	}
	docType, ok := identity.ParseDocumentType(in.DocumentType)
	if !ok {
		return nil, &appDomain.ValidationError{Field: "document_type", Message: "unsupported document type"}
	}
	if err := identity.Validate(docType, in.DocumentNumber); err != nil {
		return nil, err
	}

	a := &appDomain.Application{
		AppID:          id.NewID32(),
		Name:           in.Name,
		Gender:         gender,
		DocumentType:   docType,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		Address:        in.Address,
		PhotoFrontURL:  in.PhotoFrontURL,
		PhotoBackURL:   in.PhotoBackURL,
		Status:         appDomain.StatusPending,
	}
	if act.Role == actorDomain.RoleCustomer {
		owner := act.ID
		a.OwnerID = &owner
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Duplicate check runs inside the same tx as the insert so a
		// cancelled holder freed up concurrently is seen consistently.
		_, err := r.Applications.GetActiveByDocumentNumber(ctx, in.DocumentNumber)
		switch {
		case err == nil:
			return appDomain.ErrDuplicateIdentity
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		return r.AuditLogs.Create(ctx, &auditDomain.Entry{
			ApplicationID: a.ID,
			ActorID:       act.ID,
			Action:        auditDomain.ActionSubmit,
		})
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(a)
	return &dto, nil
}

// Resubmit applies a customer's corrections to a rejected application and
// puts it back in the review queue.
func (u *Usecase) Resubmit(ctx context.Context, act actorDomain.Actor, appID string, in ResubmitInput) error {
	patch, err := parsePatch(in)
	if err != nil {
		return err
	}

	return u.mapNotFound(u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.Application) error {
		if !ownedBy(a, act) {
			return appDomain.ErrForbidden
		}
		next, err := appDomain.NextStatus(a.Status, appDomain.ActionResubmit, act.Role)
		if err != nil {
			return err
		}

		changed := patch.Apply(a)
		if len(changed) == 0 {
			return appDomain.ErrNoEffectiveChange
		}
		if contains(changed, "document_number") || contains(changed, "document_type") {
			if err := identity.Validate(a.DocumentType, a.DocumentNumber); err != nil {
				return err
			}
		}
		if contains(changed, "document_number") {
			holder, err := r.Applications.GetActiveByDocumentNumber(ctx, a.DocumentNumber)
			switch {
			case err == nil && holder.ID != a.ID:
				return appDomain.ErrDuplicateIdentity
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		a.Status = next
		a.ReviewComments = nil
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		remarks := "changed: " + strings.Join(changed, ", ")
		return r.AuditLogs.Create(ctx, &auditDomain.Entry{
			ApplicationID: a.ID,
			ActorID:       act.ID,
			Action:        auditDomain.ActionResubmit,
			Remarks:       &remarks,
		})
	}))
}

// Cancel moves a pending or rejected application owned by the actor to the
// terminal cancelled status.
func (u *Usecase) Cancel(ctx context.Context, act actorDomain.Actor, appID string) error {
	return u.mapNotFound(u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.Application) error {
		if !ownedBy(a, act) {
			return appDomain.ErrForbidden
		}
		next, err := appDomain.NextStatus(a.Status, appDomain.ActionCancel, act.Role)
		if err != nil {
			return err
		}

		a.Status = next
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		return r.AuditLogs.Create(ctx, &auditDomain.Entry{
			ApplicationID: a.ID,
			ActorID:       act.ID,
			Action:        auditDomain.ActionCancel,
		})
	}))
}

// Decide records an auditor's verdict on a pending application. Rejection
// requires non-empty remarks; the remarks become the review comments the
// customer sees.
func (u *Usecase) Decide(ctx context.Context, act actorDomain.Actor, appID string, verdict Verdict, remarks string) error {
	if !act.IsReviewer() {
		return appDomain.ErrForbidden
	}
	var action appDomain.Action
	switch verdict {
	case VerdictApprove:
		action = appDomain.ActionApprove
	case VerdictReject:
		action = appDomain.ActionReject
	default:
		return &appDomain.ValidationError{Field: "verdict", Message: "must be approve or reject"}
	}
	remarks = strings.TrimSpace(remarks)
	if verdict == VerdictReject && remarks == "" {
		return &appDomain.ValidationError{Field: "remarks", Message: "required when rejecting"}
	}

	return u.mapNotFound(u.uow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.Application) error {
		// Status comes from the FOR UPDATE re-read; a concurrent decide
		// that committed first is visible here and fails the table check.
		next, err := appDomain.NextStatus(a.Status, action, act.Role)
		if err != nil {
			return err
		}

		a.Status = next
		if remarks != "" {
			a.ReviewComments = &remarks
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &auditDomain.Entry{
			ApplicationID: a.ID,
			ActorID:       act.ID,
			Action:        auditDomain.ActionApproved,
		}
		if next == appDomain.StatusRejected {
			entry.Action = auditDomain.ActionRejected
		}
		if remarks != "" {
			entry.Remarks = &remarks
		}
		return r.AuditLogs.Create(ctx, entry)
	}))
}

// GetDetail returns the application and its audit history, newest first.
// Read-only: no row lock is taken.
func (u *Usecase) GetDetail(ctx context.Context, appID string) (*DetailDTO, error) {
	a, err := u.appRepo.GetByAppID(ctx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	entries, err := u.auditRepo.ListByApplicationID(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	out := &DetailDTO{Application: toDTO(a), History: make([]AuditEntryDTO, 0, len(entries))}
	for _, e := range entries {
		out.History = append(out.History, AuditEntryDTO{
			ActorID:   e.ActorID,
			Action:    string(e.Action),
			Remarks:   e.Remarks,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appDomain.ErrNotFound
	}
	return err
}

func ownedBy(a *appDomain.Application, act actorDomain.Actor) bool {
	return act.Role == actorDomain.RoleCustomer && a.OwnerID != nil && *a.OwnerID == act.ID
}

func parsePatch(in ResubmitInput) (appDomain.ResubmitPatch, error) {
	p := appDomain.ResubmitPatch{
		Name:           in.Name,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		Address:        in.Address,
		PhotoFrontURL:  in.PhotoFrontURL,
		PhotoBackURL:   in.PhotoBackURL,
	}
	if in.Gender != nil {
		g, ok := appDomain.ParseGender(*in.Gender)
		if !ok {
			return p, &appDomain.ValidationError{Field: "gender", Message: "must be male/男 or female/女"}
		}
		p.Gender = &g
	}
	if in.DocumentType != nil {
		dt, ok := identity.ParseDocumentType(*in.DocumentType)
		if !ok {
			return p, &appDomain.ValidationError{Field: "document_type", Message: "unsupported document type"}
		}
		p.DocumentType = &dt
	}
	return p, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
