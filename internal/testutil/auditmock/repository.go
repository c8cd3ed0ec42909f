package auditmock

import (
	"context"

	domain "realname-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, e *domain.Entry) error
	ListByApplicationIDFn func(ctx context.Context, applicationID uint64) ([]domain.Entry, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByApplicationID(ctx context.Context, applicationID uint64) ([]domain.Entry, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}
