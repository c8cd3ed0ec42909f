package applicationmock

import (
	"context"

	domain "realname-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                    func(ctx context.Context, a *domain.Application) error
	GetByAppIDFn                func(ctx context.Context, appID string) (*domain.Application, error)
	GetByAppIDForUpdateFn       func(ctx context.Context, appID string) (*domain.Application, error)
	GetActiveByDocumentNumberFn func(ctx context.Context, number string) (*domain.Application, error)
	SaveFn                      func(ctx context.Context, a *domain.Application) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDFn != nil {
		return m.GetByAppIDFn(ctx, appID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByAppIDForUpdate(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDForUpdateFn != nil {
		return m.GetByAppIDForUpdateFn(ctx, appID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByDocumentNumber(ctx context.Context, number string) (*domain.Application, error) {
	if m.GetActiveByDocumentNumberFn != nil {
		return m.GetActiveByDocumentNumberFn(ctx, number)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
