package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByAppID(ctx context.Context, appID string) (*Application, error)
	// GetByAppIDForUpdate takes the row lock; only meaningful inside a
	// transaction (see uow.UnitOfWork).
	GetByAppIDForUpdate(ctx context.Context, appID string) (*Application, error)
	// GetActiveByDocumentNumber finds a non-cancelled application holding
	// the given identity number.
	GetActiveByDocumentNumber(ctx context.Context, number string) (*Application, error)
	Save(ctx context.Context, a *Application) error
}
