package uow

import (
	"context"

	"realname-backend/internal/domain/application"
	"realname-backend/internal/domain/audit"
)

type Repos struct {
	Applications application.Repository
	AuditLogs    audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, appID string, fn func(r Repos, a *application.Application) error) error
}
