package mysql

import (
	"context"

	appDomain "realname-backend/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByAppID(ctx context.Context, appID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("app_id = ?", appID).First(&out)
	return &out, res.Error
}

// GetByAppIDForUpdate re-reads the row under SELECT ... FOR UPDATE so the
// caller sees the committed status, not a pre-lock snapshot.
func (r *ApplicationRepository) GetByAppIDForUpdate(ctx context.Context, appID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("app_id = ?", appID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetActiveByDocumentNumber(ctx context.Context, number string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("document_number = ? AND status <> ?", number, appDomain.StatusCancelled).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}
