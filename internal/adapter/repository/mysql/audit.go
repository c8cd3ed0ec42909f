package mysql

import (
	"context"

	auditDomain "realname-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditLogRepository struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditLogRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
