package mysql

import (
	"context"
	"testing"
	"time"

	auditDomain "realname-backend/internal/domain/audit"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type auditLogSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ApplicationID uint64    `gorm:"column:application_id"`
	ActorID       string    `gorm:"column:actor_id"`
	Action        string    `gorm:"type:text;column:action"` // ← no enum
	Remarks       *string   `gorm:"column:remarks"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (auditLogSQLite) TableName() string { return "audit_logs" }

func openAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&auditLogSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestAuditCreateAndListNewestFirst(t *testing.T) {
	db := openAuditTestDB(t)
	repo := NewAuditLogRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	remark := "photo unreadable"

	entries := []*auditDomain.Entry{
		{ApplicationID: 1, ActorID: "customer-1", Action: auditDomain.ActionSubmit, CreatedAt: base},
		{ApplicationID: 1, ActorID: "auditor-1", Action: auditDomain.ActionRejected, Remarks: &remark, CreatedAt: base.Add(time.Hour)},
		{ApplicationID: 1, ActorID: "customer-1", Action: auditDomain.ActionResubmit, CreatedAt: base.Add(2 * time.Hour)},
		// another application's trail must not leak in
		{ApplicationID: 2, ActorID: "customer-2", Action: auditDomain.ActionSubmit, CreatedAt: base.Add(30 * time.Minute)},
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByApplicationID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []auditDomain.Action{
		auditDomain.ActionResubmit,
		auditDomain.ActionRejected,
		auditDomain.ActionSubmit,
	}
	for i, w := range wantOrder {
		if got[i].Action != w {
			t.Fatalf("position %d action = %s, want %s (order: %+v)", i, got[i].Action, w, got)
		}
	}
	if got[1].Remarks == nil || *got[1].Remarks != remark {
		t.Fatalf("rejected entry lost remarks: %+v", got[1])
	}
}

func TestAuditList_Empty(t *testing.T) {
	db := openAuditTestDB(t)
	repo := NewAuditLogRepository(db)

	got, err := repo.ListByApplicationID(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}
