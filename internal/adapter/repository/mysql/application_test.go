package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	appDomain "realname-backend/internal/domain/application"
	"realname-backend/pkg/id"
	"realname-backend/pkg/identity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type applicationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	AppID          string    `gorm:"size:32;column:app_id"`
	OwnerID        *string   `gorm:"size:32;column:owner_id"`
	Name           string    `gorm:"column:name"`
	Gender         string    `gorm:"type:text;column:gender"` // ← no enum
	DocumentType   string    `gorm:"type:text;column:document_type"`
	DocumentNumber string    `gorm:"column:document_number"`
	Phone          string    `gorm:"column:phone"`
	Address        string    `gorm:"column:address"`
	PhotoFrontURL  string    `gorm:"column:photo_front_url"`
	PhotoBackURL   string    `gorm:"column:photo_back_url"`
	Status         string    `gorm:"type:text;column:status"`
	ReviewComments *string   `gorm:"column:review_comments"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (applicationSQLite) TableName() string { return "applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// :memory: is per-connection; pin the pool to one so every query sees
	// the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&applicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(appID, ownerID, number string) *appDomain.Application {
	owner := ownerID
	return &appDomain.Application{
		AppID:          appID,
		OwnerID:        &owner,
		Name:           "张三",
		Gender:         appDomain.GenderMale,
		DocumentType:   identity.DocTypeResidentID,
		DocumentNumber: number,
		Phone:          "13800138000",
		Address:        "北京市海淀区1号",
		PhotoFrontURL:  "https://cdn.example.com/front.jpg",
		PhotoBackURL:   "https://cdn.example.com/back.jpg",
		Status:         appDomain.StatusPending,
	}
}

func TestCreateAndGetByAppID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	appID := id.NewID32()
	owner := id.NewID32()

	a := makeApplication(appID, owner, "11010519900101001X")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByAppID(ctx, appID)
	if err != nil {
		t.Fatalf("GetByAppID: %v", err)
	}
	if got.AppID != appID || got.DocumentNumber != "11010519900101001X" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Status != appDomain.StatusPending {
		t.Fatalf("status = %s, want pending", got.Status)
	}
}

func TestGetByAppID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)

	_, err := repo.GetByAppID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestSave_UpdatesStatusAndComments(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication(id.NewID32(), id.NewID32(), "110105199001010010")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	comments := "photo unreadable"
	a.Status = appDomain.StatusRejected
	a.ReviewComments = &comments
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByAppID(ctx, a.AppID)
	if err != nil {
		t.Fatalf("GetByAppID: %v", err)
	}
	if got.Status != appDomain.StatusRejected {
		t.Fatalf("status = %s, want rejected", got.Status)
	}
	if got.ReviewComments == nil || *got.ReviewComments != comments {
		t.Fatalf("comments = %v, want %q", got.ReviewComments, comments)
	}
}

func TestGetActiveByDocumentNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	number := "11010519900101001X"

	// a cancelled holder does not block the number
	cancelled := makeApplication(id.NewID32(), id.NewID32(), number)
	cancelled.Status = appDomain.StatusCancelled
	if err := repo.Create(ctx, cancelled); err != nil {
		t.Fatalf("Create cancelled: %v", err)
	}

	if _, err := repo.GetActiveByDocumentNumber(ctx, number); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("cancelled holder should not be active, err = %v", err)
	}

	// any non-cancelled status blocks it
	for _, s := range []appDomain.Status{appDomain.StatusPending, appDomain.StatusApproved, appDomain.StatusRejected} {
		holder := makeApplication(id.NewID32(), id.NewID32(), number)
		holder.Status = s
		if err := repo.Create(ctx, holder); err != nil {
			t.Fatalf("Create %s holder: %v", s, err)
		}
		got, err := repo.GetActiveByDocumentNumber(ctx, number)
		if err != nil {
			t.Fatalf("GetActiveByDocumentNumber with %s holder: %v", s, err)
		}
		if got.ID != holder.ID {
			t.Fatalf("active holder = %d, want %d", got.ID, holder.ID)
		}
		// free it again for the next round
		holder.Status = appDomain.StatusCancelled
		if err := repo.Save(ctx, holder); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
}
