package audit

import "time"

type Action string

const (
	ActionSubmit   Action = "submit"
	ActionResubmit Action = "resubmit"
	ActionCancel   Action = "cancel"
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

// Entry is one immutable audit record. Rows are inserted in the same
// transaction as the application mutation they document and are never
// updated or deleted.
type Entry struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID uint64    `gorm:"column:application_id;not null;index:idx_audit_logs_application" json:"-"`
	ActorID       string    `gorm:"size:32;not null" json:"actor_id"`
	Action        Action    `gorm:"type:enum('submit','resubmit','cancel','approved','rejected');not null" json:"action"`
	Remarks       *string   `gorm:"type:text" json:"remarks"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }
