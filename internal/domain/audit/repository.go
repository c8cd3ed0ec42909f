package audit

import "context"

type Repository interface {
	// Create appends an entry. Append-only: there is no update or delete.
	Create(ctx context.Context, e *Entry) error
	// ListByApplicationID returns entries newest first.
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]Entry, error)
}
