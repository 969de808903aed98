package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// AuditRepository persists audit entries. The collection is append-only.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListNewestFirst returns up to limit entries ordered by performed_at descending.
	ListNewestFirst(ctx context.Context, limit int64) ([]*domain.AuditEntry, error)
}
