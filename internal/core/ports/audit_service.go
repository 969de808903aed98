package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// AuditRecorder is the fire-and-forget sink used by the audit middleware.
// Record must never block and must never surface an error to the caller.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditService exposes the audit trail to administrators.
type AuditService interface {
	List(ctx context.Context) ([]*domain.AuditEntry, error)
}
