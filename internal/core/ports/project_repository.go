package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// ProjectUpdate carries the mutable project fields. A non-nil AssignedTo
// replaces the membership set in full.
type ProjectUpdate struct {
	Name        *string
	Description *string
	AssignedTo  *[]string
}

// ProjectRepository defines persistence operations for projects. Lifecycle
// methods keep is_deleted and deleted_at consistent on every transition and
// report domain.ErrProjectNotFound when their precondition fails.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindActiveByID(ctx context.Context, id string) (*domain.Project, error)
	ListActive(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, id string, upd ProjectUpdate) (*domain.Project, error)
	SoftDelete(ctx context.Context, id string) (*domain.Project, error)
	Restore(ctx context.Context, id string) (*domain.Project, error)
	PermanentDelete(ctx context.Context, id string) error
}
