package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// CreateProjectInput carries the fields required to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	AssignedTo  []string
	CreatedBy   string
}

// UpdateProjectInput carries optional project fields; at least one must be
// set. A non-nil AssignedTo replaces the membership set in full.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	AssignedTo  *[]string
}

// ProjectService defines use-case operations on projects.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	SoftDelete(ctx context.Context, id string) (*domain.Project, error)
	Restore(ctx context.Context, id string) (*domain.Project, error)
	PermanentDelete(ctx context.Context, id string) error
}
