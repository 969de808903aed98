package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/projecthub/internal/api/metrics"
	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// ProjectService implements project CRUD, the soft-delete lifecycle and
// membership assignment.
type ProjectService struct {
	repo  ports.ProjectRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, users: users, log: log}
}

// Create persists a new project after verifying that every assignee resolves
// to an existing active user. Name uniqueness among active projects is
// enforced by the repository's unique index.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := s.verifyAssignees(ctx, input.AssignedTo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		AssignedTo:  input.AssignedTo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.AssignedTo == nil {
		project.AssignedTo = []string{}
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	metrics.ProjectsCreatedTotal.Inc()
	s.log.Info().Str("project_id", created.ID).Str("created_by", input.CreatedBy).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.ListActive(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindActiveByID(ctx, id)
}

// Update applies the provided fields to an active project. A non-nil
// AssignedTo replaces the whole membership set after assignee verification;
// the repository applies the change in a single atomic write.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if input.Name == nil && input.Description == nil && input.AssignedTo == nil {
		return nil, domain.ErrNothingToUpdate
	}
	if input.AssignedTo != nil {
		if err := s.verifyAssignees(ctx, *input.AssignedTo); err != nil {
			return nil, err
		}
	}

	project, err := s.repo.Update(ctx, id, ports.ProjectUpdate{
		Name:        input.Name,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", id).Msg("project updated")
	return project, nil
}

func (s *ProjectService) SoftDelete(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", id).Msg("project soft deleted")
	return project, nil
}

func (s *ProjectService) Restore(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", id).Msg("project restored")
	return project, nil
}

// PermanentDelete purges a soft-deleted project. The repository enforces the
// prior-soft-delete precondition.
func (s *ProjectService) PermanentDelete(ctx context.Context, id string) error {
	if err := s.repo.PermanentDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("project_id", id).Msg("project permanently deleted")
	return nil
}

func (s *ProjectService) verifyAssignees(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.users.CountActiveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return domain.ErrUnknownAssignee
	}
	return nil
}
