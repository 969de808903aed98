package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// UserService implements account management: profile updates, the
// soft-delete lifecycle and role assignment.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListActive(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindActiveByID(ctx, id)
}

// Update applies the provided profile fields to an active user. A new
// password is hashed before it reaches the repository.
func (s *UserService) Update(ctx context.Context, id string, input ports.UserUpdateInput) (*domain.User, error) {
	if input.Username == nil && input.Name == nil && input.Email == nil &&
		input.Password == nil && input.Phone == nil && input.Address == nil {
		return nil, domain.ErrNothingToUpdate
	}

	upd := ports.UserUpdate{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

func (s *UserService) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user soft deleted")
	return user, nil
}

func (s *UserService) Restore(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user restored")
	return user, nil
}

// PermanentDelete purges a soft-deleted user. The repository enforces the
// prior-soft-delete precondition.
func (s *UserService) PermanentDelete(ctx context.Context, id string) error {
	if err := s.repo.PermanentDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user permanently deleted")
	return nil
}

func (s *UserService) AssignRole(ctx context.Context, id, role string) (*domain.User, error) {
	r := domain.Role(role)
	if !r.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.SetRole(ctx, id, r)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", role).Msg("role assigned")
	return user, nil
}

func (s *UserService) RevokeRole(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.SetRole(ctx, id, domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("role revoked")
	return user, nil
}
