package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// UserUpdateInput carries optional profile fields for an update. Password,
// when present, is hashed by the service before it reaches the repository.
type UserUpdateInput struct {
	Username *string
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Address  *domain.Address
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) (*domain.User, error)
	Restore(ctx context.Context, id string) (*domain.User, error)
	PermanentDelete(ctx context.Context, id string) error
	AssignRole(ctx context.Context, id, role string) (*domain.User, error)
	// RevokeRole resets the target back to the baseline Employee role.
	RevokeRole(ctx context.Context, id string) (*domain.User, error)
}
