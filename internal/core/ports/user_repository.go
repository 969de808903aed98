package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// UserUpdate carries the mutable user fields. Nil pointers leave the stored
// value untouched.
type UserUpdate struct {
	Username     *string
	Name         *string
	Email        *string
	PasswordHash *string
	Phone        *string
	Address      *domain.Address
}

// UserRepository defines persistence operations for users. "Active" methods
// exclude soft-deleted documents; lifecycle methods operate on the flag
// itself and report domain.ErrUserNotFound when their precondition fails.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindActiveByID(ctx context.Context, id string) (*domain.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	ListActive(ctx context.Context) ([]*domain.User, error)
	// CountActiveByIDs returns how many of the given ids resolve to active users.
	CountActiveByIDs(ctx context.Context, ids []string) (int64, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	SetRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) (*domain.User, error)
	Restore(ctx context.Context, id string) (*domain.User, error)
	// PermanentDelete purges a user that is already soft-deleted. Deleting an
	// active user fails with domain.ErrUserNotFound.
	PermanentDelete(ctx context.Context, id string) error
}
