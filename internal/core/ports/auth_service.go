package ports

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	Username string
	Name     string
	Email    string
	Password string
	Phone    string
	Address  domain.Address
	Role     string
}

// AuthService implements account creation and login.
type AuthService interface {
	// Signup is the unauthenticated bootstrap path; it only accepts the Admin
	// role and fails with domain.ErrForbidden for anything else.
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Register is the Admin-gated path for creating Manager and Employee
	// accounts; an Admin role here fails with domain.ErrInvalidRole.
	Register(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token together
	// with the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
