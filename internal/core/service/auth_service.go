package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/projecthub/internal/api/metrics"
	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// LoginLimiter abstracts the brute-force guard (Redis). All methods are
// best-effort: an error from the limiter never blocks a login.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements signup, registration and login.
type AuthService struct {
	repo      ports.UserRepository
	limiter   LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, limiter LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Signup creates the bootstrap Admin account. Any other role is rejected.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if domain.Role(input.Role) != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.create(ctx, input, domain.RoleAdmin)
}

// Register creates a Manager or Employee account on behalf of an Admin.
func (s *AuthService) Register(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	role := domain.Role(input.Role)
	if role != domain.RoleManager && role != domain.RoleEmployee {
		return nil, domain.ErrInvalidRole
	}
	return s.create(ctx, input, role)
}

func (s *AuthService) create(ctx context.Context, input ports.SignupInput, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user created")
	return created, nil
}

// Login verifies the credentials of an active user and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(email)

	blocked, err := s.limiter.TooManyFailures(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login limiter check failed, continuing")
	} else if blocked {
		metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("unknown_email").Inc()
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if limitErr := s.limiter.RecordFailure(ctx, email); limitErr != nil {
			s.log.Warn().Err(limitErr).Msg("failed to record login failure")
		}
		metrics.LoginAttemptsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if limitErr := s.limiter.Reset(ctx, email); limitErr != nil {
		s.log.Warn().Err(limitErr).Msg("failed to reset login failures")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
