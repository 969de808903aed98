package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository honoring the active/deleted
// split the real repository implements in MongoDB.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.IsDeleted {
			continue
		}
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindActiveByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindActiveByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if !u.IsDeleted && u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListActive(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if !u.IsDeleted {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) CountActiveByIDs(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if u, ok := r.users[id]; ok && !u.IsDeleted {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	u.IsDeleted = true
	return cloneUser(u), nil
}

func (r *stubUserRepo) Restore(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	u.IsDeleted = false
	return cloneUser(u), nil
}

func (r *stubUserRepo) PermanentDelete(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok || !u.IsDeleted {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubLimiter struct {
	blocked  bool
	failures map[string]int
	resets   int
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{failures: make(map[string]int)}
}

func (l *stubLimiter) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	l.resets++
	delete(l.failures, email)
	return nil
}

func signupInput(username, email, role string) ports.SignupInput {
	return ports.SignupInput{
		Username: username,
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Phone:    "555-0100",
		Address:  domain.Address{Street: "1 Main St", City: "Springfield", ZipCode: "12345"},
		Role:     role,
	}
}

func newAuthService(repo ports.UserRepository, limiter LoginLimiter) *AuthService {
	return NewAuthService(repo, limiter, "test-secret", 0, zerolog.Nop())
}

func TestAuthService_Signup_CreatesAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubLimiter())

	user, err := svc.Signup(context.Background(), signupInput("alice", "Alice@Example.com", "Admin"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected Admin role, got %s", user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_RejectsNonAdmin(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubLimiter())

	for _, role := range []string{"Manager", "Employee", "superuser", ""} {
		if _, err := svc.Signup(context.Background(), signupInput("bob", "bob@example.com", role)); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %q: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestAuthService_Register_RolePolicy(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubLimiter())

	user, err := svc.Register(context.Background(), signupInput("carol", "carol@example.com", "Manager"))
	if err != nil {
		t.Fatalf("register manager: %v", err)
	}
	if user.Role != domain.RoleManager {
		t.Fatalf("expected Manager role, got %s", user.Role)
	}

	if _, err := svc.Register(context.Background(), signupInput("dave", "dave@example.com", "Admin")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for Admin, got %v", err)
	}
	if _, err := svc.Register(context.Background(), signupInput("erin", "erin@example.com", "intern")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubLimiter())

	if _, err := svc.Register(context.Background(), signupInput("frank", "frank@example.com", "Employee")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), signupInput("frank2", "frank@example.com", "Employee")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	svc := newAuthService(repo, limiter)

	created, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com", "Admin"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Alice@Example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset after success")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Fatalf("expected sub %s, got %v", created.ID, claims["sub"])
	}
	if claims["role"] != "Admin" {
		t.Fatalf("expected role Admin, got %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	svc := newAuthService(repo, limiter)

	if _, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com", "Admin")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures["alice@example.com"] != 1 {
		t.Fatalf("expected recorded failure")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubLimiter())

	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	limiter.blocked = true
	svc := newAuthService(repo, limiter)

	if _, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com", "Admin")); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "secret123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_SoftDeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubLimiter())

	created, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com", "Admin"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := repo.SoftDelete(context.Background(), created.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "secret123"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for deleted user, got %v", err)
	}
}
