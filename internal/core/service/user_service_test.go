package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, email string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func strPtr(s string) *string { return &s }

func TestUserService_Update_RequiresField(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	if _, err := svc.Update(context.Background(), user.ID, ports.UserUpdateInput{}); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUserService_Update_HashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	updated, err := svc.Update(context.Background(), user.ID, ports.UserUpdateInput{
		Name:     strPtr("Alice Cooper"),
		Password: strPtr("newsecret"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Alice Cooper" {
		t.Fatalf("expected updated name, got %s", updated.Name)
	}
	if updated.PasswordHash == "newsecret" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("hash does not match new password: %v", err)
	}
	// Untouched fields survive.
	if updated.Username != "alice" || updated.Email != "alice@example.com" {
		t.Fatalf("unexpected field change: %+v", updated)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", ports.UserUpdateInput{Name: strPtr("x")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_SoftDelete_HidesUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	deleted, err := svc.SoftDelete(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !deleted.IsDeleted {
		t.Fatalf("expected is_deleted set")
	}

	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected deleted user hidden from Get, got %v", err)
	}
	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected deleted user hidden from List, got %d users", len(users))
	}

	// A second soft delete finds no active user.
	if _, err := svc.SoftDelete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeat delete, got %v", err)
	}
}

func TestUserService_Restore_Lifecycle(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	if _, err := svc.SoftDelete(context.Background(), user.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	restored, err := svc.Restore(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.IsDeleted {
		t.Fatalf("expected restored user active")
	}
	if _, err := svc.Get(context.Background(), user.ID); err != nil {
		t.Fatalf("expected restored user visible: %v", err)
	}

	// Restoring an active user finds nothing to restore.
	if _, err := svc.Restore(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on repeat restore, got %v", err)
	}
}

func TestUserService_PermanentDelete_RequiresSoftDelete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	if err := svc.PermanentDelete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for active user, got %v", err)
	}

	if _, err := svc.SoftDelete(context.Background(), user.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := svc.PermanentDelete(context.Background(), user.ID); err != nil {
		t.Fatalf("permanent delete: %v", err)
	}

	// The document is gone, not just hidden.
	if _, err := svc.Restore(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected purged user unrestorable, got %v", err)
	}
}

func TestUserService_AssignRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleEmployee)

	updated, err := svc.AssignRole(context.Background(), user.ID, "Manager")
	if err != nil {
		t.Fatalf("assign role: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("expected Manager role, got %s", updated.Role)
	}

	if _, err := svc.AssignRole(context.Background(), user.ID, "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_RevokeRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user := seedUser(t, repo, "alice", "alice@example.com", domain.RoleAdmin)

	updated, err := svc.RevokeRole(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("revoke role: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Fatalf("expected demotion to Employee, got %s", updated.Role)
	}
}
