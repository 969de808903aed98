package service

import (
	"context"
	"testing"
	"time"

	"github.com/taskforge/projecthub/internal/core/domain"
)

type stubAuditRepo struct {
	entries   []*domain.AuditEntry
	lastLimit int64
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) ListNewestFirst(_ context.Context, limit int64) ([]*domain.AuditEntry, error) {
	r.lastLimit = limit
	return r.entries, nil
}

func TestAuditService_List(t *testing.T) {
	repo := &stubAuditRepo{entries: []*domain.AuditEntry{
		{ID: "a1", Action: "POST /projects", PerformedAt: time.Now().UTC()},
	}}
	svc := NewAuditService(repo)

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "a1" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if repo.lastLimit != auditListLimit {
		t.Fatalf("expected limit %d, got %d", auditListLimit, repo.lastLimit)
	}
}
