package service

import (
	"context"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// auditListLimit caps how many entries a single listing returns.
const auditListLimit = 500

// AuditService exposes the audit trail to administrators.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) List(ctx context.Context) ([]*domain.AuditEntry, error) {
	return s.repo.ListNewestFirst(ctx, auditListLimit)
}
