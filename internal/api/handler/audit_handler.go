package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// AuditHandler exposes the audit trail to administrators.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type auditEntryResponse struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"`
	PerformedBy    string    `json:"performed_by,omitempty"`
	PerformedAt    time.Time `json:"performed_at"`
	TargetResource string    `json:"target_resource"`
}

type auditLogsEnvelope struct {
	baseResponse
	AuditLogs []auditEntryResponse `json:"auditLogs"`
}

// List handles GET /audit-logs — newest entries first.
//
// @Summary      List audit log entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auditLogsEnvelope
// @Failure      401  {object}  baseResponse
// @Failure      403  {object}  baseResponse
// @Router       /audit-logs [get]
func (h *AuditHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, auditLogsEnvelope{
		baseResponse: ok("Audit logs retrieved successfully"),
		AuditLogs:    toAuditResponses(entries),
	})
}

func toAuditResponses(entries []*domain.AuditEntry) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			ID:             e.ID,
			Action:         e.Action,
			PerformedBy:    e.PerformedBy,
			PerformedAt:    e.PerformedAt,
			TargetResource: e.TargetResource,
		})
	}
	return out
}
