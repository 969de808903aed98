package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

// maxSnapshotBytes bounds how much of a request body one audit entry keeps.
const maxSnapshotBytes = 64 << 10

// Audit enqueues one entry per request before the handler runs, recording
// intent-to-act rather than outcome. Enqueueing is fire-and-forget; the
// request proceeds whether or not the entry is ever persisted.
func Audit(recorder ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snapshot := "No body"
			if body := c.Request().Body; body != nil {
				raw, err := io.ReadAll(io.LimitReader(body, maxSnapshotBytes))
				if err == nil && len(raw) > 0 {
					snapshot = string(raw)
				}
				// Hand the handler a replayable body.
				c.Request().Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), body))
			}

			performedBy, _ := c.Get("user_id").(string)
			recorder.Record(domain.AuditEntry{
				Action:         c.Request().Method + " " + c.Request().URL.Path,
				PerformedBy:    performedBy,
				PerformedAt:    time.Now().UTC(),
				TargetResource: snapshot,
			})

			return next(c)
		}
	}
}
