package domain

import "time"

// AuditEntry records the intent to perform a mutating request. Entries are
// append-only and are never soft-deleted.
type AuditEntry struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"` // "METHOD /path"
	PerformedBy    string    `json:"performed_by,omitempty"`
	PerformedAt    time.Time `json:"performed_at"`
	TargetResource string    `json:"target_resource"`
}
