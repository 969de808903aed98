// Package metrics defines and registers all custom Prometheus metrics for
// the ProjectHub API. It is the single source of truth for metric names,
// labels, and help strings. Collectors register themselves with the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projecthub"

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEntriesRecordedTotal counts audit entries successfully persisted by
// the background recorder.
var AuditEntriesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_recorded_total",
		Help:      "Total number of audit entries persisted.",
	},
)

// AuditEntriesDroppedTotal counts audit entries lost before persistence.
// Label:
//   - reason: "buffer_full" (enqueue rejected) or "write_failed" (store error)
var AuditEntriesDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_dropped_total",
		Help:      "Total number of audit entries lost, labelled by reason.",
	},
	[]string{"reason"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "unknown_email", "bad_password", "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// UsersCreatedTotal counts newly created user accounts.
// Label:
//   - role: "Admin", "Manager", or "Employee"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)
