package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/projecthub/internal/api/metrics"
	"github.com/taskforge/projecthub/internal/core/domain"
	"github.com/taskforge/projecthub/internal/core/ports"
)

const (
	channelBuffer = 256
	writeTimeout  = 5 * time.Second
)

// Recorder persists audit entries through a buffered channel and a single
// background worker. Record never blocks the request path: when the buffer
// is full the entry is dropped and counted, and a failed write is logged
// without ever reaching the caller.
type Recorder struct {
	entries chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewRecorder creates a Recorder with the given buffer size.
// If buffer <= 0, channelBuffer is used.
func NewRecorder(buffer int, repo ports.AuditRepository, log zerolog.Logger) *Recorder {
	if buffer <= 0 {
		buffer = channelBuffer
	}
	return &Recorder{
		entries: make(chan domain.AuditEntry, buffer),
		repo:    repo,
		log:     log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	go r.run(ctx)
}

// Record enqueues an entry for persistence. A missed entry is an accepted
// loss, not a failure of the surrounding request.
func (r *Recorder) Record(entry domain.AuditEntry) {
	select {
	case r.entries <- entry:
	default:
		metrics.AuditEntriesDroppedTotal.WithLabelValues("buffer_full").Inc()
		r.log.Error().Str("action", entry.Action).Msg("audit buffer full, entry dropped")
	}
}

func (r *Recorder) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-r.entries:
			if !ok {
				return
			}
			r.persist(ctx, entry)
		}
	}
}

func (r *Recorder) persist(ctx context.Context, entry domain.AuditEntry) {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := r.repo.Insert(writeCtx, &entry); err != nil {
		metrics.AuditEntriesDroppedTotal.WithLabelValues("write_failed").Inc()
		r.log.Error().Err(err).Str("action", entry.Action).Msg("failed to persist audit entry")
		return
	}
	metrics.AuditEntriesRecordedTotal.Inc()
}
