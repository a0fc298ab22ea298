// Package audit appends advisory entries to the action log. Writes are
// best-effort: a failed audit write never fails the action that triggered it.
package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/store"
)

const writeTimeout = 5 * time.Second

type Recorder struct {
	store  *store.AuditStore
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewRecorder(auditStore *store.AuditStore, logger *slog.Logger) *Recorder {
	return &Recorder{store: auditStore, logger: logger}
}

// Record appends an entry in the background. The caller does not wait for or
// learn about the result; failures are logged and swallowed. The context is
// detached so an entry still lands after the triggering request finishes.
func (r *Recorder) Record(username, action, entryType, details string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		_, err := r.store.Append(ctx, domain.AuditEntry{
			Username: username,
			Action:   action,
			Type:     entryType,
			Details:  details,
		})
		if err != nil {
			r.logger.Warn("audit write failed", "action", action, "error", err)
		}
	}()
}

// Flush waits for in-flight writes. Used at shutdown and in tests.
func (r *Recorder) Flush() {
	r.wg.Wait()
}
