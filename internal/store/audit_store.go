package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/recordstore"
)

const auditKey = "audit_log"

// AuditStore is the append-only administrative action log. Entries are stored
// oldest-first and listed newest-first. There is no size bound.
type AuditStore struct {
	c collection[domain.AuditEntry]
}

func NewAuditStore(rs recordstore.Store, logger *slog.Logger) *AuditStore {
	return &AuditStore{c: collection[domain.AuditEntry]{
		store:    rs,
		key:      auditKey,
		defaults: empty[domain.AuditEntry],
		logger:   logger,
	}}
}

// Append stamps the entry (id, timestamps, default username) and persists it.
func (s *AuditStore) Append(ctx context.Context, e domain.AuditEntry) (domain.AuditEntry, error) {
	now := time.Now()
	e.ID = newEntryID(now)
	e.Timestamp = now.Format(time.RFC3339)
	e.Date = now.Format("02/01/2006")
	e.Time = now.Format("15:04:05")
	if e.Username == "" {
		e.Username = "admin"
	}
	e.Username = domain.Sanitize(e.Username)
	e.Action = domain.Sanitize(e.Action)
	e.Type = domain.Sanitize(e.Type)
	e.Details = domain.Sanitize(e.Details)

	entries := s.c.load(ctx)
	if err := s.c.save(ctx, append(entries, e)); err != nil {
		return domain.AuditEntry{}, err
	}
	return e, nil
}

// List returns all entries newest-first.
func (s *AuditStore) List(ctx context.Context) []domain.AuditEntry {
	entries := s.c.load(ctx)
	out := make([]domain.AuditEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// Clear truncates the log.
func (s *AuditStore) Clear(ctx context.Context) error {
	return s.c.save(ctx, []domain.AuditEntry{})
}

func newEntryID(now time.Time) string {
	suffix := make([]byte, 5)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}
