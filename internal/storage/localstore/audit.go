package localstore

import (
	"context"
	"slices"

	"github.com/coversync/coversync/internal/models"
)

// ListAuditEntries returns the audit trail newest-first.
func (s *Store) ListAuditEntries(ctx context.Context) ([]models.AuditEntry, error) {
	defer s.lock(colAudit)()
	entries, err := load(ctx, s, colAudit, s.seed.AuditEntries)
	if err != nil {
		return nil, err
	}
	// Entries are appended in id order; reverse for newest-first.
	out := slices.Clone(entries)
	slices.Reverse(out)
	return out, nil
}

// AppendAuditEntry appends an entry to the trail, assigning its id and
// CreatedAt in place. The trail is append-only: no update or delete exists.
func (s *Store) AppendAuditEntry(ctx context.Context, entry *models.AuditEntry) error {
	defer s.lock(colAudit)()
	entries, err := load(ctx, s, colAudit, s.seed.AuditEntries)
	if err != nil {
		return err
	}

	entry.ID = nextID(entries, func(e models.AuditEntry) int64 { return e.ID })
	entry.CreatedAt = s.now().Unix()

	entries = append(entries, *entry)
	return save(ctx, s, colAudit, entries)
}
