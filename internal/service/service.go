// Package service implements the back-office operations over the store:
// CRUD with audit recording, reference-number generation and logging.
package service

import (
	"context"
	"log/slog"

	"github.com/coversync/coversync/internal/middleware"
	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// recordAudit appends a trail entry for a successful mutation. The actor is
// the authenticated staff email, the authenticated partner name, or
// "system". Audit failures are logged, not propagated: the mutation itself
// already committed.
func recordAudit(ctx context.Context, store storage.Store, action, entity string, id int64, detail string) {
	actor := middleware.GetEmail(ctx)
	if actor == "" {
		actor = middleware.GetPartner(ctx)
	}
	if actor == "" {
		actor = "system"
	}

	entry := &models.AuditEntry{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: id,
		Detail:   detail,
	}
	if err := store.AppendAuditEntry(ctx, entry); err != nil {
		slog.Error("Audit append failed", "entity", entity, "entity_id", id, "error", err)
	}
}
