package service

import (
	"context"
	"log/slog"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ClientService exposes client CRUD to the API layer.
type ClientService struct {
	store storage.Store
}

// NewClientService creates a ClientService with the given storage backend.
func NewClientService(store storage.Store) *ClientService {
	return &ClientService{store: store}
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.store.ListClients(ctx)
}

// Get returns one client by id.
func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	return s.store.GetClient(ctx, id)
}

// Create stores a new client and records the mutation.
func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if err := s.store.CreateClient(ctx, client); err != nil {
		slog.Error("CreateClient failed", "error", err)
		return err
	}
	slog.Info("Client created", "client_id", client.ID, "name", client.Name)
	recordAudit(ctx, s.store, models.AuditActionCreate, "client", client.ID, client.Name)
	return nil
}

// Update patches an existing client and records the mutation.
func (s *ClientService) Update(ctx context.Context, id int64, patch models.ClientPatch) (*models.Client, error) {
	client, err := s.store.UpdateClient(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateClient failed", "client_id", id, "error", err)
		return nil, err
	}
	slog.Info("Client updated", "client_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "client", id, client.Name)
	return client, nil
}

// Delete removes a client and records the mutation. Policies referencing
// the client are not cascaded.
func (s *ClientService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeleteClient(ctx, id)
	if err != nil {
		slog.Error("DeleteClient failed", "client_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("Client deleted", "client_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "client", id, "")
	}
	return removed, nil
}
