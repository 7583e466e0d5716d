package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListClients returns the full client collection in storage order.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	defer s.lock(colClients)()
	return load(ctx, s, colClients, s.seed.Clients)
}

// GetClient retrieves a client by id.
func (s *Store) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	defer s.lock(colClients)()
	clients, err := load(ctx, s, colClients, s.seed.Clients)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			client := clients[i]
			return &client, nil
		}
	}
	return nil, fmt.Errorf("%w: client %d", storage.ErrNotFound, id)
}

// CreateClient appends a new client, assigning its id and timestamps in
// place.
func (s *Store) CreateClient(ctx context.Context, client *models.Client) error {
	defer s.lock(colClients)()
	clients, err := load(ctx, s, colClients, s.seed.Clients)
	if err != nil {
		return err
	}

	client.ID = nextID(clients, func(c models.Client) int64 { return c.ID })
	now := s.now().Unix()
	client.CreatedAt = now
	client.UpdatedAt = now

	clients = append(clients, *client)
	return save(ctx, s, colClients, clients)
}

// UpdateClient applies the patch to the client with the given id and
// refreshes UpdatedAt. Returns ErrNotFound without side effects when the id
// is absent.
func (s *Store) UpdateClient(ctx context.Context, id int64, patch models.ClientPatch) (*models.Client, error) {
	defer s.lock(colClients)()
	clients, err := load(ctx, s, colClients, s.seed.Clients)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		applyClientPatch(&clients[i], patch)
		clients[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colClients, clients); err != nil {
			return nil, err
		}
		updated := clients[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: client %d", storage.ErrNotFound, id)
}

// DeleteClient removes the client with the given id, reporting whether a
// removal occurred. Policies referencing the client are left untouched:
// their ClientID dangles.
func (s *Store) DeleteClient(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colClients)()
	clients, err := load(ctx, s, colClients, s.seed.Clients)
	if err != nil {
		return false, err
	}

	for i := range clients {
		if clients[i].ID == id {
			clients = append(clients[:i], clients[i+1:]...)
			if err := save(ctx, s, colClients, clients); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// applyClientPatch copies the patch's non-nil fields onto the client.
func applyClientPatch(c *models.Client, p models.ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.IDNumber != nil {
		c.IDNumber = *p.IDNumber
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.Province != nil {
		c.Province = *p.Province
	}
	if p.PostalCode != nil {
		c.PostalCode = *p.PostalCode
	}
	if p.DateOfBirth != nil {
		c.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
	if p.MaritalStatus != nil {
		c.MaritalStatus = *p.MaritalStatus
	}
	if p.Occupation != nil {
		c.Occupation = *p.Occupation
	}
}
