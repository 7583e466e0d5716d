package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListUsers returns the full user collection in storage order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	defer s.lock(colUsers)()
	return load(ctx, s, colUsers, s.seed.Users)
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	defer s.lock(colUsers)()
	users, err := load(ctx, s, colUsers, s.seed.Users)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: user %d", storage.ErrNotFound, id)
}

// GetUserByEmail retrieves a user by login email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.lock(colUsers)()
	users, err := load(ctx, s, colUsers, s.seed.Users)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			user := users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", storage.ErrNotFound, email)
}

// CreateUser appends a new user, assigning its id and timestamps in place.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	defer s.lock(colUsers)()
	users, err := load(ctx, s, colUsers, s.seed.Users)
	if err != nil {
		return err
	}

	user.ID = nextID(users, func(u models.User) int64 { return u.ID })
	now := s.now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now

	users = append(users, *user)
	return save(ctx, s, colUsers, users)
}

// UpdateUser applies the patch to the user with the given id and refreshes
// UpdatedAt. Returns ErrNotFound without side effects when the id is
// absent.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	defer s.lock(colUsers)()
	users, err := load(ctx, s, colUsers, s.seed.Users)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		if patch.Email != nil {
			users[i].Email = *patch.Email
		}
		if patch.DisplayName != nil {
			users[i].DisplayName = *patch.DisplayName
		}
		if patch.Role != nil {
			users[i].Role = *patch.Role
		}
		users[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colUsers, users); err != nil {
			return nil, err
		}
		updated := users[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: user %d", storage.ErrNotFound, id)
}

// DeleteUser removes the user with the given id, reporting whether a
// removal occurred.
func (s *Store) DeleteUser(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colUsers)()
	users, err := load(ctx, s, colUsers, s.seed.Users)
	if err != nil {
		return false, err
	}

	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			if err := save(ctx, s, colUsers, users); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
