package repository

import (
	"context"
	"fmt"

	"github.com/xdpzq/devcore/pkg/database"
	"github.com/xdpzq/devcore/pkg/domain"
)

type usersRepository struct {
	col *database.Collection[domain.User]
}

func NewUsersRepository(db *database.Client) *usersRepository {
	return &usersRepository{col: db.Users}
}

func (r *usersRepository) All(ctx context.Context) ([]domain.User, error) {
	users, err := r.col.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (r *usersRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, found, err := r.col.FindOne(ctx, database.Query{"username": username})
	if err != nil {
		return nil, fmt.Errorf("fetching user by username: %w", err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// GetByCredentials requires an exact username+password match.
func (r *usersRepository) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	user, found, err := r.col.FindOne(ctx, database.Query{"username": username, "password": password})
	if err != nil {
		return nil, fmt.Errorf("fetching user by credentials: %w", err)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// Insert appends a user. Username uniqueness is enforced by the caller,
// not here.
func (r *usersRepository) Insert(ctx context.Context, user domain.User) error {
	if err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *usersRepository) Replace(ctx context.Context, user domain.User) error {
	found, err := r.col.ReplaceOne(ctx, database.Query{"username": user.Username}, user)
	if err != nil {
		return fmt.Errorf("replacing user: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (r *usersRepository) Delete(ctx context.Context, username string) error {
	found, err := r.col.DeleteOne(ctx, database.Query{"username": username})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
