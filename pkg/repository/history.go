package repository

import (
	"context"
	"fmt"

	"github.com/xdpzq/devcore/pkg/database"
	"github.com/xdpzq/devcore/pkg/domain"
)

type historyRepository struct {
	col *database.Collection[domain.ChatSession]
}

func NewHistoryRepository(db *database.Client) *historyRepository {
	return &historyRepository{col: db.History}
}

func (r *historyRepository) ByUsername(ctx context.Context, username string) ([]domain.ChatSession, error) {
	sessions, err := r.col.Find(ctx, database.Query{"username": username})
	if err != nil {
		return nil, fmt.Errorf("listing history for %s: %w", username, err)
	}
	return sessions, nil
}

// Append adds a snapshot. History is an append-only log; snapshots are
// never rewritten in place.
func (r *historyRepository) Append(ctx context.Context, session domain.ChatSession) error {
	if err := r.col.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("appending chat session: %w", err)
	}
	return nil
}
