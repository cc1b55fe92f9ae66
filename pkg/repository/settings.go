package repository

import (
	"context"
	"fmt"

	"github.com/xdpzq/devcore/pkg/database"
	"github.com/xdpzq/devcore/pkg/domain"
)

type settingsRepository struct {
	col *database.Collection[domain.GlobalSettings]
}

func NewSettingsRepository(db *database.Client) *settingsRepository {
	return &settingsRepository{col: db.Settings}
}

// Get returns the singleton settings record, or the defaults when the
// collection is still empty.
func (r *settingsRepository) Get(ctx context.Context) (domain.GlobalSettings, error) {
	settings, found, err := r.col.FindOne(ctx, nil)
	if err != nil {
		return domain.GlobalSettings{}, fmt.Errorf("fetching settings: %w", err)
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	return *settings, nil
}

// Save overwrites the singleton wholesale. Writing the full record is the
// only write primitive; there are no partial updates.
func (r *settingsRepository) Save(ctx context.Context, settings domain.GlobalSettings) error {
	if err := r.col.OverwriteAll(ctx, []domain.GlobalSettings{settings}); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
