package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xdpzq/devcore/pkg/domain"
)

type adminService struct {
	users    UsersRepository
	settings SettingsRepository
}

func NewAdminService(users UsersRepository, settings SettingsRepository) *adminService {
	return &adminService{users: users, settings: settings}
}

func (a *adminService) Users(ctx context.Context) ([]domain.User, error) {
	return a.users.All(ctx)
}

func (a *adminService) Settings(ctx context.Context) (domain.GlobalSettings, error) {
	return a.settings.Get(ctx)
}

// SetNameApproval flips whether the user's requested names are honored.
func (a *adminService) SetNameApproval(ctx context.Context, username string, approved bool) (domain.User, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, err
	}

	user.IsNameApproved = approved
	if err := a.users.Replace(ctx, *user); err != nil {
		return domain.User{}, err
	}

	slog.InfoContext(ctx, "updated name approval", "username", username, "approved", approved)
	return *user, nil
}

func (a *adminService) DeleteUser(ctx context.Context, username string) error {
	if err := a.users.Delete(ctx, username); err != nil {
		return err
	}
	slog.InfoContext(ctx, "deleted user", "username", username)
	return nil
}

// AddAPIKey appends a credential to the rotation list. Duplicates are not
// prevented; the rotation order is the configured order.
func (a *adminService) AddAPIKey(ctx context.Context, key string) (domain.GlobalSettings, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.GlobalSettings{}, fmt.Errorf("api key is empty")
	}

	return a.updateSettings(ctx, func(s *domain.GlobalSettings) error {
		s.APIKeys = append(s.APIKeys, key)
		return nil
	})
}

func (a *adminService) RemoveAPIKey(ctx context.Context, index int) (domain.GlobalSettings, error) {
	return a.updateSettings(ctx, func(s *domain.GlobalSettings) error {
		if index < 0 || index >= len(s.APIKeys) {
			return fmt.Errorf("api key index %d out of range", index)
		}
		s.APIKeys = append(s.APIKeys[:index], s.APIKeys[index+1:]...)
		return nil
	})
}

func (a *adminService) SetMaintenanceMode(ctx context.Context, enabled bool) (domain.GlobalSettings, error) {
	return a.updateSettings(ctx, func(s *domain.GlobalSettings) error {
		s.MaintenanceMode = enabled
		return nil
	})
}

func (a *adminService) SetImageFeature(ctx context.Context, enabled bool) (domain.GlobalSettings, error) {
	return a.updateSettings(ctx, func(s *domain.GlobalSettings) error {
		s.FeatureImageGen = enabled
		return nil
	})
}

func (a *adminService) SetPersona(ctx context.Context, template string) (domain.GlobalSettings, error) {
	return a.updateSettings(ctx, func(s *domain.GlobalSettings) error {
		s.CustomPersona = template
		return nil
	})
}

// updateSettings rewrites the singleton wholesale: read, mutate, save.
func (a *adminService) updateSettings(ctx context.Context, mutate func(*domain.GlobalSettings) error) (domain.GlobalSettings, error) {
	settings, err := a.settings.Get(ctx)
	if err != nil {
		return domain.GlobalSettings{}, err
	}
	if err := mutate(&settings); err != nil {
		return domain.GlobalSettings{}, err
	}
	if err := a.settings.Save(ctx, settings); err != nil {
		return domain.GlobalSettings{}, err
	}
	return settings, nil
}
