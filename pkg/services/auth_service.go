package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/xdpzq/devcore/pkg/domain"
)

type UsersRepository interface {
	All(ctx context.Context) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) error
	Replace(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, username string) error
}

type authService struct {
	users UsersRepository
}

func NewAuthService(users UsersRepository) *authService {
	return &authService{users: users}
}

// Register creates a new identity. Duplicate usernames are rejected here,
// before anything reaches the store; requested names default when blank
// and always start unapproved.
func (s *authService) Register(ctx context.Context, username, password, aiName, devName string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, domain.ErrMissingCredentials
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return domain.User{}, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("checking username: %w", err)
	}

	aiName, _ = lo.Coalesce(aiName, domain.DefaultAIName)
	devName, _ = lo.Coalesce(devName, domain.DefaultDevName)

	user := domain.User{
		Username:         username,
		Password:         password,
		RequestedAIName:  aiName,
		RequestedDevName: devName,
		IsNameApproved:   false,
		IsAdmin:          false,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("registering user: %w", err)
	}

	slog.InfoContext(ctx, "registered new identity", "username", username)
	return user, nil
}

// Login succeeds only on an exact username+password match.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	return user, nil
}

// EnsureDefaultAdmin seeds the root account when the store is empty, so a
// fresh install is always reachable.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	users, err := s.users.All(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	admin := domain.User{
		Username:         "dapa",
		Password:         "123",
		RequestedAIName:  domain.DefaultAIName,
		RequestedDevName: domain.DefaultDevName,
		IsNameApproved:   true,
		IsAdmin:          true,
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}

	slog.InfoContext(ctx, "seeded default admin", "username", admin.Username)
	return nil
}
