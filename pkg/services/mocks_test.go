package services

import (
	"context"
	"errors"

	"github.com/xdpzq/devcore/pkg/domain"
)

// In-memory fakes shared by the service tests.

type fakeUsersRepo struct {
	users     []domain.User
	insertErr error
}

func (f *fakeUsersRepo) All(context.Context) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsersRepo) GetByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Username == username && f.users[i].Password == password {
			return &f.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsersRepo) Insert(_ context.Context, user domain.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsersRepo) Replace(_ context.Context, user domain.User) error {
	for i := range f.users {
		if f.users[i].Username == user.Username {
			f.users[i] = user
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUsersRepo) Delete(_ context.Context, username string) error {
	for i := range f.users {
		if f.users[i].Username == username {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSettingsRepo struct {
	settings *domain.GlobalSettings
	saves    int
}

func (f *fakeSettingsRepo) Get(context.Context) (domain.GlobalSettings, error) {
	if f.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *f.settings, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s domain.GlobalSettings) error {
	f.settings = &s
	f.saves++
	return nil
}

type fakeHistoryRepo struct {
	sessions  []domain.ChatSession
	appendErr error
}

func (f *fakeHistoryRepo) ByUsername(_ context.Context, username string) ([]domain.ChatSession, error) {
	var out []domain.ChatSession
	for _, s := range f.sessions {
		if s.Username == username {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) Append(_ context.Context, s domain.ChatSession) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.sessions = append(f.sessions, s)
	return nil
}

type fakeGenerator struct {
	text     string
	err      error
	requests []domain.GenerationRequest
	keys     [][]string
}

func (f *fakeGenerator) Generate(_ context.Context, req domain.GenerationRequest, apiKeys []string) (string, error) {
	f.requests = append(f.requests, req)
	f.keys = append(f.keys, apiKeys)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

var errBoom = errors.New("boom")
