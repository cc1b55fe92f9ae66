package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdpzq/devcore/pkg/domain"
)

func TestSetNameApproval(t *testing.T) {
	users := &fakeUsersRepo{users: []domain.User{
		{Username: "neo", RequestedAIName: "Rex", RequestedDevName: "Jo"},
	}}
	svc := NewAdminService(users, &fakeSettingsRepo{})

	got, err := svc.SetNameApproval(context.Background(), "neo", true)
	require.NoError(t, err)
	assert.True(t, got.IsNameApproved)
	assert.Equal(t, "Rex", got.AIName())

	got, err = svc.SetNameApproval(context.Background(), "neo", false)
	require.NoError(t, err)
	assert.False(t, got.IsNameApproved)
	assert.Equal(t, domain.DefaultAIName, got.AIName())
}

func TestSetNameApprovalUnknownUser(t *testing.T) {
	svc := NewAdminService(&fakeUsersRepo{}, &fakeSettingsRepo{})

	_, err := svc.SetNameApproval(context.Background(), "ghost", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	users := &fakeUsersRepo{users: []domain.User{{Username: "neo"}, {Username: "trinity"}}}
	svc := NewAdminService(users, &fakeSettingsRepo{})

	require.NoError(t, svc.DeleteUser(context.Background(), "neo"))
	assert.Len(t, users.users, 1)
	assert.Equal(t, "trinity", users.users[0].Username)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "neo"), domain.ErrNotFound)
}

func TestAddAPIKey(t *testing.T) {
	settings := &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"key-0"}}}
	svc := NewAdminService(&fakeUsersRepo{}, settings)

	got, err := svc.AddAPIKey(context.Background(), "  key-1  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"key-0", "key-1"}, got.APIKeys, "key is trimmed and appended last")
	assert.Equal(t, 1, settings.saves)

	_, err = svc.AddAPIKey(context.Background(), "   ")
	assert.Error(t, err)
	assert.Equal(t, 1, settings.saves, "blank key is rejected before saving")
}

func TestRemoveAPIKey(t *testing.T) {
	settings := &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"a", "b", "c"}}}
	svc := NewAdminService(&fakeUsersRepo{}, settings)

	got, err := svc.RemoveAPIKey(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got.APIKeys)

	_, err = svc.RemoveAPIKey(context.Background(), 5)
	assert.Error(t, err)
	_, err = svc.RemoveAPIKey(context.Background(), -1)
	assert.Error(t, err)
}

func TestSettingsToggles(t *testing.T) {
	settings := &fakeSettingsRepo{}
	svc := NewAdminService(&fakeUsersRepo{}, settings)

	got, err := svc.SetMaintenanceMode(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, got.MaintenanceMode)

	got, err = svc.SetImageFeature(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, got.FeatureImageGen)
	assert.True(t, got.MaintenanceMode, "earlier change survives the next toggle")

	got, err = svc.SetPersona(context.Background(), "You are {{AI_NAME}}.")
	require.NoError(t, err)
	assert.Equal(t, "You are {{AI_NAME}}.", got.CustomPersona)

	assert.Equal(t, 3, settings.saves)
}
