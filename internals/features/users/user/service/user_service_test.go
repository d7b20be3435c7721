package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/constants"
	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/users/user/dto"
	"madrasa_backend/internals/features/users/user/model"
)

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		actor, target string
		want          bool
	}{
		{constants.RoleSuperAdmin, constants.RoleAdmin, true},
		{constants.RoleSuperAdmin, constants.RoleSuperAdmin, true},
		{constants.RoleAdmin, constants.RoleAdmin, false},
		{constants.RoleAdmin, constants.RoleAccountant, true},
		{constants.RoleAdmin, constants.RoleTeacher, true},
		{constants.RoleTeacher, constants.RoleUser, false},
		{constants.RoleSuperAdmin, "khalifa", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanAssignRole(tt.actor, tt.target), "%s → %s", tt.actor, tt.target)
	}
}

func TestBootstrapSuperAdminOnlyOnce(t *testing.T) {
	db := testdb.New(t, &model.UserModel{})

	need, err := NeedsBootstrap(db)
	require.NoError(t, err)
	assert.True(t, need)

	u, err := BootstrapSuperAdmin(db, dto.BootstrapAdminRequest{FullName: "Muhtamim", Email: "Muhtamim@Madrasa.org", Password: "rahasia-123"})
	require.NoError(t, err)
	assert.Equal(t, "muhtamim@madrasa.org", u.Email)
	assert.Equal(t, constants.RoleSuperAdmin, u.Role)

	_, err = BootstrapSuperAdmin(db, dto.BootstrapAdminRequest{FullName: "Lain", Email: "lain@madrasa.org", Password: "rahasia-123"})
	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)

	need, err = NeedsBootstrap(db)
	require.NoError(t, err)
	assert.False(t, need)
}

func TestCreateUserInactive(t *testing.T) {
	db := testdb.New(t, &model.UserModel{})
	u, err := CreateUser(db, CreateUserInput{FullName: "Guru Tamu", Email: "tamu@madrasa.org", Password: "rahasia-123", Role: constants.RoleTeacher})
	require.NoError(t, err)

	var got model.UserModel
	require.NoError(t, db.First(&got, "id = ?", u.ID).Error)
	assert.False(t, got.IsActive)
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	db := testdb.New(t, &model.UserSettingsModel{})
	userID := uuid.New()

	s, err := GetSettings(db, userID)
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultUserSettings(), s)

	s.DarkMode = true
	s.FeeReminders = false
	require.NoError(t, SaveSettings(db, userID, s))
	// simpan kedua kali = upsert
	require.NoError(t, SaveSettings(db, userID, s))

	got, err := GetSettings(db, userID)
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
	assert.False(t, got.FeeReminders)
	assert.True(t, got.EmailNotifications)
}
