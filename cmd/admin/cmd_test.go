package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/constants"
	"madrasa_backend/internals/databases/testdb"
	authHelper "madrasa_backend/internals/features/users/auth/helper"
	authModel "madrasa_backend/internals/features/users/auth/model"
	userModel "madrasa_backend/internals/features/users/user/model"
	userService "madrasa_backend/internals/features/users/user/service"
)

func stubPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func newCLI(t *testing.T) (*commandLine, *bytes.Buffer) {
	db := testdb.New(t, &userModel.UserModel{}, &authModel.RefreshTokenModel{})
	out := &bytes.Buffer{}
	return &commandLine{db: db, out: out}, out
}

func TestRunWithoutCommandPrintsUsage(t *testing.T) {
	cli, out := newCLI(t)
	assert.Equal(t, errHelp, cli.run([]string{"admin"}))
	assert.Contains(t, out.String(), "createsuperadmin")
}

func TestCreateSuperAdmin(t *testing.T) {
	cli, out := newCLI(t)
	stubPassword(t, "rahasia-123")

	require.NoError(t, cli.run([]string{"admin", "createsuperadmin", "-email", "Kepala@Madrasa.org", "-name", "Ustadz Hamid"}))
	assert.Contains(t, out.String(), "kepala@madrasa.org")

	var u userModel.UserModel
	require.NoError(t, cli.db.Where("email = ?", "kepala@madrasa.org").First(&u).Error)
	assert.Equal(t, constants.RoleSuperAdmin, u.Role)
	assert.True(t, u.IsActive)
	assert.NoError(t, authHelper.CheckPasswordHash(u.Password, "rahasia-123"))

	// email sama kedua kali ditolak
	err := cli.run([]string{"admin", "createsuperadmin", "-email", "kepala@madrasa.org", "-name", "X"})
	assert.ErrorIs(t, err, userService.ErrEmailTaken)
}

func TestCreateSuperAdminRejectsShortPassword(t *testing.T) {
	cli, _ := newCLI(t)
	stubPassword(t, "pendek")

	err := cli.run([]string{"admin", "createsuperadmin", "-email", "a@b.c", "-name", "A"})
	assert.ErrorIs(t, err, userService.ErrPasswordTooShort)
}

func TestResetPassword(t *testing.T) {
	cli, _ := newCLI(t)
	u, err := userService.CreateUser(cli.db, userService.CreateUserInput{
		FullName: "Bendahara", Email: "kas@madrasa.org", Password: "lama-sekali", Role: constants.RoleAccountant, IsActive: true,
	})
	require.NoError(t, err)

	stubPassword(t, "baru-sekali")
	require.NoError(t, cli.run([]string{"admin", "resetpassword", "-email", "KAS@madrasa.org"}))

	var got userModel.UserModel
	require.NoError(t, cli.db.First(&got, "id = ?", u.ID).Error)
	assert.NoError(t, authHelper.CheckPasswordHash(got.Password, "baru-sekali"))
}

func TestResetPasswordMissingEmail(t *testing.T) {
	cli, _ := newCLI(t)
	assert.Equal(t, errHelp, cli.run([]string{"admin", "resetpassword"}))
}

func TestSeedUsersFromDir(t *testing.T) {
	cli, out := newCLI(t)
	dir := t.TempDir()
	users := `[
		{"full_name": "Admin", "email": "admin@madrasa.local", "password": "rahasia-123", "role": "admin"},
		{"full_name": "Hantu", "email": "hantu@madrasa.local", "password": "rahasia-123", "role": "ghost"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(users), 0o600))

	require.NoError(t, cli.run([]string{"admin", "seed", "-dir", dir}))
	// dijalankan ulang tetap aman
	require.NoError(t, cli.run([]string{"admin", "seed", "-dir", dir}))
	assert.Contains(t, out.String(), "Seed selesai")

	var n int64
	cli.db.Model(&userModel.UserModel{}).Count(&n)
	assert.Equal(t, int64(1), n)
}
