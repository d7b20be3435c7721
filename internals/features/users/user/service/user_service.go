package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"madrasa_backend/internals/constants"
	authHelper "madrasa_backend/internals/features/users/auth/helper"
	"madrasa_backend/internals/features/users/user/dto"
	"madrasa_backend/internals/features/users/user/model"
	helper "madrasa_backend/internals/helpers"
)

var (
	ErrAlreadyBootstrapped = errors.New("super admin sudah ada")
	ErrEmailTaken          = errors.New("email sudah terdaftar")
	ErrPasswordTooShort    = errors.New("password minimal 8 karakter")
)

/* =========================================================
   ROLE RULES
========================================================= */

// CanAssignRole: hanya super_admin yang boleh membuat/mengubah admin & super_admin.
func CanAssignRole(actorRole, targetRole string) bool {
	if !constants.IsValidRole(targetRole) {
		return false
	}
	if constants.IsAdminRole(targetRole) {
		return actorRole == constants.RoleSuperAdmin
	}
	return constants.IsAdminRole(actorRole)
}

/* =========================================================
   CREATE
========================================================= */

type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Role     string
	IsActive bool
}

// CreateUser dipakai controller admin & CLI.
func CreateUser(db *gorm.DB, in CreateUserInput) (*model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var n int64
	if err := db.Model(&model.UserModel{}).Unscoped().Where("LOWER(email) = ?", email).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &model.UserModel{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Password: hash,
		Role:     in.Role,
		IsActive: in.IsActive,
	}
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	// default:true di tag tidak dipakai GORM saat nilai false eksplisit → set ulang
	if !in.IsActive {
		if err := db.Model(u).Update("is_active", false).Error; err != nil {
			return nil, err
		}
	}
	return u, nil
}

/* =========================================================
   BOOTSTRAP
========================================================= */

func NeedsBootstrap(db *gorm.DB) (bool, error) {
	var n int64
	if err := db.Model(&model.UserModel{}).Where("role = ?", constants.RoleSuperAdmin).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

// kunci advisory untuk bootstrap; request paralel antre di sini
const bootstrapLockKey int64 = 0x6d61647261736131

// BootstrapSuperAdmin membuat super_admin pertama. Gagal jika sudah ada.
func BootstrapSuperAdmin(db *gorm.DB, req dto.BootstrapAdminRequest) (*model.UserModel, error) {
	var created *model.UserModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.AdvisoryXactLock(tx, bootstrapLockKey); err != nil {
			return err
		}
		var existing []model.UserModel
		if err := helper.ForUpdate(tx).
			Where("role = ?", constants.RoleSuperAdmin).
			Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrAlreadyBootstrapped
		}
		u, err := CreateUser(tx, CreateUserInput{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Role:     constants.RoleSuperAdmin,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	return created, err
}

// ResetPassword: dipakai CLI admin; semua refresh token user ikut dicabut.
func ResetPassword(db *gorm.DB, email, password string) (*model.UserModel, error) {
	if len(password) < authHelper.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	var u model.UserModel
	if err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error; err != nil {
		return nil, err
	}
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return nil, err
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&u).Update("password", hash).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM refresh_tokens WHERE user_id = ?", u.ID).Error
	})
	return &u, err
}

/* =========================================================
   SETTINGS
========================================================= */

func GetSettings(db *gorm.DB, userID uuid.UUID) (dto.UserSettings, error) {
	out := dto.DefaultUserSettings()

	var row model.UserSettingsModel
	err := db.Where("user_settings_user_id = ?", userID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if len(row.UserSettingsData) > 0 {
		// key yang belum tersimpan tetap pakai default
		if err := json.Unmarshal(row.UserSettingsData, &out); err != nil {
			return dto.DefaultUserSettings(), nil
		}
	}
	return out, nil
}

func SaveSettings(db *gorm.DB, userID uuid.UUID, s dto.UserSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	row := model.UserSettingsModel{
		UserSettingsUserID: userID,
		UserSettingsData:   datatypes.JSON(raw),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_settings_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_settings_data", "user_settings_updated_at"}),
	}).Create(&row).Error
}
