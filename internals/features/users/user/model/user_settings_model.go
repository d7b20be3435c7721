package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Preferensi per user (notifikasi, dark mode), disimpan sebagai JSON.
type UserSettingsModel struct {
	UserSettingsUserID    uuid.UUID      `gorm:"column:user_settings_user_id;type:uuid;primaryKey" json:"user_id"`
	UserSettingsData      datatypes.JSON `gorm:"column:user_settings_data" json:"settings"`
	UserSettingsCreatedAt time.Time      `gorm:"column:user_settings_created_at;autoCreateTime" json:"created_at"`
	UserSettingsUpdatedAt time.Time      `gorm:"column:user_settings_updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserSettingsModel) TableName() string {
	return "user_settings"
}
