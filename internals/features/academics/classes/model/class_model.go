package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel `classes`
type ClassModel struct {
	ClassID         uuid.UUID  `json:"class_id" gorm:"column:class_id;type:uuid;primaryKey"`
	ClassName       string     `json:"class_name" gorm:"column:class_name;type:varchar(120);not null;uniqueIndex:uq_classes_name"`
	ClassNameArabic *string    `json:"class_name_arabic,omitempty" gorm:"column:class_name_arabic;type:varchar(120)"`
	ClassSection    *string    `json:"class_section,omitempty" gorm:"column:class_section;type:varchar(40)"`
	ClassLevel      int        `json:"class_level" gorm:"column:class_level;not null"`
	ClassCapacity   *int       `json:"class_capacity,omitempty" gorm:"column:class_capacity"`
	ClassTeacherID  *uuid.UUID `json:"class_teacher_id,omitempty" gorm:"column:class_teacher_id;type:uuid;index"` // FK -> teachers(teacher_id)

	// tarif SPP per bulan (mata uang institusi, satuan utuh)
	ClassMonthlyFee  int64   `json:"class_monthly_fee" gorm:"column:class_monthly_fee;not null"`
	ClassDescription *string `json:"class_description,omitempty" gorm:"column:class_description;type:text"`
	ClassIsActive    bool    `json:"class_is_active" gorm:"column:class_is_active;not null;index"`

	ClassCreatedAt time.Time `json:"class_created_at" gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time `json:"class_updated_at" gorm:"column:class_updated_at;autoUpdateTime"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
