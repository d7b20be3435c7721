package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/finance/salaries/model"
)

func TestGenerateSheet(t *testing.T) {
	db := testdb.New(t, &model.SalaryModel{})
	// kolom teachers yang dibaca GenerateSheet saja
	require.NoError(t, db.Exec(`CREATE TABLE teachers (
		teacher_id TEXT PRIMARY KEY,
		teacher_monthly_salary INTEGER NOT NULL,
		teacher_status TEXT NOT NULL
	)`).Error)

	active, unpaid, resigned := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, db.Exec(`INSERT INTO teachers VALUES (?, 18000, 'active'), (?, 0, 'active'), (?, 15000, 'resigned')`,
		active, unpaid, resigned).Error)

	res, err := GenerateSheet(db, "2026-05")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 0, res.Skipped)

	var s model.SalaryModel
	require.NoError(t, db.Where("salary_teacher_id = ?", active).First(&s).Error)
	assert.Equal(t, int64(18000), s.SalaryBasicAmount)
	assert.Equal(t, int64(18000), s.SalaryNetAmount)
	assert.Equal(t, model.SalaryStatusPending, s.SalaryStatus)

	res, err = GenerateSheet(db, "2026-05")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Skipped)

	_, err = GenerateSheet(db, "bad")
	assert.Error(t, err)
}
