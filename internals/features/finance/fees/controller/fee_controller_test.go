package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	"madrasa_backend/internals/features/finance/fees/model"
	"madrasa_backend/internals/features/finance/fees/service"
	"madrasa_backend/internals/helpers/dbtime"
)

func setupPay(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testdb.New(t, &model.FeeModel{}, &studentModel.StudentModel{}, &classModel.ClassModel{})
	app := fiber.New()
	app.Post("/fees/:id/pay", NewFeeController(db).Pay)
	return db, app
}

func stubReceiptNo(t *testing.T, fn func(*gorm.DB, time.Time) (string, error)) {
	t.Helper()
	orig := nextReceiptNo
	nextReceiptNo = fn
	t.Cleanup(func() { nextReceiptNo = orig })
}

func createFee(t *testing.T, db *gorm.DB, receiptNo *string) model.FeeModel {
	t.Helper()
	m := model.FeeModel{FeeStudentID: uuid.New(), FeeType: model.FeeTypeOther, FeeAmount: 50000}
	if receiptNo != nil {
		m.FeePaidAmount = m.FeeAmount
		m.FeeStatus = model.FeeStatusPaid
		m.FeeReceiptNo = receiptNo
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func pay(t *testing.T, app *fiber.App, id uuid.UUID) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/fees/"+id.String()+"/pay", strings.NewReader(`{"amount":50000,"method":"cash"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPayRetriesOnReceiptCollision(t *testing.T) {
	db, app := setupPay(t)
	taken := service.ReceiptPrefix(dbtime.Now()) + "0001"
	createFee(t, db, &taken)
	fee := createFee(t, db, nil)

	// panggilan pertama meniru request paralel yang sudah memakai nomor yang sama
	calls := 0
	stubReceiptNo(t, func(tx *gorm.DB, now time.Time) (string, error) {
		calls++
		if calls == 1 {
			return taken, nil
		}
		return service.NextReceiptNo(tx, now)
	})

	assert.Equal(t, fiber.StatusOK, pay(t, app, fee.FeeID))
	assert.Equal(t, 2, calls)

	var got model.FeeModel
	require.NoError(t, db.First(&got, "fee_id = ?", fee.FeeID).Error)
	require.NotNil(t, got.FeeReceiptNo)
	assert.Equal(t, service.ReceiptPrefix(dbtime.Now())+"0002", *got.FeeReceiptNo)
	assert.Equal(t, model.FeeStatusPaid, got.FeeStatus)
}

func TestPayCollisionExhaustedIsConflict(t *testing.T) {
	db, app := setupPay(t)
	taken := service.ReceiptPrefix(dbtime.Now()) + "0001"
	createFee(t, db, &taken)
	fee := createFee(t, db, nil)

	calls := 0
	stubReceiptNo(t, func(*gorm.DB, time.Time) (string, error) {
		calls++
		return taken, nil
	})

	assert.Equal(t, fiber.StatusConflict, pay(t, app, fee.FeeID))
	assert.Equal(t, payAttempts, calls)

	// transaksi di-rollback: tagihan tetap belum dibayar
	var got model.FeeModel
	require.NoError(t, db.First(&got, "fee_id = ?", fee.FeeID).Error)
	assert.Nil(t, got.FeeReceiptNo)
	assert.Equal(t, int64(0), got.FeePaidAmount)
}
