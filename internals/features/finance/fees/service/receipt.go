package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/fees/model"
)

// ReceiptPrefix: RCP-YYYYMM-
func ReceiptPrefix(t time.Time) string {
	return fmt.Sprintf("RCP-%04d%02d-", t.Year(), int(t.Month()))
}

// NextReceiptNo: nomor kuitansi berikutnya di bulan pembayaran
func NextReceiptNo(db *gorm.DB, now time.Time) (string, error) {
	prefix := ReceiptPrefix(now)
	var nos []string
	if err := db.Model(&model.FeeModel{}).
		Where("fee_receipt_no LIKE ?", prefix+"%").
		Pluck("fee_receipt_no", &nos).Error; err != nil {
		return "", err
	}
	maxSeq := 0
	for _, n := range nos {
		if v, err := strconv.Atoi(strings.TrimPrefix(n, prefix)); err == nil && v > maxSeq {
			maxSeq = v
		}
	}
	return fmt.Sprintf("%s%04d", prefix, maxSeq+1), nil
}
