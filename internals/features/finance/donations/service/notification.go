package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"madrasa_backend/internals/features/finance/donations/model"
	helper "madrasa_backend/internals/helpers"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("gross_amount tidak sama dengan nominal donasi")
)

// Notification: payload HTTP notification Midtrans (field lain diabaikan)
type Notification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}

func sha512Hex(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// Signature = sha512(order_id + status_code + gross_amount + server_key)
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	return sha512Hex(orderID + statusCode + grossAmount + serverKey)
}

func VerifySignature(n Notification, serverKey string) bool {
	if serverKey == "" || n.SignatureKey == "" {
		return false
	}
	want := Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	got := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

/*
MapStatus: transaction_status midtrans → status donasi.
capture+challenge dibiarkan pending sampai ada notifikasi berikutnya.
ok=false untuk status yang tidak mengubah apa pun (refund dll).
*/
func MapStatus(transactionStatus, fraudStatus string) (string, bool) {
	switch strings.ToLower(transactionStatus) {
	case "capture":
		switch strings.ToLower(fraudStatus) {
		case "", "accept":
			return model.DonationStatusPaid, true
		case "challenge":
			return model.DonationStatusPending, true
		default:
			return model.DonationStatusCanceled, true
		}
	case "settlement":
		return model.DonationStatusPaid, true
	case "pending":
		return model.DonationStatusPending, true
	case "expire":
		return model.DonationStatusExpired, true
	case "cancel", "deny", "failure":
		return model.DonationStatusCanceled, true
	}
	return "", false
}

// parseGross: "150000.00" → 150000
func parseGross(s string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("gross_amount tidak valid: %q", s)
	}
	return int64(f + 0.5), nil
}

type ApplyResult struct {
	Donation   *model.DonationModel
	BecamePaid bool
	Ignored    string
}

/*
ApplyNotification memproses notifikasi yang signature-nya sudah diverifikasi.
Hanya donasi pending yang berubah status; paid/expired/canceled final. BecamePaid true hanya di transisi pertama
ke paid, dipakai caller untuk kirim kuitansi sekali.
*/
func ApplyNotification(db *gorm.DB, n Notification, now time.Time) (ApplyResult, error) {
	var res ApplyResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var d model.DonationModel
		if err := helper.ForUpdate(tx).Where("donation_order_id = ?", n.OrderID).First(&d).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res.Ignored = "donation not found"
				return nil
			}
			return err
		}
		res.Donation = &d

		status, ok := MapStatus(n.TransactionStatus, n.FraudStatus)
		if !ok {
			res.Ignored = "status " + n.TransactionStatus + " tidak diproses"
			return nil
		}
		// hanya pending yang boleh berpindah; paid/expired/canceled sudah final
		if d.DonationStatus != model.DonationStatusPending {
			res.Ignored = "already " + d.DonationStatus
			return nil
		}

		if status == model.DonationStatusPaid {
			gross, err := parseGross(n.GrossAmount)
			if err != nil {
				return err
			}
			if gross != d.DonationAmount {
				return ErrAmountMismatch
			}
			t := now
			d.DonationReceivedAt = &t
			res.BecamePaid = true
		}
		d.DonationStatus = status
		if n.TransactionID != "" {
			ref := n.TransactionID
			d.DonationGatewayRef = &ref
		}
		return tx.Save(&d).Error
	})
	return res, err
}
