package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/finance/donations/model"
)

func signed(n Notification, key string) Notification {
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, key)
	return n
}

func TestVerifySignature(t *testing.T) {
	n := signed(Notification{OrderID: "DON-1", StatusCode: "200", GrossAmount: "50000.00"}, "server-key")
	assert.True(t, VerifySignature(n, "server-key"))
	assert.False(t, VerifySignature(n, "other-key"))
	assert.False(t, VerifySignature(n, ""))

	n.GrossAmount = "1.00"
	assert.False(t, VerifySignature(n, "server-key"), "payload diubah")

	assert.False(t, VerifySignature(Notification{OrderID: "DON-1"}, "server-key"))
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		ts, fraud, want string
		ok              bool
	}{
		{"capture", "accept", model.DonationStatusPaid, true},
		{"capture", "challenge", model.DonationStatusPending, true},
		{"settlement", "", model.DonationStatusPaid, true},
		{"expire", "", model.DonationStatusExpired, true},
		{"cancel", "", model.DonationStatusCanceled, true},
		{"deny", "", model.DonationStatusCanceled, true},
		{"refund", "", "", false},
	}
	for _, tc := range cases {
		got, ok := MapStatus(tc.ts, tc.fraud)
		assert.Equal(t, tc.ok, ok, tc.ts)
		assert.Equal(t, tc.want, got, tc.ts)
	}
}

func TestApplyNotification(t *testing.T) {
	db := testdb.New(t, &model.DonationModel{})
	email := "donor@mail.test"
	d := model.DonationModel{
		DonationDonorName:  "Hamba Allah",
		DonationDonorEmail: &email,
		DonationAmount:     50000,
		DonationPurpose:    model.PurposeLillah,
		DonationMethod:     model.MethodOnline,
		DonationOrderID:    "DON-20260101-ABCDEF12",
	}
	require.NoError(t, db.Create(&d).Error)
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	res, err := ApplyNotification(db, Notification{OrderID: d.DonationOrderID, TransactionStatus: "settlement", GrossAmount: "49000.00"}, now)
	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.False(t, res.BecamePaid)

	res, err = ApplyNotification(db, Notification{OrderID: d.DonationOrderID, TransactionStatus: "settlement", GrossAmount: "50000.00", TransactionID: "tx-1"}, now)
	require.NoError(t, err)
	assert.True(t, res.BecamePaid)
	assert.Equal(t, model.DonationStatusPaid, res.Donation.DonationStatus)

	// notifikasi ulang / expire setelah paid tidak mengubah apa pun
	res, err = ApplyNotification(db, Notification{OrderID: d.DonationOrderID, TransactionStatus: "expire"}, now)
	require.NoError(t, err)
	assert.False(t, res.BecamePaid)
	assert.Equal(t, "already paid", res.Ignored)

	var stored model.DonationModel
	require.NoError(t, db.First(&stored, "donation_id = ?", d.DonationID).Error)
	assert.Equal(t, model.DonationStatusPaid, stored.DonationStatus)
	require.NotNil(t, stored.DonationGatewayRef)
	assert.Equal(t, "tx-1", *stored.DonationGatewayRef)

	res, err = ApplyNotification(db, Notification{OrderID: "DON-unknown", TransactionStatus: "settlement"}, now)
	require.NoError(t, err)
	assert.Equal(t, "donation not found", res.Ignored)
}

func TestApplyNotificationTerminalStatusIsFinal(t *testing.T) {
	db := testdb.New(t, &model.DonationModel{})
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	newDonation := func(orderID, status string) model.DonationModel {
		d := model.DonationModel{
			DonationDonorName: "Hamba Allah",
			DonationAmount:    50000,
			DonationPurpose:   model.PurposeLillah,
			DonationMethod:    model.MethodOnline,
			DonationOrderID:   orderID,
			DonationStatus:    status,
		}
		require.NoError(t, db.Create(&d).Error)
		return d
	}

	tests := []struct {
		name   string
		status string
		notif  string
		want   string
		ignore string
	}{
		{"pending ulang tidak membuka expired", model.DonationStatusExpired, "pending", model.DonationStatusExpired, "already expired"},
		{"pending ulang tidak membuka canceled", model.DonationStatusCanceled, "pending", model.DonationStatusCanceled, "already canceled"},
		{"capture challenge setelah cancel", model.DonationStatusCanceled, "capture", model.DonationStatusCanceled, "already canceled"},
		{"expire setelah cancel", model.DonationStatusCanceled, "expire", model.DonationStatusCanceled, "already canceled"},
		{"pending ke expired", model.DonationStatusPending, "expire", model.DonationStatusExpired, ""},
		{"pending ke canceled", model.DonationStatusPending, "deny", model.DonationStatusCanceled, ""},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDonation(fmt.Sprintf("DON-20260101-%08d", i), tt.status)
			n := Notification{OrderID: d.DonationOrderID, TransactionStatus: tt.notif, GrossAmount: "50000.00"}
			if tt.notif == "capture" {
				n.FraudStatus = "challenge"
			}

			res, err := ApplyNotification(db, n, now)
			require.NoError(t, err)
			assert.False(t, res.BecamePaid)
			assert.Equal(t, tt.ignore, res.Ignored)

			var stored model.DonationModel
			require.NoError(t, db.First(&stored, "donation_id = ?", d.DonationID).Error)
			assert.Equal(t, tt.want, stored.DonationStatus)
		})
	}
}

func TestReceiptMessage(t *testing.T) {
	d := model.DonationModel{DonationDonorName: "Ali", DonationAmount: 1000, DonationOrderID: "DON-X", DonationPurpose: "zakat"}
	assert.Nil(t, ReceiptMessage(d, "Madrasa", "BDT"))

	addr := " ali@mail.test "
	d.DonationDonorEmail = &addr
	msg := ReceiptMessage(d, "Madrasa", "BDT")
	require.NotNil(t, msg)
	assert.Equal(t, "ali@mail.test", msg.ToEmail)
	assert.Contains(t, msg.Text, "BDT 1000")
	assert.Contains(t, msg.Subject, "DON-X")
}
