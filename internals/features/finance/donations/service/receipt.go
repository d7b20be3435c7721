package service

import (
	"fmt"
	"strings"

	"madrasa_backend/internals/features/finance/donations/model"
	"madrasa_backend/internals/helpers/dbtime"
	"madrasa_backend/internals/helpers/email"
)

// ReceiptMessage: kuitansi donasi; nil kalau donor tidak punya email
func ReceiptMessage(d model.DonationModel, institution, currency string) *email.Message {
	if d.DonationDonorEmail == nil || strings.TrimSpace(*d.DonationDonorEmail) == "" {
		return nil
	}
	when := ""
	if d.DonationReceivedAt != nil {
		when = d.DonationReceivedAt.In(dbtime.Location()).Format("02 Jan 2006 15:04")
	}
	text := fmt.Sprintf(
		"Assalamu'alaikum %s,\n\nJazakallahu khairan atas donasi Anda kepada %s.\n\n"+
			"No. order : %s\nTujuan    : %s\nNominal   : %s %d\nDiterima  : %s\n\n"+
			"Semoga Allah menerima amal Anda.\n",
		d.DonationDonorName, institution, d.DonationOrderID, d.DonationPurpose, currency, d.DonationAmount, when,
	)
	return &email.Message{
		ToName:  d.DonationDonorName,
		ToEmail: strings.TrimSpace(*d.DonationDonorEmail),
		Subject: "Kuitansi donasi " + d.DonationOrderID,
		Text:    text,
	}
}
