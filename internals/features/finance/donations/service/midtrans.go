package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"madrasa_backend/internals/features/finance/donations/model"
	gatewayService "madrasa_backend/internals/features/finance/gateways/service"
)

// NewOrderID: DON-YYYYMMDD-<8 hex>
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("DON-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

// SnapClient dibuat per request karena kredensial bisa diganti admin kapan saja
func NewSnapClient(cfg gatewayService.MidtransConfig) *snap.Client {
	var c snap.Client
	if cfg.Production {
		c.New(cfg.ServerKey, midtrans.Production)
	} else {
		c.New(cfg.ServerKey, midtrans.Sandbox)
	}
	return &c
}

// BuildSnapRequest: satu item donasi sesuai purpose
func BuildSnapRequest(d model.DonationModel) *snap.Request {
	cust := &midtrans.CustomerDetails{FName: d.DonationDonorName}
	if d.DonationDonorEmail != nil {
		cust.Email = *d.DonationDonorEmail
	}
	if d.DonationDonorPhone != nil {
		cust.Phone = *d.DonationDonorPhone
	}
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: d.DonationAmount,
		},
		CustomerDetail: cust,
		Items: &[]midtrans.ItemDetails{{
			ID:       d.DonationOrderID,
			Name:     "Donasi " + d.DonationPurpose,
			Price:    d.DonationAmount,
			Qty:      1,
			Category: "donation",
		}},
	}
}

// CreateSnap: token + redirect url
func CreateSnap(c *snap.Client, d model.DonationModel) (string, string, error) {
	if d.DonationAmount <= 0 {
		return "", "", errors.New("invalid donation amount")
	}
	resp, err := c.CreateTransaction(BuildSnapRequest(d))
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
