package citypay

import (
	"encoding/base64"
	"runtime"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hugochinchilla79/citypay_sdk/models"
)

// Version is the SDK version reported to the gateway.
const Version = "1.2.0"

const (
	minIdentifierLen = 5
	maxIdentifierLen = 49
)

// ============================================
// Apple Pay request structures (internal marshaling)
// ============================================

type applePayRequest struct {
	Payment               string         `json:"payment"`
	TransactionIdentifier string         `json:"transactionIdentifier"`
	Gateway               gatewayDetails `json:"gateway"`
	Billing               billingDetails `json:"billing"`
	Options               *policyOptions `json:"options,omitempty"`
}

type gatewayDetails struct {
	MerchantID    int    `json:"merchantId"`
	Identifier    string `json:"identifier"`
	Test          bool   `json:"test"`
	SDKVersion    string `json:"sdkVersion"`
	DeviceVersion string `json:"deviceVersion"`
}

type billingDetails struct {
	Title     string `json:"title"`
	LastName  string `json:"lastname"`
	FirstName string `json:"firstname"`
	Email     string `json:"email"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	Area      string `json:"area"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

type policyOptions struct {
	AVSAddressPolicy  string `json:"avsAddressPolicy"`
	AVSPostcodePolicy string `json:"avsPostcodePolicy"`
}

// NewIdentifier returns a random transaction identifier suitable for
// ApplePayment.Identifier.
func NewIdentifier() string {
	return uuid.New().String()
}

func validatePayment(payment models.ApplePayment) error {
	n := utf8.RuneCountInString(payment.Identifier)
	if n < minIdentifierLen || n > maxIdentifierLen {
		return ErrIdentifier
	}
	return nil
}

// buildApplePayRequest transforms the user-facing payment into the gateway
// JSON structures. The licence key is deliberately absent.
func (c *Client) buildApplePayRequest(payment models.ApplePayment) applePayRequest {
	req := applePayRequest{
		Payment:               base64.StdEncoding.EncodeToString(payment.PaymentData),
		TransactionIdentifier: payment.TransactionIdentifier,
		Gateway: gatewayDetails{
			MerchantID:    c.cfg.MerchantID,
			Identifier:    payment.Identifier,
			Test:          c.cfg.Test,
			SDKVersion:    Version,
			DeviceVersion: runtime.GOOS + "/" + runtime.GOARCH + " " + runtime.Version(),
		},
		Billing: billingDetails{
			Title:     payment.Billing.Title,
			LastName:  payment.Billing.LastName,
			FirstName: payment.Billing.FirstName,
			Email:     payment.Billing.Email,
			Address1:  payment.Billing.Street,
			Address2:  payment.Billing.City,
			Area:      payment.Billing.Area,
			Postcode:  payment.Billing.Postcode,
			Country:   payment.Billing.Country,
		},
	}

	if payment.AVSAddressPolicy != models.PolicyDefault || payment.AVSPostcodePolicy != models.PolicyDefault {
		req.Options = &policyOptions{
			AVSAddressPolicy:  strconv.Itoa(int(payment.AVSAddressPolicy)),
			AVSPostcodePolicy: strconv.Itoa(int(payment.AVSPostcodePolicy)),
		}
	}

	return req
}
