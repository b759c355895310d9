package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Result codes carried in PaymentResponse.Result.
const (
	ResultAccepted = 1
	ResultRejected = 2
	ResultUnknown  = 20
)

// Defaults applied by DecodePaymentResponse when a field is absent.
const (
	DefaultErrorCode         = "F007"
	DefaultErrorMessage      = "No valid response from JSON packet"
	DefaultIdentifier        = "unknown"
	DefaultMaskedPan         = "n/a"
	DefaultMode              = "?"
	DefaultStatus            = "?"
	DefaultTransactionNumber = -1
)

// PaymentAPIResponse wraps the reconciled response together with HTTP metadata,
// following the same pattern as the other gateway SDKs.
type PaymentAPIResponse struct {
	// HTTPStatus is the HTTP status code returned by the gateway.
	HTTPStatus int

	// Body is the raw JSON response body.
	Body []byte

	// Data is the response handed to the merchant: either the gateway
	// response as received (trusted) or a locally rejected copy.
	Data PaymentResponse

	// Trusted reports whether the gateway digest verified.
	Trusted bool
}

// PaymentResponse is the gateway's reply to a payment request.
//
// It is a plain value: copies never share state, and nothing in this module
// modifies a response once decoded. The digest is not checked on decode; a
// response is only trusted after citypay.IsValid succeeds for it.
//
// Optional string fields are empty when the gateway did not send them.
type PaymentResponse struct {
	Amount            int    `json:"amount"`
	Currency          string `json:"currency"`
	AuthCode          string `json:"authcode,omitempty"`
	Authorised        bool   `json:"authorised"`
	AVSResponse       string `json:"AVSResponse,omitempty"`
	CSCResponse       string `json:"CSCResponse,omitempty"`
	ErrorCode         string `json:"errorcode"`
	ErrorMessage      string `json:"errormessage"`
	ExpiryMonth       int    `json:"expMonth"`
	ExpiryYear        int    `json:"expYear"`
	Identifier        string `json:"identifier"`
	MaskedPan         string `json:"maskedPan"`
	MerchantID        int    `json:"merchantid"`
	Mode              string `json:"mode"`
	Result            int    `json:"result"`
	Digest            string `json:"sha256"`
	Status            string `json:"status"`
	Title             string `json:"title,omitempty"`
	FirstName         string `json:"firstname,omitempty"`
	LastName          string `json:"lastname,omitempty"`
	Email             string `json:"email,omitempty"`
	Postcode          string `json:"postcode,omitempty"`
	TransactionNumber int    `json:"transno"`
}

// IsLive reports whether the transaction was processed in live mode.
func (r PaymentResponse) IsLive() bool {
	return r.Mode == "live"
}

// ExpiryFace returns the card expiry as MM/YY, or "" when the gateway did not
// return one.
func (r PaymentResponse) ExpiryFace() string {
	if r.ExpiryMonth < 1 || r.ExpiryMonth > 12 {
		return ""
	}
	return fmt.Sprintf("%02d/%02d", r.ExpiryMonth, r.ExpiryYear%100)
}

// LogString is a one-line summary that is safe to log: it contains the masked
// PAN only.
func (r PaymentResponse) LogString() string {
	return fmt.Sprintf("RS:%s,amount=%d,card=%s,%s,authorised=%t,mode=%s",
		r.Identifier, r.Amount, r.MaskedPan, r.ExpiryFace(), r.Authorised, r.Mode)
}

// MajorAmount converts Amount from minor units into the currency's major unit
// (e.g. 10000 GBP -> 100.00).
func (r PaymentResponse) MajorAmount() decimal.Decimal {
	return decimal.New(int64(r.Amount), -CurrencyExponent(r.Currency))
}

// currencies whose minor unit is not 1/100 of the major unit (ISO 4217).
var currencyExponents = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// CurrencyExponent returns the number of minor-unit digits for an ISO 4217
// currency code. Unknown codes are assumed to use two.
func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}
