// Package mockgateway simulates the CityPay Apple Pay endpoint for local
// development and tests. Responses are signed with the merchant licence key
// exactly as the real gateway signs them.
package mockgateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	citypay "github.com/hugochinchilla79/citypay_sdk"
	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/sirupsen/logrus"
)

// Identifier prefixes that select a scripted outcome.
const (
	DeclinePrefix        = "MockAuthDecline"
	DigestMismatchPrefix = "MockDigestMismatch"
)

// Fixed transaction details returned for every payment.
const (
	Amount    = 10000
	Currency  = "GBP"
	MaskedPan = "400000******0002"
	AuthCode  = "M12345"
)

type applePayRequest struct {
	Payment               string `json:"payment"`
	TransactionIdentifier string `json:"transactionIdentifier"`
	Gateway               struct {
		MerchantID int    `json:"merchantId"`
		Identifier string `json:"identifier"`
		Test       bool   `json:"test"`
	} `json:"gateway"`
	Billing struct {
		Title     string `json:"title"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Email     string `json:"email"`
		Postcode  string `json:"postcode"`
	} `json:"billing"`
}

// Gateway answers payment requests for a single merchant.
type Gateway struct {
	merchantID int
	licenceKey string
	logger     logrus.FieldLogger
	transno    int64
}

// New creates a gateway for the merchant. Transaction numbers start after
// firstTransno.
func New(merchantID int, licenceKey string, firstTransno int64, logger logrus.FieldLogger) *Gateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Gateway{
		merchantID: merchantID,
		licenceKey: licenceKey,
		logger:     logger.WithField("component", "mockgateway"),
		transno:    firstTransno,
	}
}

// AppendRoutes mounts the gateway endpoints on r.
func (g *Gateway) AppendRoutes(r chi.Router) {
	r.Post("/applepay/v1", g.applePay)
	r.Post("/paylink3/http-logger", g.httpLogger)
}

// Router returns a chi router serving only the gateway endpoints.
func (g *Gateway) Router() chi.Router {
	r := chi.NewRouter()
	g.AppendRoutes(r)
	return r
}

// Respond builds the signed response the gateway would send for req.
func (g *Gateway) Respond(identifier string, test bool, billing models.BillingContact) models.PaymentResponse {
	mode := "live"
	if test {
		mode = "test"
	}
	resp := models.PaymentResponse{
		Amount:            Amount,
		Currency:          Currency,
		AuthCode:          AuthCode,
		Authorised:        true,
		AVSResponse:       "Y",
		CSCResponse:       "M",
		ErrorCode:         "000",
		ErrorMessage:      "Accepted Transaction",
		ExpiryMonth:       12,
		ExpiryYear:        2030,
		Identifier:        identifier,
		MaskedPan:         MaskedPan,
		MerchantID:        g.merchantID,
		Mode:              mode,
		Result:            models.ResultAccepted,
		Status:            "O",
		Title:             billing.Title,
		FirstName:         billing.FirstName,
		LastName:          billing.LastName,
		Email:             billing.Email,
		Postcode:          billing.Postcode,
		TransactionNumber: int(atomic.AddInt64(&g.transno, 1)),
	}

	key := g.licenceKey
	switch {
	case strings.HasPrefix(identifier, DeclinePrefix):
		resp.AuthCode = ""
		resp.Authorised = false
		resp.ErrorCode = "005"
		resp.ErrorMessage = "Declined"
		resp.Result = models.ResultRejected
	case strings.HasPrefix(identifier, DigestMismatchPrefix):
		key = g.licenceKey + "-tampered"
	}
	return citypay.Sign(resp, key)
}

func (g *Gateway) applePay(w http.ResponseWriter, r *http.Request) {
	var req applePayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.logger.WithError(err).Warn("malformed apple pay request")
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"errorcode":    "F001",
			"errormessage": "Malformed request",
		})
		return
	}

	if req.Gateway.MerchantID != g.merchantID {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"errorcode":    "F002",
			"errormessage": "Unknown merchant",
			"identifier":   req.Gateway.Identifier,
		})
		return
	}

	resp := g.Respond(req.Gateway.Identifier, req.Gateway.Test, models.BillingContact{
		Title:     req.Billing.Title,
		FirstName: req.Billing.FirstName,
		LastName:  req.Billing.LastName,
		Email:     req.Billing.Email,
		Postcode:  req.Billing.Postcode,
	})
	g.logger.WithFields(logrus.Fields{
		"identifier": resp.Identifier,
		"transno":    resp.TransactionNumber,
		"authorised": resp.Authorised,
	}).Info("apple pay request processed")

	writeJSON(w, http.StatusOK, resp)
}

func (g *Gateway) httpLogger(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		http.Error(w, "empty payload", http.StatusBadRequest)
		return
	}
	g.logger.WithField("bytes", len(body)).Info("diagnostic payload received")
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
