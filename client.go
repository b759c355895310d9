package citypay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AuthorizationStatus is the binary outcome reported to the payment sheet.
type AuthorizationStatus int

const (
	StatusSuccess AuthorizationStatus = iota
	StatusFailure
)

func (s AuthorizationStatus) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// Handlers receive the outcome of a payment. Both are optional.
type Handlers struct {
	// Authorization completes the payment sheet. It is called exactly once
	// per ApplePay call.
	Authorization func(AuthorizationStatus)

	// Response receives the response for the merchant's own records. It is
	// called whenever the gateway answered, after Authorization.
	Response func(models.PaymentResponse)
}

func (h Handlers) authorize(status AuthorizationStatus) {
	if h.Authorization != nil {
		h.Authorization(status)
	}
}

func (h Handlers) respond(resp models.PaymentResponse) {
	if h.Response != nil {
		h.Response(resp)
	}
}

// Client submits payments to the CityPay gateway and verifies its replies.
// It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     logrus.FieldLogger
	metrics    *Metrics
	payURL     string
	loggerURL  string
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger replaces the default logrus logger.
func WithLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records payment outcomes in m.
func WithMetrics(m *Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new gateway client.
// It validates the configuration and prepares the HTTP client and logger.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     newLogger(cfg.LogLevel),
		payURL:     cfg.DefaultBaseURL(),
		loggerURL:  cfg.DefaultLoggerURL(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithField("merchant_id", cfg.MerchantID)

	return c, nil
}

// ApplePay submits an Apple Pay token to the gateway.
//
// Whatever the HTTP status, a gateway reply is decoded leniently and its digest
// verified against the licence key; a reply that does not verify is replaced by
// a local rejection. h.Authorization receives StatusSuccess only for a verified,
// authorised response. An error is returned only when no reply was read, in
// which case h.Authorization receives StatusFailure and h.Response is not
// called.
func (c *Client) ApplePay(ctx context.Context, payment models.ApplePayment, h Handlers) (models.PaymentAPIResponse, error) {
	log := c.logger.WithField("identifier", payment.Identifier)

	if err := validatePayment(payment); err != nil {
		h.authorize(StatusFailure)
		return models.PaymentAPIResponse{}, err
	}

	payload, err := json.Marshal(c.buildApplePayRequest(payment))
	if err != nil {
		h.authorize(StatusFailure)
		return models.PaymentAPIResponse{}, errors.Wrap(err, "citypay: marshal apple pay request")
	}

	log.Debug("apple pay payment started")
	status, respBody, err := c.post(ctx, c.payURL, payload)
	if err != nil {
		c.metrics.observeTransportError()
		log.WithError(err).Error("apple pay request failed")
		h.authorize(StatusFailure)
		return models.PaymentAPIResponse{}, err
	}

	result, verdict := Reconcile(models.DecodePaymentResponse(respBody), c.cfg.LicenceKey)
	c.metrics.observeResponse(result, verdict)

	entry := log.WithFields(responseFields(result, verdict)).WithField("http_status", status)
	outcome := StatusFailure
	switch {
	case verdict == Rejected:
		entry.Warnf("payment rejected (%s): %s", result.ErrorMessage, result.LogString())
	case result.Authorised:
		outcome = StatusSuccess
		entry.Infof("payment authorised: %s", result.LogString())
	default:
		entry.Infof("payment declined: %s", result.LogString())
	}

	h.authorize(outcome)
	h.respond(result)

	return models.PaymentAPIResponse{
		HTTPStatus: status,
		Body:       respBody,
		Data:       result,
		Trusted:    verdict == Trusted,
	}, nil
}

// Log posts a diagnostic payload to the gateway's HTTP logger.
func (c *Client) Log(ctx context.Context, payload []byte) error {
	status, body, err := c.post(ctx, c.loggerURL, payload)
	if err != nil {
		return err
	}
	if status/100 != 2 {
		return &HTTPError{
			StatusCode: status,
			Status:     http.StatusText(status),
			Body:       body,
		}
	}
	c.logger.WithField("http_status", status).Debug("diagnostic payload logged")
	return nil
}

func (c *Client) post(ctx context.Context, url string, payload []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, errors.Wrap(err, "citypay: create HTTP request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, errors.Wrap(err, "citypay: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "citypay: read response (HTTP %d)", resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}
