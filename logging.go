package citypay

import (
	"os"

	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/sirupsen/logrus"
)

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// responseFields are the loggable parts of a response. Cardholder details
// other than the masked PAN stay out of the logs.
func responseFields(resp models.PaymentResponse, verdict Verdict) logrus.Fields {
	return logrus.Fields{
		"identifier": resp.Identifier,
		"amount":     resp.Amount,
		"currency":   resp.Currency,
		"card":       resp.MaskedPan,
		"brand":      CardBrand(resp),
		"expiry":     resp.ExpiryFace(),
		"authorised": resp.Authorised,
		"mode":       resp.Mode,
		"errorcode":  resp.ErrorCode,
		"transno":    resp.TransactionNumber,
		"verdict":    verdict.String(),
	}
}
