package citypay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hugochinchilla79/citypay_sdk/models"
)

// CanonicalString builds the digest input for a response:
//
//	authcode + amount + errorcode + merchantid + transno + identifier + licenceKey
//
// Integers are written in decimal. The order is fixed by the gateway.
func CanonicalString(resp models.PaymentResponse, licenceKey string) string {
	var b strings.Builder
	b.WriteString(resp.AuthCode)
	b.WriteString(strconv.Itoa(resp.Amount))
	b.WriteString(resp.ErrorCode)
	b.WriteString(strconv.Itoa(resp.MerchantID))
	b.WriteString(strconv.Itoa(resp.TransactionNumber))
	b.WriteString(resp.Identifier)
	b.WriteString(licenceKey)
	return b.String()
}

// Digest returns the base64 (standard alphabet, unwrapped) SHA-256 of the
// canonical string.
func Digest(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// IsValid reports whether the response digest matches the one computed with
// licenceKey. Comparison is exact. A canonical string that is not valid UTF-8
// never verifies.
func IsValid(resp models.PaymentResponse, licenceKey string) bool {
	canonical := CanonicalString(resp, licenceKey)
	if !utf8.ValidString(canonical) {
		return false
	}
	return hmac.Equal([]byte(Digest(canonical)), []byte(resp.Digest))
}

// Sign returns a copy of resp carrying the digest computed with licenceKey.
func Sign(resp models.PaymentResponse, licenceKey string) models.PaymentResponse {
	resp.Digest = Digest(CanonicalString(resp, licenceKey))
	return resp
}
