package citypay

import "github.com/hugochinchilla79/citypay_sdk/models"

// Protocol constants for locally rejected responses.
const (
	RejectionErrorCode   = "099"
	DigestMismatchReason = "Digest mismatch"
)

// Verdict is the outcome of checking a gateway response.
type Verdict int

const (
	// Trusted means the gateway digest verified and the response is used as received.
	Trusted Verdict = iota + 1
	// Rejected means the digest did not verify and the response was replaced
	// by a local rejection.
	Rejected
)

func (v Verdict) String() string {
	switch v {
	case Trusted:
		return "trusted"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Reject returns a declined copy of resp with errorcode 099, the given reason
// and result 2. The digest is recomputed with licenceKey, so the rejection
// itself verifies with IsValid. resp is not modified.
//
// The exception is a response whose identifier or auth code is not valid
// UTF-8: IsValid fails closed on those, so the rejection will not verify
// either. Responses decoded from JSON and keys accepted by Config.Validate
// never hit this.
func Reject(resp models.PaymentResponse, licenceKey, reason string) models.PaymentResponse {
	rejected := resp
	rejected.Authorised = false
	rejected.ErrorCode = RejectionErrorCode
	rejected.ErrorMessage = reason
	rejected.Result = models.ResultRejected
	return Sign(rejected, licenceKey)
}

// Reconcile verifies resp against licenceKey. A response that verifies is
// returned unchanged; otherwise a rejection with DigestMismatchReason is
// returned in its place.
func Reconcile(resp models.PaymentResponse, licenceKey string) (models.PaymentResponse, Verdict) {
	if IsValid(resp, licenceKey) {
		return resp, Trusted
	}
	return Reject(resp, licenceKey, DigestMismatchReason), Rejected
}
