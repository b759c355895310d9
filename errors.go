package citypay

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Validation errors returned by Config.Validate and Client.ApplePay.
var (
	ErrMerchantID = errors.New("citypay: MerchantID must be greater than zero")
	ErrLicenceKey = errors.New("citypay: LicenceKey is required and must be valid UTF-8")
	ErrIdentifier = errors.New("citypay: Identifier must be between 5 and 49 characters")
)

// HTTPError is returned when the gateway responds with a non-2xx HTTP status
// to a call whose body is not a payment response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("citypay http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}
