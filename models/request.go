package models

// Policy overrides the merchant account's default AVS handling for a single
// transaction.
type Policy int

const (
	// PolicyDefault leaves the account configuration in place.
	PolicyDefault Policy = iota
	// PolicyEnforce rejects the transaction when the AVS check fails.
	PolicyEnforce
	// PolicyBypass skips the AVS check.
	PolicyBypass
)

// ApplePayment is the input for an Apple Pay authorisation.
type ApplePayment struct {
	// Identifier correlates the transaction with the merchant's own records.
	// It must be between 5 and 49 characters.
	Identifier string

	// PaymentData is the encrypted payment token data produced by the
	// device (PKPaymentToken.paymentData). It is sent base64 encoded.
	PaymentData []byte

	// TransactionIdentifier is the token's transaction identifier.
	TransactionIdentifier string

	// Billing contains the cardholder billing contact.
	Billing BillingContact

	AVSAddressPolicy  Policy
	AVSPostcodePolicy Policy
}

// BillingContact contains cardholder billing and contact information.
// Every field is optional.
type BillingContact struct {
	Title     string
	FirstName string
	LastName  string
	Email     string
	Street    string
	City      string
	Area      string
	Postcode  string
	// Country is the ISO 3166 country code.
	Country string
}
