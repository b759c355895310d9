package citypay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/stretchr/testify/require"
)

const (
	testLicenceKey = "A4123412341234"
	fixtureDigest  = "v0n8lKGaIvvyBOeJjPjAy6GgGvMd6/cRylt44Zd6MlM="
)

func fixtureResponse() models.PaymentResponse {
	return models.PaymentResponse{
		Amount:            10000,
		Currency:          "GBP",
		AuthCode:          "M12345",
		Authorised:        true,
		ErrorCode:         "000",
		ErrorMessage:      "Accepted Transaction",
		ExpiryMonth:       12,
		ExpiryYear:        2030,
		Identifier:        "MockAuthSuccess",
		MaskedPan:         "400000******0002",
		MerchantID:        105,
		Mode:              "test",
		Result:            models.ResultAccepted,
		Digest:            fixtureDigest,
		Status:            "O",
		FirstName:         "Joe",
		LastName:          "Bloggs",
		TransactionNumber: 252,
	}
}

func TestCanonicalString(t *testing.T) {
	require.Equal(t, "M1234510000000105252MockAuthSuccessA4123412341234",
		CanonicalString(fixtureResponse(), testLicenceKey))

	// absent authcode contributes nothing; negative numbers keep their sign
	resp := models.DecodePaymentResponse([]byte(`{"amount":5500,"identifier":"Example1"}`))
	require.Equal(t, "5500F0070-1Example1key", CanonicalString(resp, "key"))
}

func TestDigest_Deterministic(t *testing.T) {
	canonical := CanonicalString(fixtureResponse(), testLicenceKey)
	first := Digest(canonical)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Digest(canonical))
	}
	require.Equal(t, fixtureDigest, first)
	require.Len(t, first, 44)
}

func TestIsValid_Fixture(t *testing.T) {
	require.True(t, IsValid(fixtureResponse(), testLicenceKey))
}

func TestIsValid_DecodedFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("models", "testdata", "sha256-example.json"))
	require.NoError(t, err)

	resp := models.DecodePaymentResponse(data)
	require.True(t, IsValid(resp, "A4123412341234"))
	require.False(t, IsValid(resp, "A4123412341235"))
}

func TestIsValid_WrongSecret(t *testing.T) {
	require.False(t, IsValid(fixtureResponse(), "A4123412341235"))
	require.False(t, IsValid(fixtureResponse(), ""))
}

func TestIsValid_TamperedField(t *testing.T) {
	cases := map[string]func(*models.PaymentResponse){
		"amount":     func(r *models.PaymentResponse) { r.Amount = 1 },
		"authcode":   func(r *models.PaymentResponse) { r.AuthCode = "" },
		"errorcode":  func(r *models.PaymentResponse) { r.ErrorCode = "001" },
		"merchantid": func(r *models.PaymentResponse) { r.MerchantID = 106 },
		"transno":    func(r *models.PaymentResponse) { r.TransactionNumber = 253 },
		"identifier": func(r *models.PaymentResponse) { r.Identifier = "MockAuthSuccesS" },
		"digest case": func(r *models.PaymentResponse) {
			r.Digest = "V0n8lKGaIvvyBOeJjPjAy6GgGvMd6/cRylt44Zd6MlM="
		},
		"digest padding": func(r *models.PaymentResponse) {
			r.Digest = "v0n8lKGaIvvyBOeJjPjAy6GgGvMd6/cRylt44Zd6MlM"
		},
	}
	for name, tamper := range cases {
		t.Run(name, func(t *testing.T) {
			resp := fixtureResponse()
			tamper(&resp)
			require.False(t, IsValid(resp, testLicenceKey))
		})
	}
}

func TestIsValid_FieldsOutsideDigestAreNotCovered(t *testing.T) {
	resp := fixtureResponse()
	resp.Currency = "EUR"
	resp.MaskedPan = "555555******4444"
	require.True(t, IsValid(resp, testLicenceKey))
}

func TestIsValid_InvalidUTF8FailsClosed(t *testing.T) {
	resp := fixtureResponse()
	resp.Identifier = "Mock\xffAuth"
	resp = Sign(resp, testLicenceKey)
	require.False(t, IsValid(resp, testLicenceKey))
}

func TestSign(t *testing.T) {
	resp := fixtureResponse()
	resp.Digest = ""

	signed := Sign(resp, testLicenceKey)
	require.Equal(t, fixtureDigest, signed.Digest)
	require.Empty(t, resp.Digest)
}
