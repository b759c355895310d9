package citypay

import (
	"testing"

	"github.com/hugochinchilla79/citypay_sdk/models"
	"github.com/stretchr/testify/require"
)

func TestDetectCardBrand(t *testing.T) {
	cases := []struct {
		pan  string
		want string
	}{
		{"400000******0002", BrandVisa},
		{"4111111111111111", BrandVisa},
		{"555555******4444", BrandMastercard},
		{"222100******0009", BrandMastercard},
		{"272099******0001", BrandMastercard},
		{"378282*****0005", BrandAmex},
		{"340000*****0009", BrandAmex},
		{"601111******1117", BrandDiscover},
		{"650000******0000", BrandDiscover},
		{"644000******0000", BrandDiscover},
		{"622126******0000", BrandDiscover},
		{"3530******0000", ""},
		{"n/a", ""},
		{"******1234", ""},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, DetectCardBrand(c.pan), c.pan)
	}
}

func TestCardBrand(t *testing.T) {
	require.Equal(t, BrandVisa, CardBrand(fixtureResponse()))
	require.Equal(t, "", CardBrand(models.DecodePaymentResponse(nil)))
}
