package citypay

import "github.com/hugochinchilla79/citypay_sdk/models"

// Card brand names returned by DetectCardBrand.
const (
	BrandVisa       = "visa"
	BrandMastercard = "mastercard"
	BrandAmex       = "amex"
	BrandDiscover   = "discover"
)

// DetectCardBrand returns the card brand for a full or masked card number
// (e.g. "400000******0002") from its leading BIN digits.
// Returns "" when the brand is unknown or no digits are visible.
func DetectCardBrand(pan string) string {
	bin := visiblePrefix(pan)
	if bin == "" {
		return ""
	}

	// Visa: starts with 4
	if bin[0] == '4' {
		return BrandVisa
	}

	if len(bin) >= 2 {
		p2 := bin[:2]
		// Amex: 34 or 37
		if p2 == "34" || p2 == "37" {
			return BrandAmex
		}
		// Mastercard: 51-55
		if p2 >= "51" && p2 <= "55" {
			return BrandMastercard
		}
		// Discover: 65
		if p2 == "65" {
			return BrandDiscover
		}
	}

	if len(bin) >= 3 {
		p3 := bin[:3]
		if p3 >= "644" && p3 <= "649" {
			return BrandDiscover
		}
	}

	if len(bin) >= 4 {
		p4 := bin[:4]
		// Mastercard 2-series
		if p4 >= "2221" && p4 <= "2720" {
			return BrandMastercard
		}
		if p4 == "6011" {
			return BrandDiscover
		}
	}

	if len(bin) >= 6 {
		p6 := bin[:6]
		if p6 >= "622126" && p6 <= "622925" {
			return BrandDiscover
		}
	}

	return ""
}

// CardBrand returns the brand of the card used for resp.
func CardBrand(resp models.PaymentResponse) string {
	return DetectCardBrand(resp.MaskedPan)
}

// visiblePrefix returns the leading run of digits, stopping at the mask.
func visiblePrefix(pan string) string {
	for i := 0; i < len(pan); i++ {
		if pan[i] < '0' || pan[i] > '9' {
			return pan[:i]
		}
	}
	return pan
}
