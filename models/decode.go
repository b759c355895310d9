package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// DecodePolicy names how gateway replies are decoded.
type DecodePolicy int

// DecodeLenient is the only supported policy: every field has a default and
// decoding never fails. Anything suspicious is caught by digest verification,
// not by the parser.
const DecodeLenient DecodePolicy = iota

// DecodePaymentResponse decodes a gateway reply using DecodeLenient.
//
// Malformed JSON, a top-level value that is not an object, missing keys and
// wrong-typed values all produce the documented defaults instead of an error.
func DecodePaymentResponse(data []byte) PaymentResponse {
	return DecodeLenient.Decode(data)
}

// Decode decodes data according to the policy.
func (p DecodePolicy) Decode(data []byte) PaymentResponse {
	obj := parseObject(data)

	return PaymentResponse{
		Amount:            obj.intOr("amount", 0),
		Currency:          obj.stringValue("currency"),
		AuthCode:          obj.stringOr("authcode", ""),
		Authorised:        obj.boolOr("authorised", false),
		AVSResponse:       obj.stringOr("AVSResponse", ""),
		CSCResponse:       obj.stringOr("CSCResponse", ""),
		ErrorCode:         obj.stringOr("errorcode", DefaultErrorCode),
		ErrorMessage:      obj.stringOr("errormessage", DefaultErrorMessage),
		ExpiryMonth:       obj.intOr("expMonth", 0),
		ExpiryYear:        obj.intOr("expYear", 0),
		Identifier:        obj.stringOr("identifier", DefaultIdentifier),
		MaskedPan:         obj.stringOr("maskedPan", DefaultMaskedPan),
		MerchantID:        obj.intOr("merchantid", 0),
		Mode:              obj.stringOr("mode", DefaultMode),
		Result:            obj.intOr("result", ResultUnknown),
		Digest:            obj.stringOr("sha256", ""),
		Status:            obj.stringOr("status", DefaultStatus),
		Title:             obj.stringOr("title", ""),
		FirstName:         obj.stringOr("firstname", ""),
		LastName:          obj.stringOr("lastname", ""),
		Email:             obj.stringOr("email", ""),
		Postcode:          obj.stringOr("postcode", ""),
		TransactionNumber: obj.intOr("transno", DefaultTransactionNumber),
	}
}

type jsonObject map[string]interface{}

func parseObject(data []byte) jsonObject {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return jsonObject{}
	}
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return jsonObject{}
}

func (o jsonObject) stringOr(key, def string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return def
}

// stringValue returns the value as text, stringifying numbers and booleans.
func (o jsonObject) stringValue(key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func (o jsonObject) boolOr(key string, def bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return def
}

func (o jsonObject) intOr(key string, def int) int {
	n, ok := o[key].(json.Number)
	if !ok {
		return def
	}
	if i, err := strconv.ParseInt(n.String(), 10, 0); err == nil {
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return def
	}
	return int(f)
}
