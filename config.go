package citypay

import (
	"unicode/utf8"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL   = "https://secure.citypay.com/applepay/v1"
	defaultLoggerURL = "https://secure.citypay.com/paylink3/http-logger"
)

// Config holds the merchant credentials and settings needed to talk to the
// CityPay gateway.
type Config struct {
	// MerchantID is the CityPay merchant account number.
	MerchantID int `env:"CITYPAY_MERCHANT_ID"`

	// LicenceKey is the secret shared with the gateway. It salts the response
	// digest and is never sent over the wire.
	LicenceKey string `env:"CITYPAY_LICENCE_KEY"`

	// Test marks transactions as test transactions.
	Test bool `env:"CITYPAY_TEST"`

	// BaseURL optionally overrides the Apple Pay endpoint URL.
	BaseURL string `env:"CITYPAY_BASE_URL"`

	// LoggerURL optionally overrides the diagnostic logger endpoint URL.
	LoggerURL string `env:"CITYPAY_LOGGER_URL"`

	// LogLevel is a logrus level name used by the default logger.
	LogLevel string `env:"CITYPAY_LOG_LEVEL"`
}

// Validate checks that the required configuration fields are present.
// The licence key must be valid UTF-8, otherwise no digest computed with it
// would ever verify.
func (c Config) Validate() error {
	if c.MerchantID <= 0 {
		return ErrMerchantID
	}
	if c.LicenceKey == "" || !utf8.ValidString(c.LicenceKey) {
		return ErrLicenceKey
	}
	return nil
}

// DefaultBaseURL returns the Apple Pay endpoint.
func (c Config) DefaultBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

// DefaultLoggerURL returns the diagnostic logger endpoint.
func (c Config) DefaultLoggerURL() string {
	if c.LoggerURL != "" {
		return c.LoggerURL
	}
	return defaultLoggerURL
}

// LoadConfigFromEnv creates a Config from environment variables:
//
//	CITYPAY_MERCHANT_ID  – merchant account number (required)
//	CITYPAY_LICENCE_KEY  – licence key (required)
//	CITYPAY_TEST         – "true" for test transactions
//	CITYPAY_BASE_URL     – optional Apple Pay endpoint override
//	CITYPAY_LOGGER_URL   – optional logger endpoint override
//	CITYPAY_LOG_LEVEL    – logrus level for the default logger
//
// The result is not validated; NewClient does that.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "citypay: read environment")
	}
	return cfg, nil
}

// LoadConfigFromDotEnv loads environment variables from a .env file and then
// reads the Config from them. If the file does not exist it silently falls
// back to the current process environment.
func LoadConfigFromDotEnv(filenames ...string) (Config, error) {
	// godotenv.Load does NOT override existing env vars.
	_ = godotenv.Load(filenames...)
	return LoadConfigFromEnv()
}
