package citypay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, Config{MerchantID: 105, LicenceKey: "LK"}.Validate())
	require.ErrorIs(t, Config{LicenceKey: "LK"}.Validate(), ErrMerchantID)
	require.ErrorIs(t, Config{MerchantID: -1, LicenceKey: "LK"}.Validate(), ErrMerchantID)
	require.ErrorIs(t, Config{MerchantID: 105}.Validate(), ErrLicenceKey)
	require.ErrorIs(t, Config{MerchantID: 105, LicenceKey: "A4123\xff412341234"}.Validate(), ErrLicenceKey)
}

func TestConfig_DefaultURLs(t *testing.T) {
	var cfg Config
	require.Equal(t, "https://secure.citypay.com/applepay/v1", cfg.DefaultBaseURL())
	require.Equal(t, "https://secure.citypay.com/paylink3/http-logger", cfg.DefaultLoggerURL())

	cfg.BaseURL = "http://localhost:8080/applepay/v1"
	cfg.LoggerURL = "http://localhost:8080/paylink3/http-logger"
	require.Equal(t, cfg.BaseURL, cfg.DefaultBaseURL())
	require.Equal(t, cfg.LoggerURL, cfg.DefaultLoggerURL())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CITYPAY_MERCHANT_ID", "105")
	t.Setenv("CITYPAY_LICENCE_KEY", "A4123412341234")
	t.Setenv("CITYPAY_TEST", "true")
	t.Setenv("CITYPAY_BASE_URL", "http://localhost:8080/applepay/v1")
	t.Setenv("CITYPAY_LOG_LEVEL", "debug")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, Config{
		MerchantID: 105,
		LicenceKey: "A4123412341234",
		Test:       true,
		BaseURL:    "http://localhost:8080/applepay/v1",
		LogLevel:   "debug",
	}, cfg)
}

func TestLoadConfigFromEnv_BadMerchantID(t *testing.T) {
	t.Setenv("CITYPAY_MERCHANT_ID", "one-oh-five")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	// t.Setenv restores the variables godotenv sets below.
	t.Setenv("CITYPAY_MERCHANT_ID", "")
	t.Setenv("CITYPAY_LICENCE_KEY", "from-process")
	os.Unsetenv("CITYPAY_MERCHANT_ID")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CITYPAY_MERCHANT_ID=42\nCITYPAY_LICENCE_KEY=from-file\n"), 0o600))

	cfg, err := LoadConfigFromDotEnv(path)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.MerchantID)
	require.Equal(t, "from-process", cfg.LicenceKey)
}
