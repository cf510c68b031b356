package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"checkout_core/internal/domain/entities"
)

const (
	CartStoreRedis  = "redis"
	CartStoreMemory = "memory"

	PaymentProviderBackend     = "backend"
	PaymentProviderMercadoPago = "mercadopago"

	LedgerDynamoDB = "dynamodb"
	LedgerNone     = "none"
)

// Config is the runtime configuration of the checkout service.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (development|production, default: development)
//   - BACKEND_BASE_URL (default: http://localhost:8000/api/v1)
//   - BACKEND_TIMEOUT (Go duration, default: 10s)
//   - BACKEND_BREAKER_MAX_FAILURES (default: 5), BACKEND_BREAKER_OPEN_TIMEOUT (default: 30s)
//   - CART_STORE (redis|memory, default: redis)
//   - REDIS_URL (default: redis://localhost:6379/0)
//   - PAYMENT_PROVIDER (backend|mercadopago, default: backend)
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_CALLBACK_URL (PSE return page)
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK
//   - CHECKOUT_LEDGER (dynamodb|none, default: dynamodb)
//   - CHECKOUT_ATTEMPTS_TABLE (default: checkout_attempts)
//   - AWS_REGION (default: us-east-1), DYNAMODB_ENDPOINT, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
//   - CORS_ALLOWED_ORIGINS (comma separated, default: http://localhost:5173)
type Config struct {
	Port    int
	AppEnv  string
	Backend BackendConfig

	CartStore string
	RedisURL  string

	PaymentProvider        string
	MercadoPagoAccessToken string
	MercadoPagoCallbackURL string
	PaymentGatewayMock     bool

	Ledger              string
	CheckoutAttemptsTbl string
	AWSRegion           string
	DynamoDBEndpoint    string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string

	CORSAllowedOrigins []string
}

type BackendConfig struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:   getenvInt("PORT", 8080),
		AppEnv: getenvDefault("APP_ENV", "development"),
		Backend: BackendConfig{
			BaseURL:            strings.TrimRight(getenvDefault("BACKEND_BASE_URL", "http://localhost:8000/api/v1"), "/"),
			Timeout:            getenvDuration("BACKEND_TIMEOUT", 10*time.Second),
			BreakerMaxFailures: uint32(getenvInt("BACKEND_BREAKER_MAX_FAILURES", 5)),
			BreakerOpenTimeout: getenvDuration("BACKEND_BREAKER_OPEN_TIMEOUT", 30*time.Second),
		},
		CartStore:              strings.ToLower(getenvDefault("CART_STORE", CartStoreRedis)),
		RedisURL:               getenvDefault("REDIS_URL", "redis://localhost:6379/0"),
		PaymentProvider:        strings.ToLower(getenvDefault("PAYMENT_PROVIDER", PaymentProviderBackend)),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoCallbackURL: getenvDefault("MERCADOPAGO_CALLBACK_URL", "http://localhost:5173/checkout/resultado"),
		PaymentGatewayMock:     IsPaymentGatewayMockEnabled(),
		Ledger:                 strings.ToLower(getenvDefault("CHECKOUT_LEDGER", LedgerDynamoDB)),
		CheckoutAttemptsTbl:    getenvDefault("CHECKOUT_ATTEMPTS_TABLE", "checkout_attempts"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		AWSAccessKeyID:         os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
		CORSAllowedOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

// IsProduction reports whether APP_ENV selects production logging and gin release mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// IsPaymentGatewayMockEnabled reports whether payments must be simulated locally.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PSEBanks is the fixed catalogue of banks offered for PSE payments.
var PSEBanks = []entities.PSEBank{
	{Code: "1007", Name: "Bancolombia"},
	{Code: "1051", Name: "Davivienda"},
	{Code: "1001", Name: "Banco de Bogotá"},
	{Code: "1023", Name: "Banco de Occidente"},
	{Code: "1013", Name: "BBVA Colombia"},
	{Code: "1002", Name: "Banco Popular"},
	{Code: "1052", Name: "Banco AV Villas"},
	{Code: "1032", Name: "Banco Caja Social"},
	{Code: "1040", Name: "Banco Agrario"},
	{Code: "1019", Name: "Scotiabank Colpatria"},
	{Code: "1006", Name: "Banco Itaú"},
	{Code: "1009", Name: "Citibank"},
	{Code: "1012", Name: "Banco GNB Sudameris"},
	{Code: "1059", Name: "Bancamía"},
	{Code: "1062", Name: "Banco Falabella"},
	{Code: "1507", Name: "Nequi"},
	{Code: "1551", Name: "Daviplata"},
}
