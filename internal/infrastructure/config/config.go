package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

// Config is the process configuration, read from the environment (.env files
// are autoloaded by main).
type Config struct {
	Port            int
	StorageBackend  string
	SequenceBackend string
	TaxRate         decimal.Decimal
	SeedSampleData  bool
	LogLevel        string
	RedisAddr       string

	AWSRegion          string
	DynamoDBEndpoint   string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
}

// Load reads Config from the environment and validates it.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORAGE_BACKEND: memory | dynamodb (default: memory)
//   - SEQUENCE_BACKEND: memory | dynamodb | redis (default: follows STORAGE_BACKEND)
//   - TAX_RATE (default: 0.10)
//   - SEED_SAMPLE_DATA (default: false)
//   - LOG_LEVEL (default: info)
//   - REDIS_ADDR (default: localhost:6379)
//   - AWS_REGION (default: us-east-1), DYNAMODB_ENDPOINT
//   - AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_TEST_PAYER_EMAIL
//   - PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK
//
// DynamoDB table names (*_TABLE) are read by the repository package.
func Load() (Config, error) {
	cfg := Config{
		StorageBackend:         strings.ToLower(getenvDefault("STORAGE_BACKEND", BackendMemory)),
		LogLevel:               getenvDefault("LOG_LEVEL", "info"),
		RedisAddr:              getenvDefault("REDIS_ADDR", "localhost:6379"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AWSAccessKeyID:         os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		TestPayerEmail:         os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
		SeedSampleData:         isTruthy(os.Getenv("SEED_SAMPLE_DATA")),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
	}
	cfg.SequenceBackend = strings.ToLower(getenvDefault("SEQUENCE_BACKEND", cfg.StorageBackend))

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	rate, err := decimal.NewFromString(getenvDefault("TAX_RATE", "0.10"))
	if err != nil || rate.IsNegative() {
		return Config{}, fmt.Errorf("invalid TAX_RATE %q", os.Getenv("TAX_RATE"))
	}
	cfg.TaxRate = rate

	switch cfg.StorageBackend {
	case BackendMemory, BackendDynamoDB:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	switch cfg.SequenceBackend {
	case BackendMemory, BackendDynamoDB, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unsupported SEQUENCE_BACKEND %q", cfg.SequenceBackend)
	}
	if cfg.StorageBackend == BackendDynamoDB && cfg.SequenceBackend == BackendMemory {
		return Config{}, fmt.Errorf("SEQUENCE_BACKEND memory would reuse bill ids across restarts of a persistent ledger")
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
