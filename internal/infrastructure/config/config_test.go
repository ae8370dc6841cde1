package config

import "testing"

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"PORT", "STORAGE_BACKEND", "SEQUENCE_BACKEND", "TAX_RATE", "SEED_SAMPLE_DATA", "LOG_LEVEL",
		"REDIS_ADDR", "MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_TEST_PAYER_EMAIL", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
		"AWS_REGION", "DYNAMODB_ENDPOINT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.StorageBackend != BackendMemory || cfg.SequenceBackend != BackendMemory {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TaxRate.String() != "0.1" {
		t.Fatalf("expected tax rate 0.1, got %s", cfg.TaxRate)
	}
	if cfg.SeedSampleData || cfg.PaymentGatewayMock {
		t.Fatalf("flags must default to false: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AWSRegion != "us-east-1" || cfg.DynamoDBEndpoint != "" || cfg.AWSAccessKeyID != "" {
		t.Fatalf("unexpected aws defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "DynamoDB")
	t.Setenv("SEQUENCE_BACKEND", "redis")
	t.Setenv("TAX_RATE", "0.15")
	t.Setenv("SEED_SAMPLE_DATA", "yes")
	t.Setenv("MERCADOPAGO_MOCK", "true")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", " http://dynamodb:8000 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.StorageBackend != BackendDynamoDB || cfg.SequenceBackend != BackendRedis {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TaxRate.String() != "0.15" || !cfg.SeedSampleData || !cfg.PaymentGatewayMock {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AWSRegion != "sa-east-1" || cfg.DynamoDBEndpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected aws config: %+v", cfg)
	}
}

func TestLoad_SequenceFollowsStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "dynamodb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SequenceBackend != BackendDynamoDB {
		t.Fatalf("expected dynamodb sequence, got %s", cfg.SequenceBackend)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port":                  {"PORT": "abc"},
		"negative tax":          {"TAX_RATE": "-0.1"},
		"tax not a number":      {"TAX_RATE": "ten"},
		"storage":               {"STORAGE_BACKEND": "postgres"},
		"sequence":              {"SEQUENCE_BACKEND": "etcd"},
		"volatile sequence ids": {"STORAGE_BACKEND": "dynamodb", "SEQUENCE_BACKEND": "memory"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}
