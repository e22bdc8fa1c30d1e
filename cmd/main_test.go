package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-09-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-09-01") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// PostgreSQL
	if cfg.PgHost != "localhost" || cfg.PgPort != 5432 || cfg.PgUser != "user" ||
		cfg.PgPassword != "password" || cfg.PgDB != "edu2job" ||
		cfg.PgMaxOpenConns != 16 || cfg.PgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config: %+v", cfg)
	}

	// Redis is off by default
	if cfg.RedisHost != "" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.StatsCacheExpSecond != 60 {
		t.Errorf("unexpected redis config: %+v", cfg)
	}

	// Kafka is off by default
	if cfg.KafkaAddr != "" || cfg.KafkaTopic != "application-status-events" {
		t.Errorf("unexpected kafka config: %+v", cfg)
	}

	// Google
	if cfg.GoogleClientID != "" || cfg.GoogleVerifyTimeoutSecond != 10 {
		t.Errorf("unexpected google config: %+v", cfg)
	}

	// JWT
	if cfg.JWTSecretKey != "my_super_secret_key" ||
		cfg.JWTAccessExpSecond != 3600 || cfg.JWTRefreshExpSecond != 604800 {
		t.Errorf("unexpected jwt config: %+v", cfg)
	}
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()

	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_DB", "recruitdb")
	os.Setenv("REDIS_HOST", "redis.internal")
	os.Setenv("KAFKA_ADDR", "kafka.internal:9092")
	os.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")
	os.Setenv("JWT_ACCESS_EXP_SECOND", "120")
	defer resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppPort != "9090" {
		t.Errorf("expected APP_PORT override, got %s", cfg.AppPort)
	}
	if cfg.PgDB != "recruitdb" {
		t.Errorf("expected POSTGRES_DB override, got %s", cfg.PgDB)
	}
	if cfg.RedisHost != "redis.internal" {
		t.Errorf("expected REDIS_HOST override, got %s", cfg.RedisHost)
	}
	if cfg.KafkaAddr != "kafka.internal:9092" {
		t.Errorf("expected KAFKA_ADDR override, got %s", cfg.KafkaAddr)
	}
	if cfg.GoogleClientID != "client-id.apps.googleusercontent.com" {
		t.Errorf("expected GOOGLE_CLIENT_ID override, got %s", cfg.GoogleClientID)
	}
	if cfg.JWTAccessExpSecond != 120 {
		t.Errorf("expected JWT_ACCESS_EXP_SECOND override, got %d", cfg.JWTAccessExpSecond)
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for non-numeric POSTGRES_PORT")
	}
}
