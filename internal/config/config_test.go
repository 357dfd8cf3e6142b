package config

import (
	"os"
	"strings"
	"testing"
)

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.MySQL.User = "plantcare"
	cfg.MySQL.Password = "secret"
	cfg.MySQL.Host = "db.example.com"
	cfg.MySQL.Port = 3307
	cfg.MySQL.DB = "plants"

	dsn := cfg.MySQLDSN()
	if !strings.HasPrefix(dsn, "plantcare:secret@tcp(db.example.com:3307)/plants?") {
		t.Errorf("unexpected DSN: %s", dsn)
	}
}

func TestSecretResourceName(t *testing.T) {
	cfg := defaultConfig()
	cfg.GCP.ProjectID = "plantcare-443106"

	name := cfg.SecretResourceName()
	expected := "projects/plantcare-443106/secrets/GCP_SA_KEY/versions/latest"
	if name != expected {
		t.Errorf("SecretResourceName() = %q, want %q", name, expected)
	}
}

func TestModelPaths(t *testing.T) {
	cfg := defaultConfig()
	paths := cfg.ModelPaths()

	for _, plantType := range []string{"mango", "tomato", "chili"} {
		if paths[plantType] == "" {
			t.Errorf("missing default model path for %s", plantType)
		}
	}
}

func TestValidateRejectsMissingBucket(t *testing.T) {
	cfg := defaultConfig()
	cfg.GCP.ProjectID = "p"
	cfg.Gemini.APIKey = "k"
	cfg.GCP.Bucket = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing bucket")
	}
}

func TestValidateRejectsMissingGeminiKey(t *testing.T) {
	cfg := defaultConfig()
	cfg.GCP.ProjectID = "p"
	cfg.GCP.Bucket = "b"
	cfg.Gemini.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing gemini api key")
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.GCP.ProjectID = "p"
	cfg.GCP.Bucket = "b"
	cfg.Gemini.APIKey = "k"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestOverrideByEnv(t *testing.T) {
	os.Setenv("GCP_BUCKET", "env-bucket")
	os.Setenv("APP_PORT", "9090")
	defer os.Unsetenv("GCP_BUCKET")
	defer os.Unsetenv("APP_PORT")

	cfg := defaultConfig()
	overrideByEnv(cfg)

	if cfg.GCP.Bucket != "env-bucket" {
		t.Errorf("bucket = %q, want env-bucket", cfg.GCP.Bucket)
	}
	if cfg.App.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.App.Port)
	}
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	os.Setenv("TEST_PLANTCARE_INT", "not-a-number")
	defer os.Unsetenv("TEST_PLANTCARE_INT")

	if got := getEnvAsInt("TEST_PLANTCARE_INT", 42); got != 42 {
		t.Errorf("getEnvAsInt() = %d, want fallback 42", got)
	}
}
