package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "bistro_boss",
		AccessTokenSecret: "strong-production-secret-0123456789ABCDEF",
		AccessTokenTTL:    240 * time.Hour,
		CORSOrigins:       []string{"http://localhost:5173"},
	}
}

func TestValidateConfig_AcceptsValidConfig(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, validAppConfig(), testLogger()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_RejectsBadMongoURI(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.MongoURI = "not-a-mongo-uri"
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected error for malformed Mongo URI")
	}
}

func TestValidateConfig_RejectsDevSecretInProd(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.AccessTokenSecret = "dev-only-change-me-please-0123456789ABCDEF"
	coreCfg := &config.CoreConfig{Env: "prod"}
	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected error for dev signing key in prod")
	}
}

func TestValidateConfig_AllowsDevSecretOutsideProd(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.AccessTokenSecret = "dev-only-change-me-please-0123456789ABCDEF"
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err != nil {
		t.Errorf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_RejectsNonPositiveTTL(t *testing.T) {
	appCfg := validAppConfig()
	appCfg.AccessTokenTTL = 0
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, appCfg, testLogger()); err == nil {
		t.Error("expected error for zero token TTL")
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins(" http://localhost:5173 , http://localhost:5174,, ")
	if len(got) != 2 {
		t.Fatalf("origins: got %v, want 2 entries", got)
	}
	if got[0] != "http://localhost:5173" || got[1] != "http://localhost:5174" {
		t.Errorf("origins: got %v", got)
	}
}
