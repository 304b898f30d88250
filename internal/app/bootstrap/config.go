// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for BistroHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, access_token_secret, etc.
//   - Environment variables: BISTROHUB_MONGO_URI, BISTROHUB_ACCESS_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --access_token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "bistro_boss", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "access_token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC signing key for access tokens (must be strong in production)"},
	{Name: "access_token_ttl", Default: "240h", Desc: "Access token lifetime (e.g., 240h, 24h)"},

	{Name: "stripe_secret_key", Default: "", Desc: "Stripe API secret key"},

	{Name: "cors_origins", Default: "http://localhost:5173,http://localhost:5174", Desc: "Comma-separated browser origins allowed to send credentialed requests"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BISTROHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AccessTokenSecret: appValues.String("access_token_secret"),
		AccessTokenTTL:    appValues.Duration("access_token_ttl", 240*time.Hour),

		StripeSecretKey: appValues.String("stripe_secret_key"),

		CORSOrigins: splitOrigins(appValues.String("cors_origins")),
	}

	return coreCfg, appCfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// BistroHub validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and refuses to start in
// production with the development signing key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && strings.HasPrefix(appCfg.AccessTokenSecret, "dev-only-") {
		return fmt.Errorf("access_token_secret must be set in production")
	}

	if appCfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be positive, got %s", appCfg.AccessTokenTTL)
	}

	if len(appCfg.CORSOrigins) == 0 {
		return fmt.Errorf("cors_origins must name at least one origin")
	}

	return nil
}
