// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	authtokenfeature "github.com/bistroboss/bistrohub/internal/app/features/authtoken"
	cartfeature "github.com/bistroboss/bistrohub/internal/app/features/cart"
	healthfeature "github.com/bistroboss/bistrohub/internal/app/features/health"
	menufeature "github.com/bistroboss/bistrohub/internal/app/features/menu"
	paymentsfeature "github.com/bistroboss/bistrohub/internal/app/features/payments"
	reviewsfeature "github.com/bistroboss/bistrohub/internal/app/features/reviews"
	usersfeature "github.com/bistroboss/bistrohub/internal/app/features/users"
	cartstore "github.com/bistroboss/bistrohub/internal/app/store/cartitems"
	menustore "github.com/bistroboss/bistrohub/internal/app/store/menuitems"
	reviewstore "github.com/bistroboss/bistrohub/internal/app/store/reviews"
	userstore "github.com/bistroboss/bistrohub/internal/app/store/users"
	"github.com/bistroboss/bistrohub/internal/app/system/auth"
	"github.com/bistroboss/bistrohub/internal/app/system/authz"
	"github.com/bistroboss/bistrohub/internal/app/system/revoke"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. BistroHub builds the token
// manager and the per-collection stores here and hands them to the
// feature packages, so every handler's dependencies are explicit.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	// Revoked token ids live in process for at most one token lifetime;
	// the janitor prunes expired entries so the set stays small.
	revoked := revoke.NewSet()
	revoked.StartJanitor(context.Background(), time.Hour, logger)

	tokens, err := auth.NewTokenManager(appCfg.AccessTokenSecret, appCfg.AccessTokenTTL, secure, revoked, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	menu := menustore.New(deps.MongoDatabase)
	reviews := reviewstore.New(deps.MongoDatabase)
	cart := cartstore.New(deps.MongoDatabase)

	// Admin-gated routes re-read the role from the users collection on
	// every request, so demotions take effect immediately.
	admin := authz.RequireAdmin(users, logger)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/", healthHandler.ServeRoot)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	api := chi.NewRouter()
	authtokenfeature.Register(api, authtokenfeature.NewHandler(tokens, logger))
	usersfeature.Register(api, usersfeature.NewHandler(users, logger), tokens, admin)
	menufeature.Register(api, menufeature.NewHandler(menu, logger), tokens, admin)
	reviewsfeature.Register(api, reviewsfeature.NewHandler(reviews, logger))
	cartfeature.Register(api, cartfeature.NewHandler(cart, logger), tokens)
	paymentsfeature.Register(api, paymentsfeature.NewHandler(paymentsfeature.NewStripeIntents(appCfg.StripeSecretKey), logger), tokens)
	r.Mount("/api/v1", api)

	return r, nil
}
