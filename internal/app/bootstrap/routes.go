// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	announcementsfeature "github.com/dalemusser/stratalinks/internal/app/features/announcements"
	directoryfeature "github.com/dalemusser/stratalinks/internal/app/features/directory"
	healthfeature "github.com/dalemusser/stratalinks/internal/app/features/health"
	"github.com/dalemusser/stratalinks/internal/app/system/jsonutil"
	"github.com/dalemusser/stratalinks/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// This function creates the chi router, applies global middleware, mounts
// the feature routers, and returns the configured router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Request ID middleware: assigns an X-Request-ID when the client sends none.
	r.Use(requestid.Middleware)

	// Link directory API
	directoryHandler := directoryfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/links", directoryfeature.Routes(directoryHandler))

	// Staff announcement check API
	announcementsHandler := announcementsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/announcements", announcementsfeature.Routes(announcementsHandler))

	// Health checks and Kubernetes probes
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// 404 catch-all for unmatched routes
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "Route not found")
	})

	return r, nil
}
