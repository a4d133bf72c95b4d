// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	activitiesfeature "github.com/dalemusser/octofit/internal/app/features/activities"
	errorsfeature "github.com/dalemusser/octofit/internal/app/features/errors"
	healthfeature "github.com/dalemusser/octofit/internal/app/features/health"
	homefeature "github.com/dalemusser/octofit/internal/app/features/home"
	leaderboardfeature "github.com/dalemusser/octofit/internal/app/features/leaderboard"
	teamsfeature "github.com/dalemusser/octofit/internal/app/features/teams"
	usersfeature "github.com/dalemusser/octofit/internal/app/features/users"
	workoutsfeature "github.com/dalemusser/octofit/internal/app/features/workouts"
	activitystore "github.com/dalemusser/octofit/internal/app/store/activities"
	leaderboardstore "github.com/dalemusser/octofit/internal/app/store/leaderboard"
	teamstore "github.com/dalemusser/octofit/internal/app/store/teams"
	userstore "github.com/dalemusser/octofit/internal/app/store/users"
	workoutstore "github.com/dalemusser/octofit/internal/app/store/workouts"
	"github.com/dalemusser/octofit/internal/app/system/auditlog"
	"github.com/dalemusser/octofit/internal/app/system/limits"
	"github.com/dalemusser/octofit/internal/app/system/metrics"
	"github.com/dalemusser/octofit/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the API client, and Startup have
// completed. It boots the template engine, applies request ids and CSRF
// protection, and mounts one feature router per view.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	secure := coreCfg.Env == "prod"

	r := chi.NewRouter()

	// Request ids are forwarded to the API as X-Request-ID.
	r.Use(middleware.RequestID)
	// Forwarding headers are client-controlled unless a trusted proxy sets them.
	if appCfg.TrustProxy {
		r.Use(middleware.RealIP)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errorsfeature.RenderNotFound(w, req, "The page you requested does not exist.", "/")
	})

	// Operational endpoints sit outside CSRF protection.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", metrics.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(plaintextHTTP)
		}
		r.Use(csrfProtect(appCfg.CSRFKey, secure, logger))

		homeHandler := homefeature.NewHandler(logger)
		r.Mount("/", homefeature.Routes(homeHandler))

		activitiesHandler := activitiesfeature.NewHandler(activitystore.New(deps.API), errLog, logger)
		r.Mount("/activities", activitiesfeature.Routes(activitiesHandler))

		teamsHandler := teamsfeature.NewHandler(teamstore.New(deps.API), errLog, logger)
		r.Mount("/teams", teamsfeature.Routes(teamsHandler))

		workoutsHandler := workoutsfeature.NewHandler(workoutstore.New(deps.API), errLog, logger)
		r.Mount("/workouts", workoutsfeature.Routes(workoutsHandler))

		leaderboardHandler := leaderboardfeature.NewHandler(leaderboardstore.New(deps.API), errLog, logger)
		r.Mount("/leaderboard", leaderboardfeature.Routes(leaderboardHandler))

		audit := auditlog.New(logger.Named("audit"), auditlog.Config{Admin: appCfg.AuditUsers})
		usersHandler := usersfeature.NewHandler(
			userstore.New(deps.API),
			teamstore.New(deps.API),
			flashes,
			audit,
			errLog,
			logger,
		)
		perMinute := appCfg.UserMutationsPerMinute
		if perMinute == 0 {
			perMinute = limits.UserMutationsPerMinute
		}
		limiter := ratelimit.New(perMinute, time.Minute)
		r.With(limiter.Mutations(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("user mutation rate limited", zap.String("ip", ratelimit.ClientIP(req)))
			errorsfeature.HTMXTooManyRequests(w, req, "Too many changes. Please wait a minute before trying again.", "/users")
		})).Mount("/users", usersfeature.Routes(usersHandler))
	})

	return r, nil
}

// plaintextHTTP tells the CSRF middleware the request arrived over plain
// HTTP, so its Referer check does not demand https.
func plaintextHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

func csrfProtect(key string, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return csrf.Protect(
		[]byte(key),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("csrf check failed",
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Error(csrf.FailureReason(r)))
			errorsfeature.RenderForbidden(w, r, "Your form expired. Reload the page and try again.", "/users")
		})),
	)
}
