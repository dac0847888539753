package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/albumhub/album-api/internal/api/handler"
	"github.com/albumhub/album-api/internal/api/middleware"
	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
)

// Options holds the transport-level settings.
type Options struct {
	Debug          bool
	CORSOrigins    []string
	BodyLimit      string
	SwaggerEnabled bool
	APILimit       middleware.RateLimitConfig
	AuthLimit      middleware.RateLimitConfig
}

// Deps are the services and probes the routes delegate to. Registerer and
// Gatherer default to the global Prometheus registry.
type Deps struct {
	Logger       zerolog.Logger
	Tokens       ports.TokenVerifier
	Credentials  ports.CredentialService
	Users        ports.UserService
	Albums       ports.AlbumService
	Photos       ports.PhotoService
	Profiles     ports.ProfileGenerator
	Limiter      ports.RateLimiter
	HealthChecks map[string]handler.DependencyCheck
	Registerer   prometheus.Registerer
	Gatherer     prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, opts.Debug)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.Gzip())
	if opts.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(opts.BodyLimit))
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "album_api",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Health, metrics and docs (no auth, no rate limit) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	if opts.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Credentials)
	userHandler := handler.NewUserHandler(deps.Users, deps.Credentials)
	albumHandler := handler.NewAlbumHandler(deps.Albums)
	photoHandler := handler.NewPhotoHandler(deps.Photos)
	profileHandler := handler.NewProfileHandler(deps.Profiles)

	authenticate := middleware.Authenticate(deps.Tokens)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	curators := middleware.RequireRoles(domain.RoleAdmin, domain.RoleEditor)
	selfOrAdmin := middleware.RequireSelfOrAdmin("id")

	api := e.Group("", middleware.RateLimit(deps.Limiter, opts.APILimit, deps.Logger))

	// --- Auth routes ---
	authLimit := middleware.RateLimit(deps.Limiter, opts.AuthLimit, deps.Logger)
	api.POST("/auth/register", authHandler.Register, authLimit)
	api.POST("/auth/login", authHandler.Login, authLimit)
	api.GET("/auth/profile", authHandler.Profile, authenticate)

	// --- Users ---
	users := api.Group("/users", authenticate)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, selfOrAdmin)
	users.PUT("/:id", userHandler.Update, selfOrAdmin)
	users.PUT("/:id/password", userHandler.ChangePassword, selfOrAdmin)
	users.PUT("/:id/activate", userHandler.Activate, adminOnly)
	users.PUT("/:id/deactivate", userHandler.Deactivate, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Albums & photos: public reads, curated writes ---
	api.GET("/albums", albumHandler.List)
	api.GET("/album/:id", albumHandler.Get)
	api.POST("/album", albumHandler.Create, authenticate, curators)
	api.PUT("/album/:id", albumHandler.Update, authenticate, curators)
	api.DELETE("/album/:id", albumHandler.Delete, authenticate, curators)

	api.GET("/album/:idalbum/photos", photoHandler.List)
	api.GET("/album/:idalbum/photo/:idphoto", photoHandler.Get)
	api.POST("/album/:idalbum/photo", photoHandler.Create, authenticate, curators)
	api.PUT("/album/:idalbum/photo/:idphoto", photoHandler.Update, authenticate, curators)
	api.DELETE("/album/:idalbum/photo/:idphoto", photoHandler.Delete, authenticate, curators)

	// --- Profile generator ---
	api.GET("/api/profile/generate", profileHandler.Generate)

	return e
}

// requestLogger emits one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// requestTimeout bounds how long the HTTP server waits on slow clients.
const requestTimeout = 30 * time.Second

// NewServer wraps the router in an http.Server listening on addr.
func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: requestTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout,
	}
}
