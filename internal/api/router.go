package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/gigstm/gigs-platform/docs"
	"github.com/gigstm/gigs-platform/internal/api/handler"
	"github.com/gigstm/gigs-platform/internal/api/middleware"
	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// uploadBodyLimit covers the largest onboarding step: four files plus the form.
const uploadBodyLimit = "25M"

// Deps are the services and settings the router wires into handlers.
type Deps struct {
	Auth       ports.AuthService
	Onboarding ports.OnboardingService
	Admin      ports.AdminService
	Gigs       ports.GigService
	Blobs      ports.BlobStore
	Checks     map[string]handler.Check

	JWTSecret string
	ResetURL  string
	Logger    zerolog.Logger
	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	registerer, gatherer := d.Registerer, d.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "gigs",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))

	authMiddleware := middleware.Auth(d.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(d.Auth, d.ResetURL)
	onboardingHandler := handler.NewOnboardingHandler(d.Onboarding)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Logger)
	gigHandler := handler.NewGigHandler(d.Gigs)
	fileHandler := handler.NewFileHandler(d.Blobs)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-otp", authHandler.VerifyOTP)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.PATCH("/reset-password/:token", authHandler.ResetPassword)
	auth.POST("/resend-otp", authHandler.ResendOTP, authMiddleware)
	auth.POST("/change-password", authHandler.ChangePassword, authMiddleware)

	v1 := e.Group("/v1")

	// --- Public gigs ---
	v1.GET("/gigs", gigHandler.ListPublished)
	v1.GET("/gigs/:id", gigHandler.GetPublished)

	// --- Authenticated account routes ---
	me := v1.Group("", authMiddleware)
	onboarding := me.Group("/onboarding")
	onboarding.POST("/personal", onboardingHandler.SubmitPersonal, echomiddleware.BodyLimit(uploadBodyLimit))
	onboarding.POST("/experience", onboardingHandler.SubmitExperience, echomiddleware.BodyLimit(uploadBodyLimit))
	onboarding.POST("/kyc", onboardingHandler.SubmitKYC, echomiddleware.BodyLimit(uploadBodyLimit))
	onboarding.GET("/completion", onboardingHandler.Completion)
	onboarding.GET("/gate", onboardingHandler.Gate)
	me.GET("/me/combined", onboardingHandler.MyCombined)
	me.GET("/me/applications", gigHandler.MyApplications)
	me.POST("/gigs/:id/apply", gigHandler.Apply)

	// --- Admin routes ---
	admin := v1.Group("/admin", authMiddleware, adminOnly)
	admin.GET("/accounts", adminHandler.ListAccounts)
	admin.GET("/accounts/export", adminHandler.ExportAccounts)
	admin.PATCH("/accounts/:external_id", adminHandler.SetStatus)
	admin.DELETE("/accounts/:external_id", adminHandler.DeleteAccount)
	admin.GET("/gigs", gigHandler.List)
	admin.POST("/gigs", gigHandler.Create)
	admin.GET("/gigs/:id", gigHandler.Get)
	admin.PATCH("/gigs/:id", gigHandler.Update)
	admin.DELETE("/gigs/:id", gigHandler.Delete)
	admin.GET("/gigs/:id/applications", gigHandler.ListApplications)
	admin.PATCH("/applications/:id", gigHandler.UpdateApplicationStatus)

	// --- Uploaded files ---
	e.GET("/files/:id", fileHandler.Get)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
