package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/feedback-platform/config"
	"github.com/oksasatya/feedback-platform/internal/application"
	"github.com/oksasatya/feedback-platform/internal/container"
	repo "github.com/oksasatya/feedback-platform/internal/domain/repository"
	handlers "github.com/oksasatya/feedback-platform/internal/interface/http"
	"github.com/oksasatya/feedback-platform/internal/interface/middleware"
	"github.com/oksasatya/feedback-platform/internal/router/modules"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
	"github.com/oksasatya/feedback-platform/pkg/validation"
)

// Deps are the infrastructure singletons the HTTP layer is built from
type Deps struct {
	Config *config.Config
	Logger *logrus.Logger
	Store  repo.Store
	Redis  *redis.Client // nil disables rate limiting
	JWT    *helpers.JWTManager
}

// FromContainer collects Deps from the app-level container
func FromContainer() Deps {
	return Deps{
		Config: container.GetConfig(),
		Logger: container.GetLogger(),
		Store:  container.GetStore(),
		Redis:  container.GetRedis(),
		JWT:    container.GetJWT(),
	}
}

// Services bundles the application layer
type Services struct {
	Auth      *application.AuthService
	Users     *application.UserService
	Feedback  *application.FeedbackService
	Dashboard *application.DashboardService
}

func buildServices(d Deps) Services {
	timeout := d.Config.DBTimeout
	return Services{
		Auth:      application.NewAuthService(d.Store, d.JWT, timeout, d.Logger),
		Users:     application.NewUserService(d.Store, timeout, d.Logger),
		Feedback:  application.NewFeedbackService(d.Store, timeout, d.Logger),
		Dashboard: application.NewDashboardService(d.Store, timeout, d.Logger),
	}
}

// InitModules builds every feature module and registers it with the registry
func InitModules(r *Registry, d Deps) {
	cfg := d.Config
	svc := buildServices(d)

	rdb := d.Redis
	if !cfg.RateLimitEnabled {
		rdb = nil
	}
	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowLoopback()
	}
	loginLimit := middleware.RateLimit(rdb, cfg.RateLimitLogin, cfg.RateLimitWindow, middleware.KeyByIP(), allow, d.Logger)
	guard := modules.Guard{
		Auth:  middleware.Auth(svc.Auth),
		Limit: middleware.RateLimit(rdb, cfg.RateLimitAPI, cfg.RateLimitWindow, middleware.KeyByUserID(), allow, d.Logger),
	}

	r.Use(middleware.NoStore())
	r.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, d.Logger), loginLimit),
		modules.NewUserModule(handlers.NewUserHandler(svc.Users, d.Logger), guard),
		modules.NewFeedbackModule(handlers.NewFeedbackHandler(svc.Feedback, d.Logger), guard),
		modules.NewDashboardModule(handlers.NewDashboardHandler(svc.Dashboard, d.Logger), guard),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(middleware.RateLimit(rdb, cfg.RateLimitAPI, cfg.RateLimitWindow, middleware.KeyByIP(), allow, d.Logger)))
	}
}

// New builds the gin engine with global middleware and all modules mounted
func New(d Deps) *gin.Engine {
	cfg := d.Config
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(), middleware.RealIP(), middleware.Metrics())
	if cfg.HTTPLogEnabled && d.Logger != nil {
		r.Use(middleware.AccessLog(d.Logger))
	}
	r.Use(cors.New(corsConfig(cfg)))

	reg := NewRegistry(r)
	InitModules(reg, d)
	reg.RegisterAll()
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if cfg.CORSAllowAll() || len(cfg.CORSOrigins()) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins()
		c.AllowCredentials = true
	}
	return c
}
