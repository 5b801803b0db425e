package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/crisvega/userhub/internal/cache"
	"github.com/crisvega/userhub/internal/http/handlers"
	"github.com/crisvega/userhub/internal/http/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterDeps struct {
	Log            *slog.Logger
	Store          handlers.UsersStore
	ListCache      cache.Store
	Registry       *prometheus.Registry
	HTTPMetrics    gin.HandlerFunc
	Ping           func() error
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfgEnv := os.Getenv("APP_ENV")

	if cfgEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(deps.Log))
	r.Use(otelgin.Middleware("userhub"))

	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics)
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(1 << 20))

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// wire up handlers
	usersHandler := handlers.NewUsersHandler(deps.Store, deps.ListCache)
	schemaHandler := handlers.NewSchemaUsersHandler(usersHandler)
	pagesHandler := handlers.NewPagesHandler(deps.Store)

	limiter := middlewares.NewRateLimiter(120, time.Minute)

	// plain variant
	users := r.Group("/users", middlewares.RequireJSON(), limiter.Middleware(middlewares.KeyByIP))
	users.GET("", usersHandler.ListUsers)
	users.POST("", usersHandler.CreateUser)
	users.PUT("", usersHandler.UpdateUser)
	users.DELETE("", usersHandler.DeleteUser)

	// schema-validated variant
	schema := r.Group("/users-zod", middlewares.RequireJSON(), limiter.Middleware(middlewares.KeyByIP))
	schema.GET("", schemaHandler.ListUsers)
	schema.POST("", schemaHandler.CreateUser)
	schema.PUT("", schemaHandler.UpdateUser)
	schema.DELETE("", schemaHandler.DeleteUser)

	// server-rendered variant
	r.GET("/view", pagesHandler.ShowUsers)
	r.POST("/view/save", pagesHandler.SaveUser)
	r.POST("/view/delete", pagesHandler.DeleteUser)

	return r
}
