package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/techexpo/console/internal/guard"
	"github.com/techexpo/console/internal/http/handlers"
	"github.com/techexpo/console/internal/http/middlewares"
	"github.com/techexpo/console/internal/notify"
	"github.com/techexpo/console/internal/observability"
	"github.com/techexpo/console/internal/routes"
	"github.com/techexpo/console/internal/screens"
	"github.com/techexpo/console/internal/session"
)

// Deps is everything the console surface needs wired in.
type Deps struct {
	Log      *slog.Logger
	Env      string
	Sessions session.Store
	Guard    *guard.Guard
	Hub      *notify.Hub

	// Prom and Registry are optional; without them no /metrics endpoint
	// is mounted.
	Prom     *observability.Prom
	Registry *prometheus.Registry

	AllowedOrigins []string
	// Ping reports backend reachability for /readyz.
	Ping func() error

	Login       *screens.Login
	Dashboard   *screens.Dashboard
	Exhibitions *screens.Exhibitions
	Products    *screens.Products
	Accounts    *screens.Accounts
	Employees   *screens.Employees
	Visitors    *screens.Visitors
	// NewRegistration builds one public form controller per exhibition.
	NewRegistration func(exhibitionID int64) *screens.Registration
}

func NewRouter(d Deps) *gin.Engine {
	if d.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(d.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(8 << 20))
	r.Use(otelgin.Middleware("techexpo-console"))
	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
	}

	// health
	h := handlers.NewHealthHandler(d.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if d.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	// auth; the login endpoint sits behind an IP rate limit
	authHandler := handlers.NewAuthHandler(d.Login, d.Sessions)
	loginLimiter := middlewares.NewRateLimiter(10, time.Minute)
	r.POST("/auth/login",
		loginLimiter.RateLimiterMiddleware(middlewares.KeyByIP),
		middlewares.RequireJSON(),
		authHandler.Login,
	)
	r.POST("/auth/logout", authHandler.Logout)
	r.GET("/auth/session", authHandler.Session)

	// toast drain
	notifications := handlers.NewNotificationsHandler(d.Hub)
	r.GET("/notifications", notifications.Drain)

	// public registration form
	visit := handlers.NewVisitHandler(d.NewRegistration)
	r.GET(routes.Path(routes.Visit), visit.Show)
	r.POST(routes.Path(routes.Visit), middlewares.RequireJSON(), visit.Register)

	// guarded console screens

	dashboard := handlers.NewDashboardHandler(d.Dashboard)
	r.GET(routes.Path(routes.Dashboard), middlewares.RouteGuard(d.Guard, routes.Dashboard), dashboard.Summary)

	exhibitions := handlers.NewExhibitionsHandler(d.Exhibitions)
	eg := r.Group(routes.Path(routes.Exhibitions), middlewares.RouteGuard(d.Guard, routes.Exhibitions))
	eg.GET("", exhibitions.List)
	eg.POST("", middlewares.RequireJSON(), exhibitions.Create)
	eg.PUT("/:id", middlewares.RequireJSON(), exhibitions.Update)
	eg.DELETE("/:id", exhibitions.Delete)

	// product mutations arrive as multipart, no RequireJSON here
	products := handlers.NewProductsHandler(d.Products)
	pg := r.Group(routes.Path(routes.Products), middlewares.RouteGuard(d.Guard, routes.Products))
	pg.GET("", products.List)
	pg.POST("", products.Create)
	pg.PUT("/:id", products.Update)
	pg.DELETE("/:id", products.Delete)

	accounts := handlers.NewAccountsHandler(d.Accounts)
	ug := r.Group(routes.Path(routes.Users), middlewares.RouteGuard(d.Guard, routes.Users))
	ug.GET("", accounts.List)
	ug.POST("", middlewares.RequireJSON(), accounts.Create)
	ug.PUT("/:id", middlewares.RequireJSON(), accounts.Update)
	ug.DELETE("/:id", accounts.Delete)

	employees := handlers.NewEmployeesHandler(d.Employees)
	emg := r.Group(routes.Path(routes.Employees), middlewares.RouteGuard(d.Guard, routes.Employees))
	emg.GET("", employees.List)
	emg.POST("", middlewares.RequireJSON(), employees.Create)
	emg.PUT("/:id", middlewares.RequireJSON(), employees.Update)
	emg.DELETE("/:id", employees.Delete)

	visitors := handlers.NewVisitorsHandler(d.Visitors)
	vg := r.Group(routes.Path(routes.Visitors), middlewares.RouteGuard(d.Guard, routes.Visitors))
	vg.GET("", visitors.List)
	vg.POST("", middlewares.RequireJSON(), visitors.Create)
	vg.DELETE("/:id", visitors.Delete)

	return r
}
