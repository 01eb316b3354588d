package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"club-booking/internal/handler/api"
	"club-booking/internal/handler/graph"
	"club-booking/internal/handler/middleware"
	"club-booking/internal/pkg/config"
)

const (
	ServiceRegistry = "registry"
	ServiceLedger   = "ledger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RegistryHandlers struct {
	Member *api.MemberHandler
	Schema *graphql.Schema
}

type LedgerHandlers struct {
	Field    *api.FieldHandler
	Pool     *api.PoolHandler
	Bookings *api.BookingsHandler
	Schema   *graphql.Schema
}

func NewRegistryRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h RegistryHandlers) {
	setupMiddleware(engine, cfg, logger, ServiceRegistry)
	setupCommonRoutes(engine, h.Schema)

	members := engine.Group("/api/members")
	addRoutes(members, []route{
		{Method: http.MethodGet, Path: "", Handler: h.Member.List},
		{Method: http.MethodPost, Path: "", Handler: h.Member.Add},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Member.Check},
		{Method: http.MethodGet, Path: "/:id/exists", Handler: h.Member.Exists},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Member.Delete},
	})
}

func NewLedgerRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h LedgerHandlers) {
	setupMiddleware(engine, cfg, logger, ServiceLedger)
	setupCommonRoutes(engine, h.Schema)

	apiGroup := engine.Group("/api")
	{
		fields := apiGroup.Group("/fields")
		addRoutes(fields, []route{
			{Method: http.MethodGet, Path: "/free/:date/:category", Handler: h.Field.FreeSlots},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Field.Book},
			{Method: http.MethodDelete, Path: "/bookings", Handler: h.Field.Cancel},
		})

		pool := apiGroup.Group("/pool")
		addRoutes(pool, []route{
			{Method: http.MethodGet, Path: "/free/:date", Handler: h.Pool.Free},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Pool.Book},
			{Method: http.MethodDelete, Path: "/bookings", Handler: h.Pool.Cancel},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "/members/:id", Handler: h.Bookings.Upcoming},
			{Method: http.MethodDelete, Path: "/members/:id", Handler: h.Bookings.Purge},
		})
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, service string) {
	middleware.RegisterValidators()

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(service))
	engine.Use(middleware.RateLimit(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupCommonRoutes(engine *gin.Engine, schema *graphql.Schema) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.POST("/graphql", graph.Handler(schema))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
