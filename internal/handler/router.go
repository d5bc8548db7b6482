package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"employee-discount/internal/domain/staff"
	"employee-discount/internal/handler/api"
	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health     *api.HealthHandler
	Code       *api.CodeHandler
	Validation *api.ValidationHandler
	Spending   *api.SpendingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		codes := apiGroup.Group("/codes")
		codes.Use(authMiddleware.RequireRoleAtLeast(staff.RoleEmployee))
		addRoutes(codes, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Code.Issue},
			{Method: http.MethodGet, Path: "/active", Handler: h.Code.Active},
		})

		validations := apiGroup.Group("/validations")
		validations.Use(authMiddleware.RequireRoleAtLeast(staff.RoleCashier))
		addRoutes(validations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Validation.Validate},
		})

		employees := apiGroup.Group("/employees")
		employees.Use(authMiddleware.RequireRoleAtLeast(staff.RoleEmployee))
		addRoutes(employees, []route{
			{Method: http.MethodGet, Path: "/me/spending-summary", Handler: h.Spending.Me},
			{Method: http.MethodGet, Path: "/me/transactions", Handler: h.Spending.Transactions},
			{
				Method:  http.MethodGet,
				Path:    "/:id/spending-summary",
				Handler: h.Spending.ByID,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleAdmin)},
			},
		})
	}
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

// chainHandlers runs route-level middleware inline. Each middleware calls
// c.Next, which is a no-op past the end of the gin chain, so the loop still
// drives the handler.
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
