package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldservice/internal/domain/user"
	"fieldservice/internal/handler/api"
	"fieldservice/internal/handler/middleware"
	"fieldservice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router has a single dependency.
type Handlers struct {
	Booking        *api.BookingHandler
	Earnings       *api.EarningsHandler
	ProductRequest *api.ProductRequestHandler
	Referral       *api.ReferralHandler
	Admin          *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/assign", Handler: h.Booking.Assign, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Booking.Accept},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Booking.Reject},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete},
			{Method: http.MethodPost, Path: "/:id/mark-paid", Handler: h.Booking.MarkPaid, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/:id/rejections", Handler: h.Booking.RejectionHistory},
		})

		addRoutes(apiGroup.Group("/specialists/:id"), []route{
			{Method: http.MethodGet, Path: "/pending", Handler: h.Booking.PendingForSpecialist},
			{Method: http.MethodGet, Path: "/rejections", Handler: h.Booking.RejectionsForSpecialist},
			{Method: http.MethodGet, Path: "/earnings", Handler: h.Earnings.Summary},
			{Method: http.MethodPost, Path: "/earnings/mark-paid", Handler: h.Earnings.MarkAllPaid, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/product-requests", Handler: h.ProductRequest.ListForSpecialist},
			{Method: http.MethodGet, Path: "/referrals", Handler: h.Referral.Summary},
			{Method: http.MethodPost, Path: "/referrals/mark-paid", Handler: h.Referral.MarkAllPaid, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(apiGroup.Group("/product-requests"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.ProductRequest.Create},
			{Method: http.MethodGet, Path: "", Handler: h.ProductRequest.ListByStatus, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.ProductRequest.Resolve, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(apiGroup.Group("/referral-commissions"), []route{
			{Method: http.MethodPost, Path: "/:id/mark-paid", Handler: h.Referral.MarkPaid, Mw: []gin.HandlerFunc{adminOnly}},
		})

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/expiry-scan", Handler: h.Admin.ExpiryScan, Mw: []gin.HandlerFunc{adminOnly}},
		})
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
