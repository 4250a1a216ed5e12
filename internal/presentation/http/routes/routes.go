package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/invinci009/rmw/internal/config"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/presentation/http/handler"
	"github.com/invinci009/rmw/internal/presentation/http/middleware"
	"github.com/invinci009/rmw/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Booking   *handler.BookingHandler
	JobCard   *handler.JobCardHandler
	Invoice   *handler.InvoiceHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerPublicRoutes(v1, h, deps)

		// Vehicle history works for anonymous phone lookups and for
		// logged-in customers without an explicit phone
		v1.GET("/vehicles/history",
			middleware.OptionalAuthMiddleware(deps.JWTManager), h.JobCard.VehicleHistory)

		// Routes that behave differently for customers and admins
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerAuthedRoutes(authed, h)

		// Admin-only workshop operations
		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(deps.JWTManager))
		admin.Use(middleware.RequireRole(string(enum.UserRoleAdmin)))
		registerAdminRoutes(admin, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		auth.POST("/admin/login", h.Auth.AdminLogin)

		// OTP sends are throttled per target phone
		otpLimiter := middleware.NewKeyedRateLimiter(middleware.OTPRateLimiterConfig())
		auth.POST("/otp/send", otpLimiter.MiddlewareWithKey(otpKey), h.Auth.SendOTP)
		auth.POST("/otp/verify", h.Auth.VerifyOTP)
	}

	services := v1.Group("/services")
	{
		// Optional auth so an admin token unlocks include_inactive
		services.GET("", middleware.OptionalAuthMiddleware(deps.JWTManager), h.Catalog.List)
		services.GET("/:slug", h.Catalog.GetBySlug)
	}

	// Booking creation is open; no account needed to book a slot
	v1.POST("/bookings", h.Booking.Create)

	// Public job card tracking by number or phone
	v1.GET("/track", h.JobCard.Track)
}

func registerAuthedRoutes(authed *gin.RouterGroup, h *Handlers) {
	bookings := authed.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		bookings.GET("/:id", h.Booking.Get)
		bookings.DELETE("/:id", h.Booking.Cancel)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	admin.PATCH("/bookings/:id/status", h.Booking.UpdateStatus)

	services := admin.Group("/services")
	{
		services.POST("", h.Catalog.Create)
		services.PUT("/:id", h.Catalog.Update)
		services.DELETE("/:id", h.Catalog.Delete)
	}

	jobCards := admin.Group("/job-cards")
	{
		jobCards.GET("", h.JobCard.List)
		jobCards.POST("", h.JobCard.Create)
		jobCards.GET("/:id", h.JobCard.Get)
		jobCards.PATCH("/:id", h.JobCard.Update)
		jobCards.DELETE("/:id", h.JobCard.Delete)
	}

	invoices := admin.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id/payment", h.Invoice.UpdatePayment)
		invoices.GET("/:id/pdf", h.Invoice.DownloadPDF)
	}

	admin.GET("/dashboard", h.Dashboard.Stats)
}

// otpKey keys the OTP limiter on the target phone from the request body so a
// single number cannot be flooded from many addresses. The body is restored
// for the handler.
func otpKey(c *gin.Context) string {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		return ""
	}
	return req.Phone
}
