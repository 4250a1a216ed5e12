package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/invinci009/rmw/internal/application/service"
	"github.com/invinci009/rmw/internal/config"
	"github.com/invinci009/rmw/internal/infrastructure/database"
	"github.com/invinci009/rmw/internal/infrastructure/repository"
	"github.com/invinci009/rmw/internal/presentation/http/handler"
	"github.com/invinci009/rmw/internal/presentation/http/routes"
	"github.com/invinci009/rmw/pkg/otp"
	"github.com/invinci009/rmw/pkg/sms"
	"github.com/invinci009/rmw/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize OTP store and SMS sender
	otpStore := otp.NewStore(cfg.OTP.TTL, cfg.OTP.SweepInterval)
	defer otpStore.Close()
	smsSender := sms.NewLogSender()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	jobCardRepo := repository.NewJobCardRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, otpStore, smsSender, jwtManager, cfg.OTP.DevEcho)
	catalogService := service.NewCatalogService(serviceRepo)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, sequenceRepo)
	jobCardService := service.NewJobCardService(jobCardRepo, bookingRepo, invoiceRepo, sequenceRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, jobCardRepo, sequenceRepo)
	dashboardService := service.NewDashboardService(bookingRepo, jobCardRepo, invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Booking:   handler.NewBookingHandler(bookingService),
		JobCard:   handler.NewJobCardHandler(jobCardService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
