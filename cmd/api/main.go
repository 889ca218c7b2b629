package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/config"
	"github.com/kipsang/medicore-api/internal/infrastructure/database"
	"github.com/kipsang/medicore-api/internal/infrastructure/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/handler"
	"github.com/kipsang/medicore-api/internal/presentation/http/routes"
	"github.com/kipsang/medicore-api/pkg/email"
	"github.com/kipsang/medicore-api/pkg/utils"
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
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	purchaseDetailRepo := repository.NewPurchaseDetailRepository(db)
	labRepo := repository.NewLabTestRepository(db)
	providerRepo := repository.NewInsuranceProviderRepository(db)
	claimRepo := repository.NewInsuranceClaimRepository(db)
	surgeryRepo := repository.NewSurgeryRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	patientService := service.NewPatientService(patientRepo, providerRepo)
	staffService := service.NewStaffService(staffRepo)
	scheduleService := service.NewScheduleService(staffRepo, scheduleRepo)
	medicineService := service.NewMedicineService(medicineRepo, supplierRepo)
	billingService := service.NewBillingService(saleRepo, saleItemRepo, medicineRepo, patientRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, purchaseDetailRepo, medicineRepo, supplierRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, staffRepo, scheduleRepo, emailService)
	labService := service.NewLabService(labRepo, patientRepo)
	insuranceService := service.NewInsuranceService(providerRepo, claimRepo, patientRepo)
	surgeryService := service.NewSurgeryService(surgeryRepo, patientRepo, staffRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, claimRepo)
	reportService := service.NewReportService(saleRepo, medicineRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Patient:     handler.NewPatientHandler(patientService),
		Staff:       handler.NewStaffHandler(staffService, scheduleService),
		Medicine:    handler.NewMedicineHandler(medicineService),
		Supplier:    handler.NewSupplierHandler(medicineService),
		Sale:        handler.NewSaleHandler(billingService),
		Purchase:    handler.NewPurchaseHandler(purchaseService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Lab:         handler.NewLabHandler(labService),
		Insurance:   handler.NewInsuranceHandler(insuranceService),
		Surgery:     handler.NewSurgeryHandler(surgeryService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Report:      handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
