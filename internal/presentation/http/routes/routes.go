package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/medicore-api/internal/config"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/handler"
	"github.com/kipsang/medicore-api/internal/presentation/http/middleware"
	"github.com/kipsang/medicore-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Staff       *handler.StaffHandler
	Medicine    *handler.MedicineHandler
	Supplier    *handler.SupplierHandler
	Sale        *handler.SaleHandler
	Purchase    *handler.PurchaseHandler
	Appointment *handler.AppointmentHandler
	Lab         *handler.LabHandler
	Insurance   *handler.InsuranceHandler
	Surgery     *handler.SurgeryHandler
	Dashboard   *handler.DashboardHandler
	Report      *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Account management (admin only; new staff accounts are created by admins)
	registerUserRoutes(protected, h)

	// Patients
	registerPatientRoutes(protected, h)

	// Staff and weekly schedules
	registerStaffRoutes(protected, h)

	// Pharmacy inventory
	registerMedicineRoutes(protected, h)
	registerSupplierRoutes(protected, h)

	// Pharmacy billing
	registerSaleRoutes(protected, h, deps)

	// Purchase orders
	registerPurchaseRoutes(protected, h)

	// Appointments
	registerAppointmentRoutes(protected, h)

	// Lab tests
	registerLabRoutes(protected, h)

	// Insurance
	registerInsuranceRoutes(protected, h)

	// Surgeries
	registerSurgeryRoutes(protected, h)

	// Dashboard and reports
	registerDashboardRoutes(protected, h)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.Auth.ListUsers)
		users.POST("", h.Auth.Register)
		users.POST("/:id/deactivate", h.Auth.DeactivateUser)
	}
}

func registerPatientRoutes(protected *gin.RouterGroup, h *Handlers) {
	patients := protected.Group("/patients")
	patients.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor, entity.RoleNurse))
	{
		patients.GET("", h.Patient.List)
		patients.POST("", h.Patient.Create)
		patients.GET("/mrn/:mrn", h.Patient.GetByMRN)
		patients.GET("/:id", h.Patient.Get)
		patients.PUT("/:id", h.Patient.Update)
		patients.DELETE("/:id", h.Patient.Delete)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	{
		staff.GET("", h.Staff.List)
		staff.GET("/:id", h.Staff.Get)
		staff.GET("/:id/schedule", h.Staff.GetSchedule)

		// Mutations are admin only
		admin := staff.Group("")
		admin.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			admin.POST("", h.Staff.Create)
			admin.PUT("/:id", h.Staff.Update)
			admin.POST("/:id/deactivate", h.Staff.Deactivate)
			admin.DELETE("/:id", h.Staff.Delete)
			admin.PUT("/:id/schedule", h.Staff.UpdateSchedule)
			admin.POST("/:id/schedule/apply-monday", h.Staff.ApplyMondaySchedule)
		}
	}
}

func registerMedicineRoutes(protected *gin.RouterGroup, h *Handlers) {
	medicines := protected.Group("/medicines")
	{
		medicines.GET("", h.Medicine.List)
		medicines.GET("/low-stock", h.Medicine.GetLowStock)
		medicines.GET("/:id", h.Medicine.Get)

		pharmacy := medicines.Group("")
		pharmacy.Use(middleware.RequireRole(entity.RoleAdmin, entity.RolePharmacist))
		{
			pharmacy.POST("", h.Medicine.Create)
			pharmacy.PUT("/:id", h.Medicine.Update)
			pharmacy.DELETE("/:id", h.Medicine.Delete)
		}
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequireRole(entity.RoleAdmin, entity.RolePharmacist))
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequireRole(entity.RoleAdmin, entity.RolePharmacist))
	{
		sales.GET("", h.Sale.List)
		// Sale creation uses idempotency middleware so a retried request
		// cannot decrement stock twice
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/cancel", h.Sale.Cancel)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	purchases.Use(middleware.RequireRole(entity.RoleAdmin, entity.RolePharmacist))
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.POST("/:id/submit", h.Purchase.Submit)
		purchases.POST("/:id/approve", middleware.RequireRole(entity.RoleAdmin), h.Purchase.Approve)
		purchases.POST("/:id/receive", h.Purchase.Receive)
		purchases.POST("/:id/cancel", h.Purchase.Cancel)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}

func registerAppointmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	appointments := protected.Group("/appointments")
	appointments.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor, entity.RoleNurse))
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Book)
		appointments.GET("/slots", h.Appointment.Slots)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.POST("/:id/complete", h.Appointment.Complete)
		appointments.POST("/:id/cancel", h.Appointment.Cancel)
	}
}

func registerLabRoutes(protected *gin.RouterGroup, h *Handlers) {
	labs := protected.Group("/lab-tests")
	labs.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleLabTech))
	{
		labs.GET("", h.Lab.List)
		labs.POST("", h.Lab.Order)
		labs.GET("/:id", h.Lab.Get)
		labs.POST("/:id/complete", h.Lab.Complete)
		labs.DELETE("/:id", h.Lab.Delete)
	}
}

func registerInsuranceRoutes(protected *gin.RouterGroup, h *Handlers) {
	insurance := protected.Group("/insurance")
	insurance.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist))
	{
		insurance.GET("/providers", h.Insurance.ListProviders)
		insurance.POST("/providers", h.Insurance.CreateProvider)
		insurance.GET("/providers/:id", h.Insurance.GetProvider)
		insurance.PUT("/providers/:id", h.Insurance.UpdateProvider)
		insurance.DELETE("/providers/:id", h.Insurance.DeleteProvider)

		insurance.GET("/claims", h.Insurance.ListClaims)
		insurance.POST("/claims", h.Insurance.FileClaim)
		insurance.GET("/claims/:id", h.Insurance.GetClaim)
		insurance.POST("/claims/:id/approve", h.Insurance.ApproveClaim)
		insurance.POST("/claims/:id/reject", h.Insurance.RejectClaim)
		insurance.POST("/claims/:id/pay", h.Insurance.PayClaim)
	}
}

func registerSurgeryRoutes(protected *gin.RouterGroup, h *Handlers) {
	surgeries := protected.Group("/surgeries")
	surgeries.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse))
	{
		surgeries.GET("", h.Surgery.List)
		surgeries.POST("", h.Surgery.Schedule)
		surgeries.GET("/:id", h.Surgery.Get)
		surgeries.POST("/:id/complete", h.Surgery.Complete)
		surgeries.POST("/:id/cancel", h.Surgery.Cancel)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		dashboard.GET("/summary", h.Dashboard.GetSummary)
		dashboard.GET("/charts", h.Dashboard.GetCharts)
	}

	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/inventory", h.Report.Inventory)
	}
}
