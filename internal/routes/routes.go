package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chairtime/booking-api/internal/audit"
	"github.com/chairtime/booking-api/internal/cache"
	"github.com/chairtime/booking-api/internal/config"
	"github.com/chairtime/booking-api/internal/handlers"
	"github.com/chairtime/booking-api/internal/mail"
	"github.com/chairtime/booking-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availCache := cache.NewAvailabilityCache(cache.NewRedisClient(
		cfg.RedisAddr,
		cfg.RedisPassword,
	))

	mailer := mail.NewMailer(cfg)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(db, cfg, auditDispatcher, availCache, mailer)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg, auditDispatcher, availCache, mailer)
	shiftPlanHandler := handlers.NewShiftPlanHandler(db, auditDispatcher, availCache)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, availCache)
	customerHandler := handlers.NewCustomerHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO (formulário de agendamento)
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/employees", publicHandler.ListEmployees)
		api.GET("/time-slots", publicHandler.TimeSlots)
		api.POST("/appointments", publicHandler.CreateAppointment)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/me", authHandler.Me)

			admin.GET("/appointments", appointmentHandler.List)
			admin.POST("/appointments", appointmentHandler.Create)
			admin.PATCH("/appointments/:id", appointmentHandler.Edit)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			admin.GET("/shift-plans", shiftPlanHandler.List)
			admin.PUT("/shift-plans", shiftPlanHandler.Update)

			admin.GET("/services", serviceHandler.List)
			admin.PUT("/services", serviceHandler.Update)

			admin.GET("/customers", customerHandler.List)
			admin.GET("/customers/:id", customerHandler.Get)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
