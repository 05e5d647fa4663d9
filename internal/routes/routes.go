package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	"github.com/BruksfildServices01/appointment-scheduler/internal/config"
	"github.com/BruksfildServices01/appointment-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointment-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-scheduler/internal/middleware"
	"github.com/BruksfildServices01/appointment-scheduler/internal/slotlock"
	ucAppointment "github.com/BruksfildServices01/appointment-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	slotLocks := slotlock.New(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	suggestSlotsUC := ucAppointment.NewSuggestSlots(appointmentRepo)

	bookAppointmentUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		slotLocks,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		slotLocks,
		auditDispatcher,
	)

	getStatusUC := ucAppointment.NewGetAppointmentStatus(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	listCustomerAppointmentsUC := ucAppointment.NewListCustomerAppointments(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		suggestSlotsUC,
		bookAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		rescheduleAppointmentUC,
		getStatusUC,
		listAppointmentsUC,
		listCustomerAppointmentsUC,
	)

	customerHandler := handlers.NewCustomerHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	appointments := r.Group("/appointments")
	{
		appointments.POST("/suggest-date", appointmentHandler.SuggestDate)
		appointments.POST("/book-appointment", appointmentHandler.Book)
		appointments.POST("/cancel-appointment/:id", appointmentHandler.Cancel)
		appointments.POST("/complete-appointment/:id", appointmentHandler.Complete)
		appointments.POST("/reschedule-appointment/:id", appointmentHandler.Reschedule)
		appointments.GET("/appointment-status/:id", appointmentHandler.GetStatus)
		appointments.GET("/", appointmentHandler.List)
		appointments.GET("/customer/:id", appointmentHandler.ListByCustomer)
	}

	// ------------------------------
	// CUSTOMERS
	// ------------------------------
	customers := r.Group("/customers")
	{
		customers.POST("/", customerHandler.Create)
		customers.GET("/", customerHandler.List)
		customers.GET("/:id", customerHandler.Get)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
	}

	// ------------------------------
	// AUDIT LOGS
	// ------------------------------
	r.GET("/audit-logs", auditLogsHandler.List)
}
