package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	"github.com/BruksfildServices01/booking-core/internal/config"
	"github.com/BruksfildServices01/booking-core/internal/handlers"
	"github.com/BruksfildServices01/booking-core/internal/infra/repository"
	"github.com/BruksfildServices01/booking-core/internal/seed"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	repo *repository.AppointmentMemoryRepository,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New()
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		repo,
		auditDispatcher,
		cfg.Timezone,
	)

	transitionUC := ucAppointment.NewTransitionAppointment(
		repo,
		auditDispatcher,
		cfg.Timezone,
	)

	removeUC := ucAppointment.NewRemoveAppointment(
		repo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		repo,
		cfg.SlotMenu(),
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(repo)

	customerHistoryUC := ucAppointment.NewListCustomerAppointments(
		repo,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		transitionUC,
		removeUC,
	)

	barberHandler := handlers.NewBarberHandler(
		repo,
		availabilityUC,
		listByDateUC,
	)

	customerHandler := handlers.NewCustomerHandler(customerHistoryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// BARBERS
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id/availability", barberHandler.Availability)
		api.GET("/barbers/:id/appointments", barberHandler.Appointments)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Book)
		api.PATCH("/barbers/:id/appointments/:apptId/complete", appointmentHandler.Complete)
		api.PATCH("/barbers/:id/appointments/:apptId/cancel", appointmentHandler.Cancel)
		api.PATCH("/barbers/:id/appointments/:apptId/no-show", appointmentHandler.NoShow)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.GET("/customers/:id/appointments", customerHandler.Appointments)
		api.DELETE("/customers/:id/appointments/:apptId", appointmentHandler.Remove)

		api.GET("/audit-logs", auditLogsHandler.List)

		// ------------------------------
		// DEV (somente com DEV_SEED)
		// ------------------------------
		if cfg.DevSeed {
			seeder := seed.NewSeeder(repo, auditDispatcher, cfg.Timezone)
			seedHandler := handlers.NewSeedHandler(seeder)
			api.POST("/dev/seed", seedHandler.EnsureDay)
		}
	}
}
