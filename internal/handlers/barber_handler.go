package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/dto"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

type BarberHandler struct {
	repo           domain.Repository
	availabilityUC *ucAppointment.GetAvailability
	listByDateUC   *ucAppointment.ListAppointmentsByDate
}

func NewBarberHandler(
	repo domain.Repository,
	availabilityUC *ucAppointment.GetAvailability,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
) *BarberHandler {
	return &BarberHandler{
		repo:           repo,
		availabilityUC: availabilityUC,
		listByDateUC:   listByDateUC,
	}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	out := make([]dto.BarberListDTO, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.FromBarber(b))
	}
	httpresp.List(c, out)
}

// Availability devolve os horários livres do menu para o dia pedido.
func (h *BarberHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// Appointments devolve a visão diária do barbeiro com placar por status.
func (h *BarberHandler) Appointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	snap, err := h.listByDateUC.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}
