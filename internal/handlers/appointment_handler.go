package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	bookUC       *ucAppointment.BookAppointment
	transitionUC *ucAppointment.TransitionAppointment
	removeUC     *ucAppointment.RemoveAppointment
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	removeUC *ucAppointment.RemoveAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		transitionUC: transitionUC,
		removeUC:     removeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID   string `json:"barber_id" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`

	// Reenvio após o diálogo de confirmação de troca.
	ConfirmReplace bool `json:"confirm_replace"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	outcome, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		BarberID:       req.BarberID,
		CustomerID:     req.CustomerID,
		Date:           req.Date,
		Time:           req.Time,
		ConfirmReplace: req.ConfirmReplace,
	})
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	if outcome.NeedsConfirmation {
		// Não é erro: falta o "sim" do cliente. O caller reenvia com
		// confirm_replace=true.
		c.JSON(http.StatusConflict, gin.H{
			"error_code": httperr.CodeNeedsReplaceConfirmation,
			"candidate":  outcome.Candidate,
			"existing":   outcome.Existing,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": outcome.Booked,
		"replaced":    outcome.Replaced,
	})
}

// ======================================================
// STATUS (complete / cancel / no-show)
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCanceled)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, domain.StatusNoShow)
}

func (h *AppointmentHandler) transition(c *gin.Context, next domain.Status) {
	barberID := c.Param("id")
	appointmentID := c.Param("apptId")

	ap, err := h.transitionUC.Execute(c.Request.Context(), barberID, appointmentID, next)
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// REMOVE (fluxo legado do perfil)
// ======================================================

func (h *AppointmentHandler) Remove(c *gin.Context) {
	customerID := c.Param("id")
	appointmentID := c.Param("apptId")

	ap, err := h.removeUC.Execute(c.Request.Context(), customerID, appointmentID)
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": ap})
}

// ======================================================
// HELPERS
// ======================================================

func writeBusinessOrInternal(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.Business(c, code)
		return
	}
	httperr.Internal(c, "internal_error", "Erro inesperado.")
}
