package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucAppointment "github.com/BruksfildServices01/booking-core/internal/usecase/appointment"
)

type CustomerHandler struct {
	historyUC *ucAppointment.ListCustomerAppointments
}

func NewCustomerHandler(historyUC *ucAppointment.ListCustomerAppointments) *CustomerHandler {
	return &CustomerHandler{historyUC: historyUC}
}

// Appointments devolve o histórico do cliente dividido em próximos e
// passados, como a tela de perfil.
func (h *CustomerHandler) Appointments(c *gin.Context) {
	hist, err := h.historyUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessOrInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}
