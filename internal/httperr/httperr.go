package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Business mapeia um código de negócio para o status HTTP adequado.
func Business(c *gin.Context, code string) {
	switch code {
	case CodeSlotUnavailable, CodeNeedsReplaceConfirmation:
		Conflict(c, code, messageFor(code))
	case CodePastDate, CodeInvalidDateOrTime, CodeInvalidState:
		Unprocessable(c, code, messageFor(code))
	case CodeAppointmentNotFound, CodeBarberNotFound, CodeCustomerNotFound:
		NotFound(c, code, messageFor(code))
	default:
		Internal(c, code, "Erro inesperado.")
	}
}

func messageFor(code string) string {
	switch code {
	case CodeSlotUnavailable:
		return "Horário já reservado."
	case CodeNeedsReplaceConfirmation:
		return "Cliente já tem um agendamento ativo com outro barbeiro."
	case CodePastDate:
		return "Data no passado."
	case CodeInvalidDateOrTime:
		return "Data ou hora inválida."
	case CodeInvalidState:
		return "Transição de status inválida."
	case CodeAppointmentNotFound:
		return "Agendamento não encontrado."
	case CodeBarberNotFound:
		return "Barbeiro não encontrado."
	case CodeCustomerNotFound:
		return "Cliente não encontrado."
	}
	return "Erro inesperado."
}
