package httperr

import "errors"

// Códigos de negócio usados pelos usecases. Falha esperada é valor de
// retorno, nunca panic.
const (
	CodeInvalidDateOrTime        = "invalid_date_or_time"
	CodePastDate                 = "past_date"
	CodeSlotUnavailable          = "slot_unavailable"
	CodeNeedsReplaceConfirmation = "needs_replace_confirmation"
	CodeInvalidState             = "invalid_state"
	CodeAppointmentNotFound      = "appointment_not_found"
	CodeBarberNotFound           = "barber_not_found"
	CodeCustomerNotFound         = "customer_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código, ou "" se não for erro de negócio.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
