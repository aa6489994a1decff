package appointment

import "github.com/BruksfildServices01/booking-core/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusNoShow    Status = "no_show"
)

// Estado terminal nunca volta: completed/canceled/no_show são finais.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusNoShow
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanTransition define se um agendamento pode mudar de status.
// Só sai de scheduled, e só para um estado terminal.
func CanTransition(current Status, next Status) error {
	if !IsValid(next) || next == StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
