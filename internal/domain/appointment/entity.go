package appointment

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus muda o status de uma cópia do agendamento, carimbando o
// instante da mudança. O chamador é responsável por aplicar nas duas
// coleções (agenda do barbeiro e histórico do cliente).
func ApplyStatus(ap *models.Appointment, next Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	switch next {
	case StatusCanceled:
		ap.CanceledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusCanceled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusCompleted, now)
}

func NoShow(ap *models.Appointment, now time.Time) error {
	return ApplyStatus(ap, StatusNoShow, now)
}
