package appointment

import (
	"context"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// RemoveAppointment apaga fisicamente um agendamento das duas coleções.
// Fluxo legado de cancelamento pelo perfil do cliente; todos os demais
// cancelamentos são soft (status canceled) via TransitionAppointment.
type RemoveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: auditd,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	customerID string,
	appointmentID string,
) (*models.Appointment, error) {

	var removed *models.Appointment
	err := uc.repo.WithTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.Remove(customerID, appointmentID)
		if err != nil {
			return err
		}
		removed = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: removed.BarberID,
		Action:   "appointment_removed",
		Entity:   "appointment",
		EntityID: removed.ID,
	})

	return removed, nil
}
