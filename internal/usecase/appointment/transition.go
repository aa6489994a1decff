package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// TransitionAppointment é o único caminho legítimo de mudança de status
// depois da criação. A atualização vale para a agenda do barbeiro e o
// histórico do cliente como uma unidade.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	tz  string
	now func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: auditd,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *TransitionAppointment) WithClock(now func() time.Time) *TransitionAppointment {
	uc.now = now
	return uc
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	barberID string,
	appointmentID string,
	next domain.Status,
) (*models.Appointment, error) {

	now := uc.now()

	var updated *models.Appointment
	err := uc.repo.WithTx(ctx, func(tx domain.Tx) error {
		ap, err := tx.SetStatus(barberID, appointmentID, next, now)
		if err != nil {
			return err
		}
		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "appointment_" + string(next),
		Entity:   "appointment",
		EntityID: updated.ID,
	})

	return updated, nil
}
