package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
	"github.com/BruksfildServices01/booking-core/internal/validators"
)

// ======================================================
// INPUT / OUTCOME
// ======================================================

type BookAppointmentInput struct {
	BarberID   string
	CustomerID string

	Date string
	Time string

	// Confirmação explícita da troca quando já existe agendamento ativo
	// com outro barbeiro.
	ConfirmReplace bool
}

type BookingOutcome struct {
	// Preenchido quando a reserva foi efetivada.
	Booked *models.Appointment

	// Antigo agendamento cancelado quando houve troca.
	Replaced *models.Appointment

	// Preenchidos quando o caller precisa confirmar a troca antes de
	// reservar: nada foi gravado ainda.
	NeedsConfirmation bool
	Candidate         *models.Appointment
	Existing          *models.Appointment
}

// ======================================================
// USE CASE
// ======================================================

// BookAppointment é o único caminho legítimo de criação de agendamento.
type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	tz    string
	now   func() time.Time
	newID func() string
}

func NewBookAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: auditd,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
		newID: uuid.NewString,
	}
}

// WithClock troca o relógio do usecase (testes).
func (uc *BookAppointment) WithClock(now func() time.Time) *BookAppointment {
	uc.now = now
	return uc
}

// WithIDGenerator troca o gerador de ids (testes / seeder).
func (uc *BookAppointment) WithIDGenerator(gen func() string) *BookAppointment {
	uc.newID = gen
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookingOutcome, error) {

	// --------------------------------------------------
	// 1. Formato de data/hora
	// --------------------------------------------------
	if !validators.IsValidDate(in.Date) || !validators.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2. Data no passado
	// --------------------------------------------------
	now := uc.now()
	loc := timezone.Location(uc.tz)
	if in.Date < now.In(loc).Format(validators.DateLayout) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	var outcome *BookingOutcome

	err := uc.repo.WithTx(ctx, func(tx domain.Tx) error {
		barber, err := tx.BarberByID(in.BarberID)
		if err != nil {
			return err
		}
		customer, err := tx.CustomerByID(in.CustomerID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Agendamento ativo do cliente
		// --------------------------------------------------
		active := domain.ActiveAppointment(customer.Appointments, now, loc)

		// --------------------------------------------------
		// 4. Conflito de horário
		// --------------------------------------------------
		// Exceção única: o horário ocupado pelo próprio agendamento ativo
		// do cliente pode ser reaproveitado (re-reserva idêntica segue
		// como troca com o mesmo barbeiro).
		if !domain.IsFree(barber.Appointments, in.Date, in.Time) {
			if active == nil || !occupiesSlot(active, in) {
				return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
			}
		}

		draft := &models.Appointment{
			ID:         uc.newID(),
			BarberID:   in.BarberID,
			CustomerID: in.CustomerID,
			Date:       in.Date,
			Time:       in.Time,
			Status:     string(domain.InitialStatus()),
			CreatedAt:  now,
		}

		// --------------------------------------------------
		// 5. Sem ativo → reserva direta
		// --------------------------------------------------
		if active == nil {
			if err := tx.Insert(draft); err != nil {
				return err
			}
			outcome = &BookingOutcome{Booked: draft}
			return nil
		}

		// --------------------------------------------------
		// 6. Ativo com outro barbeiro → exige confirmação
		// --------------------------------------------------
		if active.BarberID != in.BarberID && !in.ConfirmReplace {
			outcome = &BookingOutcome{
				NeedsConfirmation: true,
				Candidate:         draft,
				Existing:          active.Clone(),
			}
			return nil
		}

		// --------------------------------------------------
		// 7. Troca: cancela o antigo e grava o novo, atomicamente
		// --------------------------------------------------
		replaced, err := tx.SetStatus(
			active.BarberID,
			active.ID,
			domain.StatusCanceled,
			now,
		)
		if err != nil {
			return err
		}
		if err := tx.Insert(draft); err != nil {
			return err
		}

		outcome = &BookingOutcome{Booked: draft, Replaced: replaced}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Booked != nil {
		action := "appointment_booked"
		if outcome.Replaced != nil {
			action = "appointment_replaced"
		}
		uc.audit.Dispatch(audit.Event{
			BarberID: in.BarberID,
			Action:   action,
			Entity:   "appointment",
			EntityID: outcome.Booked.ID,
			Metadata: map[string]string{
				"date": in.Date,
				"time": in.Time,
			},
		})
	}

	return outcome, nil
}

// occupiesSlot diz se o agendamento ativo é exatamente a vaga pedida.
func occupiesSlot(active *models.Appointment, in BookAppointmentInput) bool {
	return active.BarberID == in.BarberID &&
		active.Date == in.Date &&
		active.Time == in.Time
}
