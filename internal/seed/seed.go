package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/audit"
	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
	"github.com/BruksfildServices01/booking-core/internal/validators"
)

// ======================================================
// Seeder de demonstração
// ======================================================
//
// Preenche a agenda de um barbeiro para um dia com dados determinísticos.
// Idempotente: re-executar para o mesmo dia nunca duplica horário nem id.
// É dado de demonstração, não caminho de reserva real: só o conflito exato
// de (data,hora) é checado, não a regra de agendamento ativo único.

type Seeder struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	tz  string
	now func() time.Time
}

func NewSeeder(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	tz string,
) *Seeder {
	return &Seeder{
		repo:  repo,
		audit: auditd,
		tz:    tz,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

type EnsureDayInput struct {
	BarberID string
	Date     string // vazio → hoje
	Start    string // vazio → 09:00
	Interval int    // minutos; <=0 → 60
	Slots    int    // <=0 → 8

	// Pool de clientes para o rodízio; vazio → todos os clientes.
	CustomerPool []string
}

// EnsureDay devolve quantos agendamentos foram criados.
func (s *Seeder) EnsureDay(ctx context.Context, in EnsureDayInput) (int, error) {
	if in.Date == "" {
		in.Date = timezone.Today(s.tz)
	}
	if in.Start == "" {
		in.Start = "09:00"
	}
	if in.Interval <= 0 {
		in.Interval = 60
	}
	if in.Slots <= 0 {
		in.Slots = 8
	}
	if !validators.IsValidDate(in.Date) || !validators.IsValidTime(in.Start) {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	pool := in.CustomerPool
	if len(pool) == 0 {
		customers, err := s.repo.ListCustomers(ctx)
		if err != nil {
			return 0, err
		}
		for _, c := range customers {
			pool = append(pool, c.ID)
		}
	}
	if len(pool) == 0 {
		return 0, nil
	}

	now := s.now()
	created := 0

	err := s.repo.WithTx(ctx, func(tx domain.Tx) error {
		barber, err := tx.BarberByID(in.BarberID)
		if err != nil {
			return err
		}

		// Horários já presentes no dia, qualquer status: um horário
		// semeado e depois concluído não volta a ser semeado.
		existing := make(map[string]struct{})
		for _, ap := range barber.Appointments {
			if ap.Date == in.Date {
				existing[ap.Time] = struct{}{}
			}
		}

		var sh, sm int
		fmt.Sscanf(in.Start, "%d:%d", &sh, &sm)
		minutes := sh*60 + sm

		rr := 0
		for i := 0; i < in.Slots; i++ {
			hm := fmt.Sprintf("%02d:%02d", minutes/60%24, minutes%60)
			minutes += in.Interval

			if _, ok := existing[hm]; ok {
				continue
			}

			// Primeiro candidato do rodízio sem conflito exato de
			// (data,hora) em qualquer barbeiro.
			pick := ""
			for t := 0; t < len(pool); t++ {
				candidate := pool[(rr+t)%len(pool)]
				if !customerBusyAt(tx, candidate, in.Date, hm) {
					pick = candidate
					rr = (rr + t + 1) % len(pool)
					break
				}
			}
			// Todo mundo ocupado → segue o rodízio mesmo assim.
			if pick == "" {
				pick = pool[rr%len(pool)]
				rr++
			}

			ap := &models.Appointment{
				ID:         DeterministicID(in.BarberID, in.Date, hm),
				BarberID:   in.BarberID,
				CustomerID: pick,
				Date:       in.Date,
				Time:       hm,
				Status:     string(domain.InitialStatus()),
				CreatedAt:  now,
			}
			if err := tx.Insert(ap); err != nil {
				return err
			}
			existing[hm] = struct{}{}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		Action:   "seed_executed",
		Entity:   "barber",
		EntityID: in.BarberID,
		Metadata: map[string]any{"date": in.Date, "created": created},
	})

	return created, nil
}

// DeterministicID é função pura de (barbeiro, data, hora): re-executar o
// seeder nunca cria id novo para a mesma vaga.
func DeterministicID(barberID, date, hm string) string {
	return fmt.Sprintf("b%s-%s-%s", barberID, date, hm)
}

// customerBusyAt verifica conflito exato de (data,hora) no histórico do
// cliente, qualquer barbeiro.
func customerBusyAt(tx domain.Tx, customerID, date, hm string) bool {
	c, err := tx.CustomerByID(customerID)
	if err != nil {
		return false
	}
	for _, ap := range c.Appointments {
		if ap.Date == date && ap.Time == hm &&
			domain.Status(ap.Status) == domain.StatusScheduled {
			return true
		}
	}
	return false
}
