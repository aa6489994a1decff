package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/validators"
)

// DaySnapshot é a visão diária do barbeiro: agendamentos ordenados por
// hora mais o placar por status (painel do barbeiro).
type DaySnapshot struct {
	Appointments []*models.Appointment `json:"appointments"`
	Tally        map[string]int        `json:"tally"`
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID string,
	date string,
) (*DaySnapshot, error) {

	if !validators.IsValidDate(date) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	snap := &DaySnapshot{
		Appointments: []*models.Appointment{},
		Tally: map[string]int{
			string(domain.StatusScheduled): 0,
			string(domain.StatusCompleted): 0,
			string(domain.StatusCanceled):  0,
			string(domain.StatusNoShow):    0,
		},
	}

	for _, ap := range barber.Appointments {
		if ap.Date != date {
			continue
		}
		snap.Appointments = append(snap.Appointments, ap)
		snap.Tally[ap.Status]++
	}

	sort.Slice(snap.Appointments, func(i, j int) bool {
		return snap.Appointments[i].Time < snap.Appointments[j].Time
	})

	return snap, nil
}
