package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// CustomerHistory separa o histórico do cliente em "próximos" e
// "passados", como a tela de perfil: próximo = ainda no futuro e não
// concluído; o resto é passado.
type CustomerHistory struct {
	Upcoming []*models.Appointment `json:"upcoming"`
	Past     []*models.Appointment `json:"past"`
}

type ListCustomerAppointments struct {
	repo domain.Repository

	tz  string
	now func() time.Time
}

func NewListCustomerAppointments(
	repo domain.Repository,
	tz string,
) *ListCustomerAppointments {
	return &ListCustomerAppointments{
		repo: repo,
		tz:   tz,
		now:  func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *ListCustomerAppointments) WithClock(now func() time.Time) *ListCustomerAppointments {
	uc.now = now
	return uc
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID string,
) (*CustomerHistory, error) {

	customer, err := uc.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	loc := timezone.Location(uc.tz)

	hist := &CustomerHistory{
		Upcoming: []*models.Appointment{},
		Past:     []*models.Appointment{},
	}

	for _, ap := range customer.Appointments {
		when := ap.When(loc)
		if !when.Before(now) && domain.Status(ap.Status) != domain.StatusCompleted {
			hist.Upcoming = append(hist.Upcoming, ap)
		} else {
			hist.Past = append(hist.Past, ap)
		}
	}

	byWhen := func(list []*models.Appointment, asc bool) {
		sort.Slice(list, func(i, j int) bool {
			wi, wj := list[i].When(loc), list[j].When(loc)
			if asc {
				return wi.Before(wj)
			}
			return wj.Before(wi)
		})
	}
	byWhen(hist.Upcoming, true) // mais próximo primeiro
	byWhen(hist.Past, false)    // mais recente primeiro

	return hist, nil
}
