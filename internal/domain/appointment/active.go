package appointment

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// ActiveAppointment devolve o agendamento ativo do cliente: o mais cedo
// com status scheduled cujo horário ainda não passou. Passado ou terminal
// nunca conta como ativo.
func ActiveAppointment(
	history []*models.Appointment,
	now time.Time,
	loc *time.Location,
) *models.Appointment {

	var active *models.Appointment
	var activeWhen time.Time

	for _, ap := range history {
		if Status(ap.Status) != StatusScheduled {
			continue
		}
		when := ap.When(loc)
		if when.IsZero() || when.Before(now) {
			continue
		}
		if active == nil || when.Before(activeWhen) {
			active = ap
			activeWhen = when
		}
	}
	return active
}
