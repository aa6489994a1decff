package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/booking-core/internal/domain/appointment"
	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/validators"
)

type GetAvailability struct {
	repo domain.Repository

	// Menu fixo de horários oferecido aos clientes (ex.: 09:00..16:00).
	slotMenu []string
}

func NewGetAvailability(repo domain.Repository, slotMenu []string) *GetAvailability {
	return &GetAvailability{repo: repo, slotMenu: slotMenu}
}

// Execute devolve os horários livres do barbeiro no dia, na ordem do menu.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	if !validators.IsValidDate(date) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(barber.Appointments, date, uc.slotMenu), nil
}
