package dto

import "github.com/BruksfildServices01/booking-core/internal/models"

// Visão pública do barbeiro: atributos de exibição, sem a agenda.
type BarberListDTO struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Specialty   string        `json:"specialty"`
	Description string        `json:"description"`
	Prices      models.Prices `json:"prices"`
}

func FromBarber(b *models.Barber) BarberListDTO {
	return BarberListDTO{
		ID:          b.ID,
		Name:        b.Name,
		Specialty:   b.Specialty,
		Description: b.Description,
		Prices:      b.Prices,
	}
}
