package models

import "time"

type Barber struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`

	Prices Prices `json:"prices"`

	// Agenda do barbeiro (cópia dona do lado do provedor).
	Appointments []*Appointment `json:"appointments"`

	CreatedAt time.Time `json:"created_at"`
}

type Prices struct {
	Haircut      string `json:"haircut"`
	HaircutBeard string `json:"haircut_beard"`
}
